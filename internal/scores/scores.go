// Package scores persists round wins and collect-mode best scores in SQLite.
package scores

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/san-kum/pushoff/internal/match"
)

var ErrClosed = errors.New("scores: board closed")

var schema = []string{
	`CREATE TABLE IF NOT EXISTS wins (
		board TEXT NOT NULL,
		player INTEGER NOT NULL,
		wins INTEGER DEFAULT 0,
		PRIMARY KEY (board, player)
	);`,
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board TEXT NOT NULL,
		score INTEGER NOT NULL,
		played_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_board ON runs(board, score);`,
}

type Entry struct {
	Score    int
	PlayedAt time.Time
}

type Board struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the database file and its directory if needed.
func Open(path string) (*Board, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create scores dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open scores: %w", err)
	}
	// a single connection keeps :memory: databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Warn("couldn't enable WAL mode", "err", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		log.Warn("couldn't set busy timeout", "err", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	log.Debug("scores opened", "path", path)
	return &Board{db: db}, nil
}

func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *Board) conn() (*sql.DB, error) {
	if b.db == nil {
		return nil, ErrClosed
	}
	return b.db, nil
}

// AddWin credits a round win to the winner on the named board. A draw is a
// no-op.
func (b *Board) AddWin(board string, w match.Winner) error {
	if w.Index() < 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	db, err := b.conn()
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO wins (board, player, wins) VALUES (?, ?, 1)
		ON CONFLICT(board, player) DO UPDATE SET wins = wins + 1`, board, w.Index())
	return err
}

func (b *Board) Wins(board string) ([2]int, error) {
	var wins [2]int
	b.mu.Lock()
	defer b.mu.Unlock()
	db, err := b.conn()
	if err != nil {
		return wins, err
	}

	rows, err := db.Query(`SELECT player, wins FROM wins WHERE board = ?`, board)
	if err != nil {
		return wins, err
	}
	defer rows.Close()
	for rows.Next() {
		var player, n int
		if err := rows.Scan(&player, &n); err != nil {
			return wins, err
		}
		if player >= 0 && player < len(wins) {
			wins[player] = n
		}
	}
	return wins, rows.Err()
}

// RecordScore stores a finished collect run and reports whether it beat the
// previous best on the board.
func (b *Board) RecordScore(board string, score int) (bool, error) {
	best, err := b.Best(board)
	if err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	db, err := b.conn()
	if err != nil {
		return false, err
	}
	if _, err := db.Exec(`INSERT INTO runs (board, score, played_at) VALUES (?, ?, ?)`,
		board, score, time.Now().UTC()); err != nil {
		return false, err
	}
	return score > best, nil
}

// Best returns the highest recorded score, or 0 for an empty board.
func (b *Board) Best(board string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	db, err := b.conn()
	if err != nil {
		return 0, err
	}
	var best int
	err = db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM runs WHERE board = ?`, board).Scan(&best)
	return best, err
}

func (b *Board) Top(board string, n int) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT score, played_at FROM runs WHERE board = ?
		ORDER BY score DESC, played_at ASC LIMIT ?`, board, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Score, &e.PlayedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Sink binds the board to one board name for use as a collect.BestScoreSink.
func (b *Board) Sink(board string) *Sink {
	return &Sink{board: b, name: board}
}

type Sink struct {
	board *Board
	name  string
}

func (s *Sink) BestScore() int {
	best, err := s.board.Best(s.name)
	if err != nil {
		log.Warn("couldn't read best score", "board", s.name, "err", err)
		return 0
	}
	return best
}

func (s *Sink) SaveBestScore(score int) error {
	_, err := s.board.RecordScore(s.name, score)
	return err
}

// WinRecorder returns a match observer that credits each finished round.
func (b *Board) WinRecorder(board string) match.Observer {
	var last match.State
	return match.ObserverFunc(func(s match.Snapshot) {
		if s.State == match.GameOver && last != match.GameOver {
			if err := b.AddWin(board, s.Winner); err != nil {
				log.Warn("couldn't record win", "board", board, "err", err)
			}
		}
		last = s.State
	})
}
