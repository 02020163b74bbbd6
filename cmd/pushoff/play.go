package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/pushoff/internal/audio"
	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/config"
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/gui"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/scores"
	"github.com/san-kum/pushoff/internal/tui"
)

// session holds everything a frontend needs for one play session. close
// releases the audio device and the score database.
type session struct {
	cfg         *config.Config
	match       *match.Match
	controllers [2]control.Controller
	collect     *collect.Game
	onCollect   func(collect.Snapshot)
	close       func()
}

func newController(kind string, charge bool) (control.Controller, error) {
	switch kind {
	case config.PlayerKeys:
		return nil, nil
	case config.PlayerBot:
		return control.NewBot(false), nil
	case config.PlayerChargeBot:
		return control.NewBot(charge), nil
	case config.PlayerNone:
		return control.NewNone(), nil
	}
	return nil, fmt.Errorf("unknown controller %q", kind)
}

func newSession(cfg *config.Config) (*session, error) {
	s := &session{cfg: cfg}
	closers := make([]func(), 0, 2)
	s.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	board, err := scores.Open(cfg.ScoresPath())
	if err != nil {
		log.Warn("scores disabled", "err", err)
	} else {
		closers = append(closers, func() { board.Close() })
	}

	var player *audio.Player
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Start(); err != nil {
			log.Warn("sound disabled", "err", err)
			player = nil
		} else {
			closers = append(closers, player.Stop)
		}
	}

	if cfg.Mode == config.ModeCollect {
		var sink collect.BestScoreSink
		if board != nil {
			sink = board.Sink(cfg.Board())
		}
		s.collect = collect.New(cfg.CollectOptions(), sink)
		if player != nil {
			s.onCollect = audio.NewCollectSounds(player.Synth).Observe
		}
		return s, nil
	}

	s.match = match.New(cfg.MatchOptions())
	if board != nil {
		s.match.AddObserver(board.WinRecorder(cfg.Board()))
	}
	if player != nil {
		s.match.AddObserver(audio.NewSounds(player.Synth))
	}
	for i, kind := range [2]string{cfg.Players.P1, cfg.Players.P2} {
		c, err := newController(kind, cfg.Features.Charge)
		if err != nil {
			s.close()
			return nil, err
		}
		s.controllers[i] = c
	}
	return s, nil
}

func playTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	// the terminal belongs to bubbletea, so logs go to a file
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	f, err := tea.LogToFile(filepath.Join(cfg.DataDir, "pushoff.log"), "pushoff")
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.Run(tui.Options{
		Title:       cfg.Board(),
		Match:       s.match,
		Controllers: s.controllers,
		Collect:     s.collect,
		OnCollect:   s.onCollect,
	})
}

func playWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	return gui.Run(gui.Options{
		Title:       cfg.Board(),
		FPS:         cfg.FPS,
		Match:       s.match,
		Controllers: s.controllers,
		Collect:     s.collect,
		OnCollect:   s.onCollect,
	})
}
