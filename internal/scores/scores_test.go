package scores

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/match"
)

func openTemp(t *testing.T) *Board {
	t.Helper()
	b, err := Open(filepath.Join(t.TempDir(), "data", "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestWins(t *testing.T) {
	b := openTemp(t)

	for _, w := range []match.Winner{match.P1, match.P2, match.P2, match.None} {
		if err := b.AddWin("classic", w); err != nil {
			t.Fatalf("add win: %v", err)
		}
	}
	if err := b.AddWin("platform", match.P1); err != nil {
		t.Fatal(err)
	}

	wins, err := b.Wins("classic")
	if err != nil {
		t.Fatal(err)
	}
	if wins != [2]int{1, 2} {
		t.Errorf("wins = %v, want [1 2]", wins)
	}

	wins, _ = b.Wins("open")
	if wins != [2]int{} {
		t.Errorf("empty board wins = %v", wins)
	}
}

func TestRecordScore(t *testing.T) {
	b := openTemp(t)

	if best, _ := b.Best("collect"); best != 0 {
		t.Errorf("empty best = %d", best)
	}

	steps := []struct {
		score  int
		record bool
	}{
		{4, true},
		{2, false},
		{4, false},
		{9, true},
	}
	for _, s := range steps {
		got, err := b.RecordScore("collect", s.score)
		if err != nil {
			t.Fatal(err)
		}
		if got != s.record {
			t.Errorf("score %d: record = %v, want %v", s.score, got, s.record)
		}
	}

	top, err := b.Top("collect", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].Score != 9 || top[1].Score != 4 {
		t.Errorf("top = %+v", top)
	}
}

func TestSinkFeedsCollectGame(t *testing.T) {
	b := openTemp(t)
	if _, err := b.RecordScore("collect", 6); err != nil {
		t.Fatal(err)
	}

	var sink collect.BestScoreSink = b.Sink("collect")
	if sink.BestScore() != 6 {
		t.Errorf("best = %d, want 6", sink.BestScore())
	}
	if err := sink.SaveBestScore(8); err != nil {
		t.Fatal(err)
	}
	if sink.BestScore() != 8 {
		t.Errorf("best after save = %d, want 8", sink.BestScore())
	}
}

func TestWinRecorderCountsEachRoundOnce(t *testing.T) {
	b := openTemp(t)
	rec := b.WinRecorder("classic")

	over := match.Snapshot{State: match.GameOver, Winner: match.P1}
	rec.OnTick(match.Snapshot{State: match.Playing})
	rec.OnTick(over)
	rec.OnTick(over)
	rec.OnTick(match.Snapshot{State: match.Playing})
	rec.OnTick(match.Snapshot{State: match.GameOver, Winner: match.P2})

	wins, err := b.Wins("classic")
	if err != nil {
		t.Fatal(err)
	}
	if wins != [2]int{1, 1} {
		t.Errorf("wins = %v, want [1 1]", wins)
	}
}

func TestClosed(t *testing.T) {
	b := openTemp(t)
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if err := b.AddWin("classic", match.P1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := b.Best("classic"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
