package match

import (
	"testing"

	"github.com/san-kum/pushoff/internal/physics"
)

func TestObserverSeesEveryTick(t *testing.T) {
	m := New(DefaultOptions(Features{}))

	var seen []Snapshot
	m.AddObserver(ObserverFunc(func(s Snapshot) { seen = append(seen, s) }))

	m.Start()
	for i := 0; i < 5; i++ {
		m.Tick([2]physics.Input{})
	}

	if len(seen) != 6 {
		t.Fatalf("observer saw %d snapshots, want 6", len(seen))
	}
	if seen[0].State != Playing || seen[0].Tick != 0 {
		t.Errorf("first snapshot = %v at tick %d", seen[0].State, seen[0].Tick)
	}
	if seen[5].Tick != 5 {
		t.Errorf("last snapshot tick = %d, want 5", seen[5].Tick)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := New(DefaultOptions(Features{Platform: true}))
	m.Start()

	s := m.Snapshot()
	s.Players[0].X = -1000
	s.Platform.W = 1

	if m.Players()[0].X == -1000 {
		t.Error("mutating a snapshot moved the player")
	}
	if m.Snapshot().Platform.W == 1 {
		t.Error("mutating a snapshot resized the platform")
	}
}

func TestSnapshotSeparation(t *testing.T) {
	m := New(DefaultOptions(Features{}))
	m.Start()
	if got := m.Snapshot().Separation(); got != 2*SpawnOffset {
		t.Errorf("separation = %f, want %f", got, 2*SpawnOffset)
	}
}

func TestWinnerIndex(t *testing.T) {
	if None.Index() != -1 || P1.Index() != 0 || P2.Index() != 1 {
		t.Error("unexpected winner indices")
	}
}
