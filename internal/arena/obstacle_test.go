package arena

import "testing"

func TestObstacleLifecycle(t *testing.T) {
	opts := DefaultOptions()
	m := NewManager(opts, DefaultBounds(), 1)

	for m.Tick() < opts.Interval {
		m.Update()
	}
	if m.Len() != 1 {
		t.Fatalf("expected one obstacle at tick %d, got %d", m.Tick(), m.Len())
	}
	first := m.Active()[0]
	born := first.Born
	if born != opts.Interval {
		t.Fatalf("born at %d, want %d", born, opts.Interval)
	}

	present := func() bool {
		for _, o := range m.Active() {
			if o.ID == first.ID {
				return true
			}
		}
		return false
	}

	for m.Tick() < born+opts.Lifetime-1 {
		m.Update()
		if !present() {
			t.Fatalf("obstacle gone early at tick %d", m.Tick())
		}
	}
	m.Update()
	if m.Tick() != born+opts.Lifetime {
		t.Fatalf("tick = %d", m.Tick())
	}
	if present() {
		t.Errorf("obstacle still present at tick %d", m.Tick())
	}
	if first.Active {
		t.Error("expired obstacle should be inactive")
	}
}

func TestObstacleCap(t *testing.T) {
	opts := DefaultOptions()
	opts.Interval = 1
	opts.Lifetime = 1000
	m := NewManager(opts, DefaultBounds(), 3)

	for i := 0; i < 50; i++ {
		m.Update()
		if m.Len() > opts.Max {
			t.Fatalf("tick %d: %d obstacles over cap %d", m.Tick(), m.Len(), opts.Max)
		}
	}
	if m.Len() != opts.Max {
		t.Errorf("expected cap %d reached, got %d", opts.Max, m.Len())
	}
}

func TestObstacleSpawnInsideInset(t *testing.T) {
	opts := DefaultOptions()
	opts.Interval = 1
	opts.Lifetime = 1
	b := DefaultBounds()
	m := NewManager(opts, b, 11)

	for i := 0; i < 500; i++ {
		m.Update()
		for _, o := range m.Active() {
			if o.X < opts.Margin || o.X > b.Width-opts.Margin || o.Y < opts.Margin || o.Y > b.Height-opts.Margin {
				t.Fatalf("obstacle at (%f, %f) outside inset", o.X, o.Y)
			}
		}
	}
}

func TestManagerDeterministic(t *testing.T) {
	a := NewManager(DefaultOptions(), DefaultBounds(), 42)
	b := NewManager(DefaultOptions(), DefaultBounds(), 42)

	for i := 0; i < 400; i++ {
		a.Update()
		b.Update()
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Active() {
		if a.Active()[i].X != b.Active()[i].X || a.Active()[i].Y != b.Active()[i].Y {
			t.Errorf("obstacle %d differs between equal seeds", i)
		}
	}
}

func TestManagerReset(t *testing.T) {
	m := NewManager(DefaultOptions(), DefaultBounds(), 5)
	for i := 0; i < 200; i++ {
		m.Update()
	}
	m.Reset()
	if m.Len() != 0 || m.Tick() != 0 || len(m.Solids()) != 0 {
		t.Error("reset should clear obstacles and the clock")
	}
}

func TestBoundsOutside(t *testing.T) {
	b := DefaultBounds()
	tests := []struct {
		x, y float64
		want bool
	}{
		{400, 300, false},
		{-100, 300, false},
		{-100.1, 300, true},
		{900, 300, false},
		{900.1, 300, true},
		{400, -101, true},
		{400, 701, true},
	}
	for _, tt := range tests {
		if got := b.Outside(tt.x, tt.y); got != tt.want {
			t.Errorf("Outside(%f, %f) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
