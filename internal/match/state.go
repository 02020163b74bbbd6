package match

type State int

const (
	Start State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	}
	return "unknown"
}

type Winner int

const (
	None Winner = iota
	P1
	P2
)

func (w Winner) String() string {
	switch w {
	case P1:
		return "p1"
	case P2:
		return "p2"
	}
	return "none"
}

// Index returns the player slot of the winner, or -1 for None.
func (w Winner) Index() int {
	if w == P1 || w == P2 {
		return int(w) - 1
	}
	return -1
}
