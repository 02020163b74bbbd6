package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

const frameInterval = time.Second / 60

// Options selects what the terminal plays. Exactly one of Match and Collect is
// set. A nil controller slot is driven by the keyboard.
type Options struct {
	Title       string
	Match       *match.Match
	Controllers [2]control.Controller
	Collect     *collect.Game
	OnCollect   func(collect.Snapshot)
}

type model struct {
	opts   Options
	held   *heldKeys
	keys   [2]*control.Keys
	frame  int
	paused bool

	width  int
	height int
}

func newModel(opts Options) model {
	m := model{
		opts:   opts,
		held:   newHeldKeys(),
		width:  80,
		height: 24,
	}
	for i := range m.keys {
		m.keys[i] = control.NewKeys()
		if m.opts.Controllers[i] == nil {
			m.opts.Controllers[i] = m.keys[i]
		}
	}
	return m
}

// Run plays until the user quits.
func Run(opts Options) error {
	if (opts.Match == nil) == (opts.Collect == nil) {
		return fmt.Errorf("tui: exactly one of match or collect game is required")
	}
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m model) Init() tea.Cmd { return nextFrame() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		if !m.paused {
			m.step()
		}
		return m, nextFrame()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "space":
		m.start()
	case "p":
		m.paused = !m.paused
	default:
		m.held.press(key, m.frame)
	}
	return m, nil
}

func (m *model) start() {
	m.held.reset()
	m.paused = false
	if m.opts.Match != nil {
		if m.opts.Match.Start() {
			for _, c := range m.opts.Controllers {
				if rs, ok := c.(interface{ Reset() }); ok {
					rs.Reset()
				}
			}
		}
		return
	}
	m.opts.Collect.Start()
	m.notifyCollect()
}

// step advances one frame: read keyboard and controllers, tick the game.
func (m *model) step() {
	m.frame++
	keys := m.held.inputs(m.frame)

	if g := m.opts.Collect; g != nil {
		if g.State() != match.Playing {
			return
		}
		g.Tick(merge(keys[0], keys[1]))
		m.notifyCollect()
		return
	}

	mt := m.opts.Match
	if mt.State() != match.Playing {
		return
	}
	for i, k := range m.keys {
		k.Set(keys[i])
	}
	mt.Tick(control.Pair(m.opts.Controllers, mt.Players(), mt.CurrentTick()+1))
}

func (m *model) notifyCollect() {
	if m.opts.OnCollect != nil {
		m.opts.OnCollect(m.opts.Collect.Snapshot())
	}
}

func merge(a, b physics.Input) physics.Input {
	return physics.Input{
		Left:   a.Left || b.Left,
		Right:  a.Right || b.Right,
		Up:     a.Up || b.Up,
		Down:   a.Down || b.Down,
		Charge: a.Charge || b.Charge,
	}
}

func (m model) View() string {
	if m.opts.Collect != nil {
		return m.viewCollect(m.opts.Collect.Snapshot())
	}
	return m.viewMatch(m.opts.Match.Snapshot())
}

func (m model) canvasWidth() int {
	w := m.width - 6
	// leave room for the header and help lines
	if maxW := (m.height - 7) * 2 * 4 / 3; w > maxW {
		w = maxW
	}
	return w
}

func (m model) viewMatch(s match.Snapshot) string {
	c := newCanvas(s.Bounds, m.canvasWidth())
	c.edges()
	if s.Platform != nil {
		c.rect(s.Platform.X, s.Platform.Y, s.Platform.W, s.Platform.H, '▒', inkPlatform)
	}
	for _, o := range s.Obstacles {
		ink := inkGrass
		if o.Life < 60 {
			ink = inkGrassFading
		}
		c.rect(o.X, o.Y, o.Size, o.Size, '▓', ink)
	}
	radius := m.opts.Match.Options().Tuning.Radius()
	for i, p := range s.Players {
		ink := inkP1 + i
		c.disc(p.X, p.Y, radius, '█', ink)
		if p.Charge > 0 {
			c.ring(p.X, p.Y, radius+p.Charge*radius, '∘', ink)
		}
	}
	for _, hit := range s.Impacts {
		c.ring(hit.X, hit.Y, hit.Radius, '*', inkImpact)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n   %s  %s  %s %s %s  %s\n",
		cyan.Render("p u s h o f f"),
		dim.Render(m.opts.Title),
		cyan.Render(fmt.Sprintf("P1 %d", s.Wins[0])),
		dimmer.Render(":"),
		magenta.Render(fmt.Sprintf("%d P2", s.Wins[1])),
		dim.Render(fmt.Sprintf("tick %d", s.Tick))))
	if s.Features.Charge {
		b.WriteString("   " + chargeBar(s.Players[0].Charge, cyan) + "   " + chargeBar(s.Players[1].Charge, magenta) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(indent(c.render()) + "\n")

	switch s.State {
	case match.Start:
		b.WriteString("\n   " + banner.Render(white.Render("press space to start")) + "\n")
	case match.GameOver:
		msg := fmt.Sprintf("%s wins!  space to play again", strings.ToUpper(s.Winner.String()))
		b.WriteString("\n   " + banner.Render(yellow.Render(msg)) + "\n")
	}
	if m.paused {
		b.WriteString("   " + yellow.Render("paused") + "\n")
	}

	b.WriteString("\n" + dim.Render("   P1 arrows . charge   P2 wasd tab charge   space start  p pause  q quit") + "\n")
	return b.String()
}

func (m model) viewCollect(s collect.Snapshot) string {
	c := newCanvas(s.Bounds, m.canvasWidth())
	c.edges()
	for _, coin := range s.Coins {
		c.disc(coin.X, coin.Y, collect.CoinRadius, '◆', inkCoin)
	}
	for _, h := range s.Hazards {
		c.disc(h.X, h.Y, collect.HazardRadius, '✖', inkHazard)
	}
	c.disc(s.Player.X, s.Player.Y, m.opts.Collect.Options().Tuning.Radius(), '█', inkP1)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n   %s  %s %s  %s %s\n\n",
		cyan.Render("c o l l e c t"),
		dim.Render("score"), white.Render(fmt.Sprint(s.Score)),
		dim.Render("best"), yellow.Render(fmt.Sprint(s.Best))))
	b.WriteString(indent(c.render()) + "\n")

	switch s.State {
	case match.Start:
		b.WriteString("\n   " + banner.Render(white.Render("press space to start")) + "\n")
	case match.GameOver:
		msg := fmt.Sprintf("game over, score %d  space to retry", s.Score)
		if s.Record {
			msg = fmt.Sprintf("new best %d!  space to retry", s.Score)
		}
		b.WriteString("\n   " + banner.Render(yellow.Render(msg)) + "\n")
	}

	b.WriteString("\n" + dim.Render("   arrows or wasd move   space start  p pause  q quit") + "\n")
	return b.String()
}

func chargeBar(charge float64, style lipgloss.Style) string {
	const width = 20
	filled := int(charge * width)
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", width-filled))
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "   " + lines[i]
	}
	return strings.Join(lines, "\n")
}
