package match

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pushoff/internal/physics"
)

var idle [2]physics.Input

var _ = Describe("Match", func() {
	var m *Match

	BeforeEach(func() {
		m = New(DefaultOptions(Features{Charge: true, Obstacles: true}))
	})

	Context("at initialization", func() {
		It("waits in Start with no winner and zero wins", func() {
			Expect(m.State()).To(Equal(Start))
			Expect(m.Winner()).To(Equal(None))
			Expect(m.Wins()).To(Equal([2]int{0, 0}))
		})

		It("ignores ticks", func() {
			before := m.Players()
			Expect(m.Tick([2]physics.Input{{Right: true}, {Left: true}})).To(BeFalse())
			Expect(m.Players()).To(Equal(before))
			Expect(m.CurrentTick()).To(Equal(0))
		})
	})

	Context("on the start signal", func() {
		It("enters Playing with players at their spawns", func() {
			Expect(m.Start()).To(BeTrue())
			Expect(m.State()).To(Equal(Playing))
			Expect(m.Wins()).To(Equal([2]int{0, 0}))

			p := m.Players()
			Expect(p[0]).To(Equal(physics.NewPlayer(300, 300, 1)))
			Expect(p[1]).To(Equal(physics.NewPlayer(500, 300, -1)))
		})

		It("is ignored while already playing", func() {
			m.Start()
			m.Tick([2]physics.Input{{Right: true}, {}})
			moved := m.Players()

			Expect(m.Start()).To(BeFalse())
			Expect(m.State()).To(Equal(Playing))
			Expect(m.Players()).To(Equal(moved))
		})
	})

	Context("when a player leaves the arena", func() {
		BeforeEach(func() {
			m.Start()
		})

		It("awards the round to the other player", func() {
			m.players[0].X = m.opts.Bounds.Width + m.opts.Bounds.Margin + 50

			Expect(m.Tick(idle)).To(BeTrue())
			Expect(m.State()).To(Equal(GameOver))
			Expect(m.Winner()).To(Equal(P2))
			Expect(m.Wins()).To(Equal([2]int{0, 1}))
		})

		It("freezes the simulation until the next start", func() {
			m.players[1].Y = -500
			m.Tick(idle)
			frozen := m.Players()

			Expect(m.Tick([2]physics.Input{{Up: true}, {Down: true}})).To(BeFalse())
			Expect(m.Players()).To(Equal(frozen))
			Expect(m.Winner()).To(Equal(P1))
		})

		It("keeps win counters across rounds", func() {
			m.players[0].X = -500
			m.Tick(idle)

			Expect(m.Start()).To(BeTrue())
			Expect(m.Winner()).To(Equal(None))
			Expect(m.Wins()).To(Equal([2]int{0, 1}))

			m.players[1].X = -500
			m.Tick(idle)
			Expect(m.Wins()).To(Equal([2]int{1, 1}))
		})

		It("gives player two the round when both leave together", func() {
			m.players[0].X = -500
			m.players[1].X = 2000
			m.Tick(idle)
			Expect(m.Winner()).To(Equal(P2))
			Expect(m.Wins()).To(Equal([2]int{0, 1}))
		})
	})

	Context("when the players meet head on", func() {
		It("separates them and puts both in recoil", func() {
			m.Start()
			m.players[0] = physics.Player{X: 400, Y: 300, VX: -5, Facing: 1}
			m.players[1] = physics.Player{X: 400, Y: 300, VX: 5, Facing: -1}

			m.Tick(idle)

			p := m.Players()
			Expect(p[0].InRecoil).To(BeTrue())
			Expect(p[1].InRecoil).To(BeTrue())
			Expect(p[0].Dist(p[1])).To(BeNumerically("~", m.opts.Tuning.PlayerSize, 1e-9))
			Expect(p[0].RecoilX).To(BeNumerically("<", 0))
			Expect(p[1].RecoilX).To(BeNumerically(">", 0))
			Expect(m.Snapshot().Impacts).To(HaveLen(1))
		})
	})

	Context("with obstacles enabled", func() {
		It("pops the first obstacle on the spawn interval", func() {
			m.Start()
			for i := 0; i < m.opts.Obstacles.Interval; i++ {
				m.Tick(idle)
			}
			Expect(m.Snapshot().Obstacles).To(HaveLen(1))
		})

		It("clears them on restart", func() {
			m.Start()
			for i := 0; i < m.opts.Obstacles.Interval; i++ {
				m.Tick(idle)
			}
			m.players[0].X = -500
			m.Tick(idle)
			m.Start()
			Expect(m.Snapshot().Obstacles).To(BeEmpty())
		})
	})
})

var _ = Describe("Features", func() {
	It("never spawns obstacles when they are off", func() {
		m := New(DefaultOptions(Features{}))
		m.Start()
		for i := 0; i < 500; i++ {
			m.Tick(idle)
		}
		Expect(m.Snapshot().Obstacles).To(BeEmpty())
	})

	It("exposes the platform only in the platform variant", func() {
		Expect(New(DefaultOptions(Features{})).Snapshot().Platform).To(BeNil())

		pl := New(DefaultOptions(Features{Platform: true})).Snapshot().Platform
		Expect(pl).NotTo(BeNil())
		Expect(pl.X).To(Equal(400.0))
		Expect(pl.W).To(Equal(PlatformWidth))
	})

	It("does not build charge without the charge mechanic", func() {
		m := New(DefaultOptions(Features{}))
		m.Start()
		for i := 0; i < 30; i++ {
			m.Tick([2]physics.Input{{Charge: true}, {Charge: true}})
		}
		Expect(m.Players()[0].Charge).To(BeZero())
	})

	It("builds charge with the charge mechanic", func() {
		m := New(DefaultOptions(Features{Charge: true}))
		m.Start()
		for i := 0; i < 30; i++ {
			m.Tick([2]physics.Input{{Charge: true}, {}})
		}
		Expect(m.Players()[0].Charge).To(BeNumerically("~", math.Min(1, 30*physics.ChargeRate), 1e-9))
		Expect(m.Players()[1].Charge).To(BeZero())
	})
})
