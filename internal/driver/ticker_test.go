package driver

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/toothsim/internal/params"
	"github.com/san-kum/toothsim/internal/teeth"
)

var _ = Describe("Ticker", func() {
	var (
		sim    *teeth.Simulation
		ticker *Ticker
		t0     time.Time
	)

	BeforeEach(func() {
		sim = teeth.New()
		p := params.FromRaw(params.Raw{ForceN: 10, AngleDeg: 0, K: 1, Damping: 0.1, TeethCount: 3})
		ticker = NewTicker(sim, p, 900, 400, DefaultMaxDt)
		t0 = time.Unix(1000, 0)
	})

	It("initializes the row on construction", func() {
		Expect(sim.Ready()).To(BeTrue())
		Expect(sim.Len()).To(Equal(3))
		Expect(sim.Positions(1)).To(Equal([]teeth.Position{{X: 350, Y: 160}, {X: 450, Y: 160}, {X: 550, Y: 160}}))
	})

	It("uses the wall-clock delta as dt", func() {
		ticker.Start(t0)
		f := ticker.Tick(t0.Add(16 * time.Millisecond))
		Expect(f.DT).To(BeNumerically("~", 0.016, 1e-9))
	})

	It("clamps long frames to MaxDt", func() {
		ticker.Start(t0)
		f := ticker.Tick(t0.Add(2 * time.Second))
		Expect(f.DT).To(Equal(DefaultMaxDt))
	})

	It("treats clocks going backwards as a zero step", func() {
		ticker.Start(t0)
		f := ticker.Tick(t0.Add(-time.Second))
		Expect(f.DT).To(BeZero())
	})

	It("starts implicitly on the first tick", func() {
		f := ticker.Tick(t0)
		Expect(f.DT).To(BeZero())
	})

	It("reports force components and tooth count", func() {
		f := ticker.Advance(1.0 / 60)
		Expect(f.Fx).To(BeNumerically("~", 10, 1e-12))
		Expect(f.Fy).To(BeNumerically("~", 0, 1e-12))
		Expect(f.Teeth).To(Equal(3))
		Expect(f.Info).To(Equal("Fx=10.000 N, Fy=0.000 N, teeth: 3"))
		Expect(f.Positions[1].X).To(Equal(474.0))
	})

	It("keeps the row on continuous updates", func() {
		ticker.Advance(1.0 / 60)
		ticker.Apply(Input{Raw: params.Raw{ForceN: 2, K: 1, Damping: 0.1, TeethCount: 6}})

		Expect(sim.Len()).To(Equal(3))
		Expect(ticker.Params().ForceN).To(Equal(2.0))
		b, err := sim.Body(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Disp.X).To(Equal(teeth.MaxDisplacement))
	})

	It("rebuilds the row on commit", func() {
		ticker.Advance(1.0 / 60)
		ticker.Apply(Input{Raw: params.Raw{ForceN: 10, K: 1, Damping: 0.1, TeethCount: 2}, Commit: true})

		Expect(sim.Len()).To(Equal(2))
		for _, b := range sim.Bodies() {
			Expect(b.Disp.X).To(BeZero())
			Expect(b.Vel.X).To(BeZero())
		}
	})

	It("does not relayout on resize until reset", func() {
		ticker.Resize(500, 200)
		Expect(sim.Positions(1)[0].X).To(Equal(350.0))

		ticker.Reset()
		Expect(sim.Positions(1)[0]).To(Equal(teeth.Position{X: 150, Y: 60}))
	})
})
