package formation_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/swarmfield/internal/formation"
)

var _ = Describe("Generate", func() {
	counts := []int{1, 2, 7, 100, 1024, 50000}

	It("returns exactly count points within the bounding radius", func() {
		const radius = 240.0
		for _, shape := range formation.Shapes() {
			for _, n := range counts {
				pts := formation.Generate(shape, n, radius)
				Expect(pts).To(HaveLen(n), "shape %s count %d", shape, n)
				for i, p := range pts {
					d := math.Hypot(p.X, p.Y)
					Expect(d).To(BeNumerically("<=", radius+1e-9),
						"shape %s point %d escaped radius: %f", shape, i, d)
				}
			}
		}
	})

	It("is deterministic for a fixed (shape, count, radius)", func() {
		for _, shape := range formation.Shapes() {
			a := formation.Generate(shape, 333, 100)
			b := formation.Generate(shape, 333, 100)
			Expect(b).To(Equal(a), "shape %s regenerated differently", shape)
		}
	})

	It("keeps every point finite", func() {
		for _, shape := range formation.Shapes() {
			for _, p := range formation.Generate(shape, 500, 120) {
				Expect(math.IsNaN(p.X) || math.IsInf(p.X, 0)).To(BeFalse())
				Expect(math.IsNaN(p.Y) || math.IsInf(p.Y, 0)).To(BeFalse())
			}
		}
	})

	It("clamps non-positive counts to one point", func() {
		Expect(formation.Generate(formation.Ring, 0, 50)).To(HaveLen(1))
		Expect(formation.Generate(formation.Sphere, -5, 50)).To(HaveLen(1))
	})

	It("spaces ring points evenly", func() {
		pts := formation.Generate(formation.Ring, 8, 100)
		for _, p := range pts {
			Expect(math.Hypot(p.X, p.Y)).To(BeNumerically("~", 100, 1e-9))
		}
		gap := math.Hypot(pts[1].X-pts[0].X, pts[1].Y-pts[0].Y)
		for i := 1; i < len(pts); i++ {
			j := (i + 1) % len(pts)
			g := math.Hypot(pts[j].X-pts[i].X, pts[j].Y-pts[i].Y)
			Expect(g).To(BeNumerically("~", gap, 1e-9))
		}
	})

	It("spreads sphere points without polar clustering", func() {
		pts := formation.Generate(formation.Sphere, 2000, 100)
		// quadrant occupancy should be roughly balanced
		var q [4]int
		for _, p := range pts {
			i := 0
			if p.X < 0 {
				i |= 1
			}
			if p.Y < 0 {
				i |= 2
			}
			q[i]++
		}
		for i := 0; i < 4; i++ {
			Expect(q[i]).To(BeNumerically(">", 300), "quadrant %d starved", i)
		}
	})
})

var _ = Describe("Parse", func() {
	It("accepts every declared shape name", func() {
		for _, shape := range formation.Shapes() {
			got, ok := formation.Parse(string(shape))
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(shape))
		}
	})

	It("falls back to scatter for unknown names", func() {
		got, ok := formation.Parse("dodecahedron")
		Expect(ok).To(BeFalse())
		Expect(got).To(Equal(formation.Scatter))
	})
})
