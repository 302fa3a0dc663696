package driver_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mcmclab/internal/driver"
	"github.com/san-kum/mcmclab/internal/sampler"
	"github.com/san-kum/mcmclab/internal/target"
)

var _ = Describe("Driver stepping", func() {
	var d *driver.Driver

	BeforeEach(func() {
		d = driver.New(target.NewGaussian(), sampler.NewRandomWalk(), 16)
	})

	It("grows the chain by exactly one per step", func() {
		for i := 0; i < 10; i++ {
			d.Step()
			Expect(d.Chain()).To(HaveLen(i + 2))
		}
	})

	It("keeps the snapshot coherent between steps", func() {
		for i := 0; i < 50; i++ {
			d.Step()
			snap := d.Snapshot()
			chain := d.Chain()
			Expect(snap.Current).To(Equal(chain[len(chain)-1]))
			Expect(len(snap.Trail)).To(BeNumerically("<=", 16))
		}
	})

	It("reproduces a chain exactly under the same seed", func() {
		first, err := d.Run(context.Background(), driver.Config{Steps: 25, Seed: 99})
		Expect(err).NotTo(HaveOccurred())

		second, err := d.Run(context.Background(), driver.Config{Steps: 25, Seed: 99})
		Expect(err).NotTo(HaveOccurred())

		Expect(second.Chain).To(Equal(first.Chain))
	})

	It("pauses and resumes without touching the chain", func() {
		d.Play()
		Expect(d.Playing()).To(BeTrue())

		before := len(d.Chain())
		d.Pause()
		Expect(d.Playing()).To(BeFalse())
		Expect(d.Chain()).To(HaveLen(before))

		d.Toggle()
		Expect(d.Playing()).To(BeTrue())
	})

	It("counts accepted samples in the unbounded log", func() {
		result, err := d.Run(context.Background(), driver.Config{Steps: 200, Seed: 7})
		Expect(err).NotTo(HaveOccurred())

		accepted := 0
		for i := 1; i < len(result.Chain); i++ {
			if result.Chain[i] != result.Chain[i-1] {
				accepted++
			}
		}
		Expect(len(d.Snapshot().Samples)).To(Equal(accepted))
	})
})
