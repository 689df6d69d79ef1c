package pacing

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FixedProtocol", func() {
	It("should interpolate linearly between samples", func() {
		fp, err := NewFixedProtocol(
			[]VTimeInSec{0, 1, 2}, []float64{0, 10, 0}, Linear)
		Expect(err).ToNot(HaveOccurred())

		Expect(fp.Value(0.5)).To(BeNumerically("~", 5, 1e-12))
		Expect(fp.Value(1)).To(BeNumerically("~", 10, 1e-12))
		Expect(fp.Value(1.25)).To(BeNumerically("~", 7.5, 1e-12))
	})

	It("should clamp outside the sampled range", func() {
		fp, _ := NewFixedProtocol(
			[]VTimeInSec{0, 1, 2}, []float64{0, 10, 0}, Linear)

		Expect(fp.Value(-5)).To(Equal(0.0))
		Expect(fp.Value(5)).To(Equal(0.0))
	})

	It("should not care about the input order of the pairs", func() {
		sorted, _ := NewFixedProtocol(
			[]VTimeInSec{0, 1, 2}, []float64{0, 10, 0}, Linear)
		shuffled, err := NewFixedProtocol(
			[]VTimeInSec{2, 0, 1}, []float64{0, 0, 10}, Linear)
		Expect(err).ToNot(HaveOccurred())

		Expect(shuffled.Equal(sorted)).To(BeTrue())
		Expect(shuffled.Value(0.5)).To(BeNumerically("~", 5, 1e-12))
	})

	It("should reject mismatched series lengths", func() {
		_, err := NewFixedProtocol(
			[]VTimeInSec{0, 1}, []float64{0}, Linear)

		var confErr *ConfigurationError
		Expect(errors.As(err, &confErr)).To(BeTrue())
	})

	It("should reject an empty series", func() {
		_, err := NewFixedProtocol(nil, nil, Linear)
		Expect(err).To(HaveOccurred())
	})

	It("should reject unsupported interpolation methods", func() {
		_, err := NewFixedProtocol(
			[]VTimeInSec{0, 1}, []float64{0, 1}, "cubic")

		var confErr *ConfigurationError
		Expect(errors.As(err, &confErr)).To(BeTrue())
	})

	It("should clone into an equal, independent protocol", func() {
		fp, _ := NewFixedProtocol(
			[]VTimeInSec{0, 1, 2}, []float64{0, 10, 0}, Linear)

		c := fp.Clone()

		Expect(c.Equal(fp)).To(BeTrue())
		for _, t := range []VTimeInSec{-1, 0, 0.3, 1, 1.7, 2, 3} {
			Expect(c.Value(t)).To(Equal(fp.Value(t)))
		}
	})

	It("should expose copies of its samples", func() {
		fp, _ := NewFixedProtocol(
			[]VTimeInSec{1, 0}, []float64{10, 0}, Linear)

		times := fp.Times()
		Expect(times).To(Equal([]VTimeInSec{0, 1}))

		times[0] = 99
		Expect(fp.Times()[0]).To(Equal(VTimeInSec(0)))
		Expect(fp.Values()).To(Equal([]float64{0, 10}))
	})

	Describe("FixedPacer", func() {
		var pacer *FixedPacer

		BeforeEach(func() {
			fp, _ := NewFixedProtocol(
				[]VTimeInSec{0, 1, 2}, []float64{0, 10, 0}, Linear)
			pacer = fp.NewPacer()
		})

		It("should report the next sample time", func() {
			Expect(pacer.NextTime()).To(Equal(VTimeInSec(1)))

			_, err := pacer.Advance(1)
			Expect(err).ToNot(HaveOccurred())
			Expect(pacer.NextTime()).To(Equal(VTimeInSec(2)))

			_, err = pacer.Advance(2)
			Expect(err).ToNot(HaveOccurred())
			Expect(pacer.NextTime()).To(Equal(TimeInfinity))
		})

		It("should track the interpolated value", func() {
			pace, err := pacer.Advance(0.5)
			Expect(err).ToNot(HaveOccurred())
			Expect(pace).To(BeNumerically("~", 5, 1e-12))
			Expect(pacer.Pace()).To(BeNumerically("~", 5, 1e-12))
		})

		It("should refuse to move backward", func() {
			_, err := pacer.Advance(1)
			Expect(err).ToNot(HaveOccurred())

			_, err = pacer.Advance(0.5)

			var ordErr *OrderingError
			Expect(errors.As(err, &ordErr)).To(BeTrue())
			Expect(pacer.Time()).To(Equal(VTimeInSec(1)))
		})
	})
})
