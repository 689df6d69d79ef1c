package pacing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 2 * Hz
		Expect(f.Period()).To(BeNumerically("==", 0.5))
	})

	It("should count cycles", func() {
		var f = 4 * Hz
		Expect(f.Cycle(2)).To(Equal(uint64(8)))
	})

	It("should convert BPM to BCL", func() {
		Expect(BPM2BCL(60)).To(BeNumerically("~", 1, 1e-12))
		Expect(BPM2BCL(120)).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("should convert BCL to BPM", func() {
		Expect(BCL2BPM(1)).To(BeNumerically("~", 60, 1e-12))
		Expect(BCL2BPM(0.5)).To(BeNumerically("~", 120, 1e-12))
	})
})
