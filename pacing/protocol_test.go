package pacing

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Protocol", func() {
	var protocol *Protocol

	BeforeEach(func() {
		protocol = NewProtocol()
	})

	It("should schedule valid events", func() {
		Expect(protocol.Schedule(2, 0, 1, 10, 0)).To(Succeed())
		Expect(protocol.Schedule(1, 100, 1, 0, 0)).To(Succeed())

		Expect(protocol.Len()).To(Equal(2))
	})

	It("should reject invalid event parameters", func() {
		var confErr *ConfigurationError

		err := protocol.Schedule(1, 0, 0, 0, 0)
		Expect(errors.As(err, &confErr)).To(BeTrue())

		err = protocol.Schedule(1, 0, 2, 1, 0)
		Expect(errors.As(err, &confErr)).To(BeTrue())

		err = protocol.Schedule(1, 0, 1, 10, -1)
		Expect(errors.As(err, &confErr)).To(BeTrue())

		Expect(protocol.Len()).To(Equal(0))
	})

	It("should reject two events with the same start time", func() {
		Expect(protocol.Schedule(1, 5, 1, 0, 0)).To(Succeed())

		err := protocol.Schedule(2, 5, 1, 0, 0)

		var simErr *SimultaneousEventError
		Expect(errors.As(err, &simErr)).To(BeTrue())
		Expect(simErr.Time).To(Equal(VTimeInSec(5)))
		Expect(protocol.Len()).To(Equal(1))
	})

	It("should return a stable copy of its events", func() {
		Expect(protocol.Schedule(2, 0, 1, 10, 0)).To(Succeed())

		events := protocol.Events()
		events[0].Level = 99

		Expect(protocol.Events()[0].Level).To(Equal(2.0))
	})

	It("should find the earliest event", func() {
		Expect(protocol.Schedule(1, 10, 1, 0, 0)).To(Succeed())
		Expect(protocol.Schedule(2, 3, 1, 0, 0)).To(Succeed())
		Expect(protocol.Schedule(3, 7, 1, 0, 0)).To(Succeed())

		head, ok := protocol.Head()

		Expect(ok).To(BeTrue())
		Expect(head.Start).To(Equal(VTimeInSec(3)))
	})

	It("should have no head when empty", func() {
		_, ok := protocol.Head()
		Expect(ok).To(BeFalse())
	})

	Context("characteristic time", func() {
		It("should be 0 for an empty protocol", func() {
			Expect(protocol.CharacteristicTime()).To(Equal(VTimeInSec(0)))
		})

		It("should be the end of the last occurrence for finite events",
			func() {
				Expect(protocol.Schedule(1, 2, 3, 0, 0)).To(Succeed())
				Expect(protocol.Schedule(1, 10, 1, 5, 4)).To(Succeed())

				Expect(protocol.CharacteristicTime()).
					To(Equal(VTimeInSec(30)))
			})

		It("should be the largest period for unlimited periodic events",
			func() {
				Expect(protocol.Schedule(1, 0, 1, 1000, 0)).To(Succeed())
				Expect(protocol.Schedule(1, 3, 1, 0, 0)).To(Succeed())

				Expect(protocol.CharacteristicTime()).
					To(Equal(VTimeInSec(1000)))
			})
	})

	It("should list distinct levels in ascending order", func() {
		Expect(protocol.Schedule(2, 0, 1, 10, 0)).To(Succeed())
		Expect(protocol.Schedule(-1, 100, 1, 0, 0)).To(Succeed())
		Expect(protocol.Schedule(2, 200, 1, 0, 0)).To(Succeed())

		Expect(protocol.Levels()).To(Equal([]float64{-1, 2}))
	})

	It("should clone independently", func() {
		Expect(protocol.Schedule(2, 0, 1, 10, 0)).To(Succeed())

		c := protocol.Clone()
		Expect(c.Schedule(1, 50, 1, 0, 0)).To(Succeed())

		Expect(protocol.Len()).To(Equal(1))
		Expect(c.Len()).To(Equal(2))
	})
})
