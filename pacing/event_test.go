package pacing

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Event", func() {
	It("should tell if it is periodic", func() {
		e := Event{Level: 1, Start: 0, Duration: 1, Period: 10}
		Expect(e.IsPeriodic()).To(BeTrue())

		e = Event{Level: 1, Start: 0, Duration: 1}
		Expect(e.IsPeriodic()).To(BeFalse())
	})

	It("should report when it stops", func() {
		single := Event{Level: 1, Start: 2, Duration: 3}
		Expect(single.Stops()).To(Equal(VTimeInSec(5)))

		bounded := Event{Level: 1, Start: 0, Duration: 1, Period: 10,
			Multiplier: 3}
		Expect(bounded.Stops()).To(Equal(VTimeInSec(21)))

		unlimited := Event{Level: 1, Start: 0, Duration: 1, Period: 10}
		Expect(unlimited.Stops()).To(Equal(TimeInfinity))
	})

	It("should reject a non-positive duration", func() {
		e := Event{Level: 1, Start: 0, Duration: 0}

		err := e.validate()

		var confErr *ConfigurationError
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &confErr)).To(BeTrue())
	})

	It("should reject a negative period", func() {
		e := Event{Level: 1, Start: 0, Duration: 1, Period: -1}
		Expect(e.validate()).To(HaveOccurred())
	})

	It("should reject a negative multiplier", func() {
		e := Event{Level: 1, Start: 0, Duration: 1, Period: 10, Multiplier: -1}
		Expect(e.validate()).To(HaveOccurred())
	})

	It("should reject a multiplier on a non-periodic event", func() {
		e := Event{Level: 1, Start: 0, Duration: 1, Multiplier: 2}
		Expect(e.validate()).To(HaveOccurred())
	})

	It("should reject a duration longer than the period", func() {
		e := Event{Level: 1, Start: 0, Duration: 11, Period: 10}
		Expect(e.validate()).To(HaveOccurred())
	})

	It("should accept a duration equal to the period", func() {
		e := Event{Level: 1, Start: 0, Duration: 10, Period: 10}
		Expect(e.validate()).To(Succeed())
	})
})
