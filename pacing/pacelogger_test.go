package pacing

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PaceLogger", func() {
	It("should log fires and expires", func() {
		buf := &bytes.Buffer{}
		logger := log.New(buf, "", 0)

		protocol := NewProtocol()
		Expect(protocol.Schedule(2, 1, 1, 0, 0)).To(Succeed())

		s, err := NewPacingSystem(protocol)
		Expect(err).ToNot(HaveOccurred())

		s.AcceptHook(NewPaceLogger(logger))

		_, err = s.Advance(1)
		Expect(err).ToNot(HaveOccurred())
		_, err = s.Advance(2)
		Expect(err).ToNot(HaveOccurred())

		Expect(buf.String()).To(ContainSubstring("fire"))
		Expect(buf.String()).To(ContainSubstring("expire"))
		Expect(buf.String()).To(ContainSubstring("level 2"))
	})
})
