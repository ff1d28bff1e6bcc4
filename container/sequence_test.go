package container_test

import (
	"github.com/bsm/sngraph/container"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sequence", func() {
	var subject *container.Sequence[int]

	BeforeEach(func() {
		subject = container.NewSequence[int]()
	})

	It("should init empty", func() {
		Expect(subject.Len()).To(Equal(0))
		Expect(subject.Cap()).To(Equal(2))
		Expect(subject.Slice()).To(BeEmpty())
	})

	It("should append, preserving order", func() {
		for i := 0; i < 100; i++ {
			subject.Append(i * 3)
		}
		Expect(subject.Len()).To(Equal(100))

		for i := 0; i < 100; i++ {
			Expect(subject.Get(i)).To(Equal(i*3), "for %d", i)
		}
	})

	It("should double capacity on overflow", func() {
		caps := make(map[int]struct{})
		for i := 0; i < 33; i++ {
			subject.Append(i)
			Expect(subject.Len()).To(BeNumerically("<=", subject.Cap()))
			caps[subject.Cap()] = struct{}{}
		}
		Expect(subject.Cap()).To(Equal(64))
		Expect(caps).To(HaveLen(6)) // 2, 4, 8, 16, 32, 64
	})

	It("should reject out-of-range access", func() {
		subject.Append(1)

		_, err := subject.Get(-1)
		Expect(err).To(MatchError(container.ErrOutOfRange))
		_, err = subject.Get(1)
		Expect(err).To(MatchError(container.ErrOutOfRange))

		Expect(subject.Set(-1, 7)).To(MatchError(container.ErrOutOfRange))
		Expect(subject.Set(1, 7)).To(MatchError(container.ErrOutOfRange))
	})

	It("should set in place", func() {
		subject.Append(1)
		subject.Append(2)
		Expect(subject.Set(0, 9)).To(Succeed())
		Expect(subject.Slice()).To(Equal([]int{9, 2}))
	})

	It("should copy on Slice", func() {
		subject.Append(1)
		out := subject.Slice()
		out[0] = 99
		Expect(subject.Get(0)).To(Equal(1))
	})

	It("should support the zero value", func() {
		var seq container.Sequence[string]
		seq.Append("a")
		seq.Append("b")
		seq.Append("c")
		Expect(seq.Len()).To(Equal(3))
		Expect(seq.Slice()).To(Equal([]string{"a", "b", "c"}))
	})
})
