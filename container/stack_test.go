package container_test

import (
	"github.com/bsm/sngraph/container"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stack", func() {
	var subject *container.Stack[int]

	BeforeEach(func() {
		subject = container.NewStack[int]()
	})

	It("should init empty", func() {
		Expect(subject.Empty()).To(BeTrue())
		Expect(subject.Len()).To(Equal(0))
	})

	It("should pop in reverse push order", func() {
		for i := 1; i <= 50; i++ {
			subject.Push(i)
		}
		Expect(subject.Len()).To(Equal(50))

		for i := 50; i >= 1; i-- {
			Expect(subject.Pop()).To(Equal(i), "for %d", i)
		}
		Expect(subject.Empty()).To(BeTrue())
	})

	It("should fail to pop when empty", func() {
		_, err := subject.Pop()
		Expect(err).To(MatchError(container.ErrEmptyContainer))

		subject.Push(1)
		Expect(subject.Pop()).To(Equal(1))
		_, err = subject.Pop()
		Expect(err).To(MatchError(container.ErrEmptyContainer))
	})

	It("should peek without mutation", func() {
		_, ok := subject.Peek()
		Expect(ok).To(BeFalse())

		subject.Push(7)
		v, ok := subject.Peek()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(7))
		Expect(subject.Len()).To(Equal(1))
	})

	It("should reuse popped slots", func() {
		subject.Push(1)
		subject.Push(2)
		Expect(subject.Pop()).To(Equal(2))

		subject.Push(3)
		Expect(subject.Len()).To(Equal(2))
		Expect(subject.Pop()).To(Equal(3))
		Expect(subject.Pop()).To(Equal(1))
	})
})
