package container_test

import (
	"github.com/bsm/sngraph/container"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("List", func() {
	var subject *container.List[string]

	BeforeEach(func() {
		subject = container.NewList[string]()
	})

	It("should init empty", func() {
		Expect(subject.Len()).To(Equal(0))
		Expect(subject.Slice()).To(BeEmpty())
		Expect(subject.Scan().Next()).To(BeFalse())
	})

	It("should push front in reverse order", func() {
		subject.PushFront("a")
		subject.PushFront("b")
		subject.PushFront("c")
		Expect(subject.Len()).To(Equal(3))
		Expect(subject.Slice()).To(Equal([]string{"c", "b", "a"}))
	})

	It("should push back in insertion order", func() {
		subject.PushBack("a")
		subject.PushBack("b")
		subject.PushBack("c")
		Expect(subject.Len()).To(Equal(3))
		Expect(subject.Slice()).To(Equal([]string{"a", "b", "c"}))
	})

	It("should mix front and back pushes", func() {
		subject.PushBack("a")
		subject.PushFront("b")
		subject.PushBack("c")
		Expect(subject.Slice()).To(Equal([]string{"b", "a", "c"}))
	})

	It("should scan forward", func() {
		subject.PushBack("a")
		subject.PushBack("b")

		c := subject.Scan()
		Expect(c.Next()).To(BeTrue())
		Expect(c.Value()).To(Equal("a"))
		Expect(c.Next()).To(BeTrue())
		Expect(c.Value()).To(Equal("b"))
		Expect(c.Next()).To(BeFalse())
	})

	It("should restart scans independently", func() {
		subject.PushBack("a")
		subject.PushBack("b")

		c1 := subject.Scan()
		Expect(c1.Next()).To(BeTrue())

		c2 := subject.Scan()
		Expect(c2.Next()).To(BeTrue())
		Expect(c2.Value()).To(Equal("a"))
		Expect(c1.Value()).To(Equal("a"))
		Expect(c1.Next()).To(BeTrue())
		Expect(c1.Value()).To(Equal("b"))
		Expect(c2.Value()).To(Equal("a"))
	})
})
