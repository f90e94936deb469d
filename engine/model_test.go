package engine

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

var _ = Describe("ProcessingElement", func() {
	var pe ProcessingElement

	It("should register the product when reset is clear", func() {
		Expect(pe.Step(false, 3, 7, 0)).To(Equal(uint16(21)))
	})

	It("should accumulate onto cPrev", func() {
		Expect(pe.Step(false, 10, 10, 500)).To(Equal(uint16(600)))
	})

	It("should clear synchronously when reset is asserted", func() {
		Expect(pe.Step(true, 255, 255, 12345)).To(Equal(uint16(0)))
	})

	It("should widen the 8x8 multiply to 16 bits", func() {
		Expect(pe.Step(false, 255, 255, 0)).To(Equal(uint16(65025)))
	})

	It("should wrap silently on overflow", func() {
		// 65025 + 65025 = 130050 mod 2^16.
		Expect(pe.Step(false, 255, 255, 65025)).To(Equal(uint16(64514)))
	})
})

var _ = Describe("Grid", func() {
	var (
		shape systolic.Shape
		grid  *Grid
		a, b  []uint8
	)

	BeforeEach(func() {
		shape = systolic.Default3x3()
		grid = NewGrid(shape)
		a = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		b = []uint8{2, 1, 3, 4, 5, 7, 6, 9, 8}
	})

	It("should start with all registers cleared", func() {
		Expect(grid.Registers()).To(Equal(make([]uint16, 9)))
	})

	It("should register only the k=0 product term of each cell", func() {
		regs, err := grid.Advance(false, a, b)

		Expect(err).ToNot(HaveOccurred())
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := uint16(a[r*3]) * uint16(b[c])
				Expect(regs[r*3+c]).To(Equal(want))
			}
		}
	})

	It("should clear every register on a reset tick", func() {
		_, err := grid.Advance(false, a, b)
		Expect(err).ToNot(HaveOccurred())

		regs, err := grid.Advance(true, a, b)

		Expect(err).ToNot(HaveOccurred())
		Expect(regs).To(Equal(make([]uint16, 9)))
		Expect(grid.Registers()).To(Equal(make([]uint16, 9)))
	})

	It("should not accumulate across ticks", func() {
		first, err := grid.Advance(false, a, b)
		Expect(err).ToNot(HaveOccurred())

		second, err := grid.Advance(false, a, b)

		Expect(err).ToNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should reject a short A operand without touching state", func() {
		_, err := grid.Advance(false, a, b)
		Expect(err).ToNot(HaveOccurred())
		before := grid.Registers()

		_, err = grid.Advance(false, a[:8], b)

		var shapeErr *systolic.InputShapeError
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &shapeErr)).To(BeTrue())
		Expect(shapeErr.Operand).To(Equal("A"))
		Expect(grid.Registers()).To(Equal(before))
	})

	It("should reject a long B operand without touching state", func() {
		before := grid.Registers()

		_, err := grid.Advance(false, a, append(b, 0))

		var shapeErr *systolic.InputShapeError
		Expect(errors.As(err, &shapeErr)).To(BeTrue())
		Expect(shapeErr.Operand).To(Equal("B"))
		Expect(grid.Registers()).To(Equal(before))
	})

	It("should hand out register copies, not the array itself", func() {
		regs := grid.Registers()
		regs[0] = 0xBEEF

		Expect(grid.Registers()[0]).To(Equal(uint16(0)))
	})
})

var _ = Describe("CompletionNetwork", func() {
	var (
		shape systolic.Shape
		net   CompletionNetwork
		a, b  []uint8
	)

	BeforeEach(func() {
		shape = systolic.Default3x3()
		net = NewCompletionNetwork(shape)
		a = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		b = []uint8{2, 1, 3, 4, 5, 7, 6, 9, 8}
	})

	It("should add the k=1 and k=2 terms to each registered value", func() {
		regs := make([]uint16, 9)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				regs[r*3+c] = uint16(a[r*3]) * uint16(b[c])
			}
		}

		out := net.Finalize(regs, a, b)

		Expect(out).To(Equal([]uint16{
			28, 38, 41,
			64, 83, 95,
			100, 128, 149,
		}))
	})

	It("should keep the combinational terms live over cleared registers", func() {
		out := net.Finalize(make([]uint16, 9), a, b)

		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := uint16(a[r*3+1])*uint16(b[3+c]) +
					uint16(a[r*3+2])*uint16(b[6+c])
				Expect(out[r*3+c]).To(Equal(want))
			}
		}
	})

	It("should be pure", func() {
		regs := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}
		before := append([]uint16(nil), regs...)

		first := net.Finalize(regs, a, b)
		second := net.Finalize(regs, a, b)

		Expect(first).To(Equal(second))
		Expect(regs).To(Equal(before))
	})
})
