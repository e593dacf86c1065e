package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = emu.NewRegFile()
	})

	It("should start with all registers zero", func() {
		for reg := uint8(0); reg < emu.NumRegs; reg++ {
			Expect(regFile.Read(reg)).To(Equal(uint32(0)))
		}
	})

	It("should read back the last value written", func() {
		Expect(regFile.Write(5, 0xDEADBEEF)).To(Succeed())
		Expect(regFile.Read(5)).To(Equal(uint32(0xDEADBEEF)))

		Expect(regFile.Write(5, 42)).To(Succeed())
		Expect(regFile.Read(5)).To(Equal(uint32(42)))
	})

	It("should keep registers independent", func() {
		Expect(regFile.Write(1, 100)).To(Succeed())
		Expect(regFile.Write(31, 200)).To(Succeed())

		Expect(regFile.Read(1)).To(Equal(uint32(100)))
		Expect(regFile.Read(31)).To(Equal(uint32(200)))
		Expect(regFile.Read(2)).To(Equal(uint32(0)))
	})

	Describe("zero register", func() {
		It("should always read as 0", func() {
			Expect(regFile.Read(0)).To(Equal(uint32(0)))
		})

		It("should discard writes", func() {
			Expect(regFile.Write(0, 0xFFFFFFFF)).To(Succeed())
			Expect(regFile.Read(0)).To(Equal(uint32(0)))
		})

		It("should not disturb other registers when written", func() {
			Expect(regFile.Write(1, 7)).To(Succeed())
			Expect(regFile.Write(0, 0xFFFFFFFF)).To(Succeed())
			Expect(regFile.Read(1)).To(Equal(uint32(7)))
		})
	})

	Describe("out-of-range indices", func() {
		It("should reject reads above x31", func() {
			_, err := regFile.Read(32)
			Expect(err).To(MatchError(emu.ErrInvalidRegister))

			_, err = regFile.Read(0xFF)
			Expect(err).To(MatchError(emu.ErrInvalidRegister))
		})

		It("should reject writes above x31", func() {
			err := regFile.Write(32, 1)
			Expect(err).To(MatchError(emu.ErrInvalidRegister))

			err = regFile.Write(0xFF, 1)
			Expect(err).To(MatchError(emu.ErrInvalidRegister))
		})

		It("should leave state untouched on a rejected write", func() {
			Expect(regFile.Write(32, 1)).NotTo(Succeed())
			for reg := uint8(0); reg < emu.NumRegs; reg++ {
				Expect(regFile.Read(reg)).To(Equal(uint32(0)))
			}
		})
	})
})
