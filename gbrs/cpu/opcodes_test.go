package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/TobiasNienhaus/gbrs/gbrs/memory"
)

// codeBase is where tests place instructions: work RAM, since the ROM
// window is not writable.
const codeBase = 0xC000

func newTestCPU(program ...uint8) (*CPU, *memory.MMU) {
	mmu := memory.New()
	cpu := New(mmu)
	cpu.pc = codeBase
	for i, b := range program {
		mmu.Write(codeBase+uint16(i), b)
	}
	return cpu, mmu
}

func TestOpcode_ld(t *testing.T) {
	t.Run("LD B, n", func(t *testing.T) {
		cpu, _ := newTestCPU(0x06, 0x42)
		cycles := cpu.Tick()
		assert.Equal(t, 2, cycles)
		assert.Equal(t, uint8(0x42), cpu.regs[RegB])
	})

	t.Run("LD BC, nn", func(t *testing.T) {
		cpu, _ := newTestCPU(0x01, 0x34, 0x12)
		cycles := cpu.Tick()
		assert.Equal(t, 3, cycles)
		assert.Equal(t, uint16(0x1234), cpu.getBC())
	})

	t.Run("LD (HL), A and back", func(t *testing.T) {
		cpu, mmu := newTestCPU(0x77, 0x7E)
		cpu.regs[RegA] = 0x99
		cpu.setHL(0xD000)

		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0x99), mmu.Read(0xD000))

		cpu.regs[RegA] = 0
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0x99), cpu.regs[RegA])
	})

	t.Run("LD A, (HL+) advances HL", func(t *testing.T) {
		cpu, mmu := newTestCPU(0x2A)
		mmu.Write(0xD000, 0x55)
		cpu.setHL(0xD000)

		cpu.Tick()
		assert.Equal(t, uint8(0x55), cpu.regs[RegA])
		assert.Equal(t, uint16(0xD001), cpu.getHL())
	})

	t.Run("LD (nn), SP", func(t *testing.T) {
		cpu, mmu := newTestCPU(0x08, 0x00, 0xD0)
		cpu.sp = 0xBEEF

		assert.Equal(t, 5, cpu.Tick())
		assert.Equal(t, uint8(0xEF), mmu.Read(0xD000))
		assert.Equal(t, uint8(0xBE), mmu.Read(0xD001))
	})

	t.Run("LDH writes to the IO page", func(t *testing.T) {
		cpu, mmu := newTestCPU(0xE0, 0x80)
		cpu.regs[RegA] = 0x42

		assert.Equal(t, 3, cpu.Tick())
		assert.Equal(t, uint8(0x42), mmu.Read(0xFF80))
	})
}

// A CALL followed by an immediate RET restores PC and SP.
func TestOpcode_callRet(t *testing.T) {
	cpu, _ := newTestCPU(0xCD, 0x10, 0xC0) // CALL 0xC010
	cpu.sp = 0xFFFE
	spBefore := cpu.sp

	assert.Equal(t, 6, cpu.Tick())
	assert.Equal(t, uint16(0xC010), cpu.pc)

	cpu.memory.Write(0xC010, 0xC9) // RET
	assert.Equal(t, 4, cpu.Tick())

	assert.Equal(t, uint16(codeBase+3), cpu.pc)
	assert.Equal(t, spBefore, cpu.sp)
}

func TestOpcode_rst(t *testing.T) {
	cpu, _ := newTestCPU(0xEF) // RST 28H
	cpu.sp = 0xFFFE

	assert.Equal(t, 4, cpu.Tick())
	assert.Equal(t, uint16(0x0028), cpu.pc)
	assert.Equal(t, uint16(codeBase+1), cpu.popStack())
}

func TestOpcode_jumps(t *testing.T) {
	t.Run("JP nn", func(t *testing.T) {
		cpu, _ := newTestCPU(0xC3, 0x00, 0xD0)
		assert.Equal(t, 4, cpu.Tick())
		assert.Equal(t, uint16(0xD000), cpu.pc)
	})

	t.Run("JR backwards", func(t *testing.T) {
		cpu, _ := newTestCPU(0x18, 0xFE) // JR -2: loops onto itself
		assert.Equal(t, 3, cpu.Tick())
		assert.Equal(t, uint16(codeBase), cpu.pc)
	})

	t.Run("JR NZ untaken costs less", func(t *testing.T) {
		cpu, _ := newTestCPU(0x20, 0x10)
		cpu.setFlag(zeroFlag)
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint16(codeBase+2), cpu.pc)
	})

	t.Run("JP (HL)", func(t *testing.T) {
		cpu, _ := newTestCPU(0xE9)
		cpu.setHL(0xD123)
		assert.Equal(t, 1, cpu.Tick())
		assert.Equal(t, uint16(0xD123), cpu.pc)
	})

	t.Run("RET Z taken and untaken", func(t *testing.T) {
		cpu, _ := newTestCPU(0xC8, 0xC8)
		cpu.sp = 0xFFFC
		cpu.pushStack(0xD000)

		cpu.resetFlag(zeroFlag)
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint16(codeBase+1), cpu.pc)

		cpu.setFlag(zeroFlag)
		assert.Equal(t, 5, cpu.Tick())
		assert.Equal(t, uint16(0xD000), cpu.pc)
	})
}

// POP AF then PUSH AF then POP AF yields the same A and an F with a clear
// low nibble.
func TestOpcode_popAFMasksFlags(t *testing.T) {
	cpu, _ := newTestCPU(0xF1, 0xF5, 0xF1) // POP AF; PUSH AF; POP AF
	cpu.sp = 0xFFF0
	cpu.pushStack(0x12FF)

	assert.Equal(t, 3, cpu.Tick())
	assert.Equal(t, uint8(0x12), cpu.regs[RegA])
	assert.Equal(t, uint8(0xF0), cpu.regs[RegF])

	assert.Equal(t, 4, cpu.Tick())
	assert.Equal(t, 3, cpu.Tick())
	assert.Equal(t, uint8(0x12), cpu.regs[RegA])
	assert.Equal(t, uint8(0x00), cpu.regs[RegF]&0x0F)
}

// Scenario: ADD A,B with A=0x0F, B=0x01.
func TestOpcode_addABFlags(t *testing.T) {
	cpu, _ := newTestCPU(0x80)
	cpu.regs[RegA] = 0x0F
	cpu.regs[RegB] = 0x01

	assert.Equal(t, 1, cpu.Tick())
	assert.Equal(t, uint8(0x10), cpu.regs[RegA])
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))
}

// Scenario: INC B with B=0xFF leaves the carry flag alone.
func TestOpcode_incBOverflow(t *testing.T) {
	cpu, _ := newTestCPU(0x04)
	cpu.regs[RegB] = 0xFF
	cpu.setFlag(carryFlag)

	assert.Equal(t, 1, cpu.Tick())
	assert.Equal(t, uint8(0x00), cpu.regs[RegB])
	assert.True(t, cpu.isSetFlag(zeroFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.True(t, cpu.isSetFlag(carryFlag))
}

func TestOpcode_rotatesForceZeroReset(t *testing.T) {
	// RLCA on a zero A must not set the zero flag.
	cpu, _ := newTestCPU(0x07)
	cpu.regs[RegA] = 0x00
	cpu.Tick()
	assert.False(t, cpu.isSetFlag(zeroFlag))

	// the CB variant does
	cpu, _ = newTestCPU(0xCB, 0x07) // RLC A
	cpu.regs[RegA] = 0x00
	assert.Equal(t, 2, cpu.Tick())
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestOpcode_cbMemoryVariants(t *testing.T) {
	t.Run("SET 7, (HL)", func(t *testing.T) {
		cpu, mmu := newTestCPU(0xCB, 0xFE)
		cpu.setHL(0xD000)
		mmu.Write(0xD000, 0x00)

		assert.Equal(t, 4, cpu.Tick())
		assert.Equal(t, uint8(0x80), mmu.Read(0xD000))
	})

	t.Run("RES 0, (HL)", func(t *testing.T) {
		cpu, mmu := newTestCPU(0xCB, 0x86)
		cpu.setHL(0xD000)
		mmu.Write(0xD000, 0xFF)

		assert.Equal(t, 4, cpu.Tick())
		assert.Equal(t, uint8(0xFE), mmu.Read(0xD000))
	})

	t.Run("BIT 0, (HL) costs 3", func(t *testing.T) {
		cpu, mmu := newTestCPU(0xCB, 0x46)
		cpu.setHL(0xD000)
		mmu.Write(0xD000, 0x01)

		assert.Equal(t, 3, cpu.Tick())
		assert.False(t, cpu.isSetFlag(zeroFlag))
	})

	t.Run("SWAP B", func(t *testing.T) {
		cpu, _ := newTestCPU(0xCB, 0x30)
		cpu.regs[RegB] = 0x12
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0x21), cpu.regs[RegB])
	})
}

func TestOpcode_stop(t *testing.T) {
	cpu, _ := newTestCPU(0x10, 0x00, 0x04) // STOP consumes the next byte
	cpu.Tick()

	assert.True(t, cpu.IsStopped())
	assert.Equal(t, uint16(codeBase+2), cpu.pc)

	// a stopped CPU consumes clocks without fetching
	pc := cpu.pc
	for i := 0; i < 10; i++ {
		cpu.Clock()
	}
	assert.Equal(t, pc, cpu.pc)
}

func TestOpcode_unknownPanics(t *testing.T) {
	cpu, _ := newTestCPU(0xD3)
	assert.Panics(t, func() { cpu.Tick() })
}

// F's low nibble stays zero through arbitrary flag traffic.
func TestFlagRegisterLowNibbleStaysClear(t *testing.T) {
	program := []uint8{
		0x3E, 0x0F, // LD A, 0x0F
		0xC6, 0x01, // ADD A, 0x01
		0x37,       // SCF
		0x3F,       // CCF
		0xD6, 0x42, // SUB A, 0x42
		0x27, // DAA
	}
	cpu, _ := newTestCPU(program...)
	for cpu.pc < codeBase+uint16(len(program)) {
		cpu.Tick()
		assert.Equal(t, uint8(0), cpu.regs[RegF]&0x0F)
	}
}
