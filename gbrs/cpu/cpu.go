package cpu

import (
	"fmt"

	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
	"github.com/TobiasNienhaus/gbrs/gbrs/memory"
)

// Flag is one of the 4 possible flags used in the flag register (low part of AF)
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// Register8 indexes the CPU's register file.
type Register8 int

// Fixed register file layout. The 16 bit pairs AF/BC/DE/HL are read out of
// adjacent entries.
const (
	RegA Register8 = 0
	RegF Register8 = 1
	RegB Register8 = 2
	RegC Register8 = 3
	RegD Register8 = 4
	RegE Register8 = 5
	RegH Register8 = 6
	RegL Register8 = 7
)

// interruptClocks is the fixed dispatch cost of servicing an interrupt,
// in machine clocks.
const interruptClocks = 5

// CPU is the SM83 interpreter state.
type CPU struct {
	memory *memory.MMU

	regs [8]uint8
	pc   uint16
	sp   uint16

	interruptsEnabled bool // IME
	halted            bool
	stopped           bool

	// eiDelay implements the one-instruction delay of EI: it is set to 2
	// by the opcode and decremented at each instruction boundary; IME goes
	// high when it reaches 0.
	eiDelay int

	// remaining counts the machine clocks left in the instruction or
	// interrupt dispatch currently in flight.
	remaining int

	currentOpcode uint16
}

// New returns a CPU wired to the given memory unit. Execution starts at
// 0x0000: either the boot overlay or, without one, the cartridge's own
// first bytes.
func New(mmu *memory.MMU) *CPU {
	return &CPU{
		memory: mmu,
		sp:     0xFFFE,
	}
}

func (c *CPU) getAF() uint16 { return bit.Combine(c.regs[RegA], c.regs[RegF]) }
func (c *CPU) getBC() uint16 { return bit.Combine(c.regs[RegB], c.regs[RegC]) }
func (c *CPU) getDE() uint16 { return bit.Combine(c.regs[RegD], c.regs[RegE]) }
func (c *CPU) getHL() uint16 { return bit.Combine(c.regs[RegH], c.regs[RegL]) }

// setAF masks the low nibble of F: those bits are never observable as 1.
func (c *CPU) setAF(v uint16) {
	c.regs[RegA] = bit.High(v)
	c.regs[RegF] = bit.Low(v) & 0xF0
}

func (c *CPU) setBC(v uint16) {
	c.regs[RegB] = bit.High(v)
	c.regs[RegC] = bit.Low(v)
}

func (c *CPU) setDE(v uint16) {
	c.regs[RegD] = bit.High(v)
	c.regs[RegE] = bit.Low(v)
}

func (c *CPU) setHL(v uint16) {
	c.regs[RegH] = bit.High(v)
	c.regs[RegL] = bit.Low(v)
}

func (c *CPU) setFlag(flag Flag) {
	c.regs[RegF] |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.regs[RegF] &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.regs[RegF]&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

// flagToBit returns 1 when the flag is set, 0 otherwise.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

func (c *CPU) peekImmediate() uint8 {
	return c.memory.Read(c.pc)
}

func (c *CPU) readImmediate() uint8 {
	value := c.peekImmediate()
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	value, err := c.memory.Read16(c.pc)
	if err != nil {
		// The instruction stream straddles a region boundary; it is corrupt.
		panic(fmt.Sprintf("reading immediate at 0x%04X: %v", c.pc, err))
	}
	c.pc += 2
	return value
}

func (c *CPU) readImmediateSigned() int8 {
	return int8(c.readImmediate())
}

// pushStack pushes a 16 bit value, high byte first. The stack grows
// downward; SP decreases before each byte is stored.
func (c *CPU) pushStack(v uint16) {
	c.sp--
	c.memory.Write(c.sp, bit.High(v))
	c.sp--
	c.memory.Write(c.sp, bit.Low(v))
}

// popStack pops the low byte, then the high byte.
func (c *CPU) popStack() uint16 {
	low := c.memory.Read(c.sp)
	c.sp++
	high := c.memory.Read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

// Tick fetches one opcode at PC, executes it and returns the machine
// clocks it consumed.
func (c *CPU) Tick() int {
	opcode := c.readImmediate()
	c.currentOpcode = uint16(opcode)
	cycles := opcodeTable[opcode](c)

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.interruptsEnabled = true
		}
	}

	return cycles
}

// Clock advances the CPU by a single machine clock. Multi-clock
// instructions and interrupt dispatch are spread over the following calls;
// HALT and STOP consume clocks without fetching.
func (c *CPU) Clock() {
	if c.remaining > 0 {
		c.remaining--
		return
	}

	if c.stopped {
		return
	}

	if c.halted {
		if c.pendingInterrupts() == 0 {
			return
		}
		// Leaving HALT; without IME the pending interrupt is not dispatched.
		c.halted = false
	}

	if c.handleInterrupts() {
		c.remaining = interruptClocks - 1
		return
	}

	c.remaining = c.Tick() - 1
}

// PeekInstruction returns the opcode byte at PC without advancing it.
// Debugging only.
func (c *CPU) PeekInstruction() uint8 {
	return c.memory.Read(c.pc)
}

// PeekData returns the four bytes following the opcode at PC without
// advancing it. Debugging only.
func (c *CPU) PeekData() [4]uint8 {
	var data [4]uint8
	for i := range data {
		data[i] = c.memory.Read(c.pc + 1 + uint16(i))
	}
	return data
}

// GetPC returns the current program counter.
func (c *CPU) GetPC() uint16 { return c.pc }

// GetSP returns the current stack pointer.
func (c *CPU) GetSP() uint16 { return c.sp }

// GetRegister returns one of the eight 8 bit registers.
func (c *CPU) GetRegister(r Register8) uint8 { return c.regs[r] }

// IsHalted reports whether the CPU is in the HALT state.
func (c *CPU) IsHalted() bool { return c.halted }

// IsStopped reports whether the CPU is in the STOP state.
func (c *CPU) IsStopped() bool { return c.stopped }

// FlagString formats the flag register for display, e.g. "Z-HC".
func (c *CPU) FlagString() string {
	flags := []byte("----")
	if c.isSetFlag(zeroFlag) {
		flags[0] = 'Z'
	}
	if c.isSetFlag(subFlag) {
		flags[1] = 'N'
	}
	if c.isSetFlag(halfCarryFlag) {
		flags[2] = 'H'
	}
	if c.isSetFlag(carryFlag) {
		flags[3] = 'C'
	}
	return string(flags)
}
