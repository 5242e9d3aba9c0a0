package cpu

import (
	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
)

// interruptPriority is the strict dispatch order, highest priority first.
var interruptPriority = [5]addr.Interrupt{
	addr.VBlankInterrupt,
	addr.LCDSTATInterrupt,
	addr.TimerInterrupt,
	addr.SerialInterrupt,
	addr.JoypadInterrupt,
}

// RequestInterrupt sets the IF bit of the given interrupt.
func (c *CPU) RequestInterrupt(interrupt addr.Interrupt) {
	c.memory.RequestInterrupt(interrupt)
}

// pendingInterrupts returns the set of interrupts that are both enabled
// and requested.
func (c *CPU) pendingInterrupts() uint8 {
	return c.memory.Read(addr.IE) & c.memory.Read(addr.IF) & 0x1F
}

// handleInterrupts dispatches the highest-priority pending interrupt, if
// IME allows it: the IF bit is cleared, IME goes low, PC is pushed and
// execution continues at the interrupt's vector. Reports whether one was
// dispatched; servicing costs a fixed number of clocks (interruptClocks).
func (c *CPU) handleInterrupts() bool {
	if !c.interruptsEnabled {
		return false
	}

	pending := c.pendingInterrupts()
	if pending == 0 {
		return false
	}

	for _, interrupt := range interruptPriority {
		if !bit.IsSet(interrupt.Bit(), pending) {
			continue
		}

		c.memory.Write(addr.IF, bit.Reset(interrupt.Bit(), c.memory.Read(addr.IF)))
		c.interruptsEnabled = false
		c.eiDelay = 0
		c.pushStack(c.pc)
		c.pc = interrupt.Vector()
		return true
	}

	return false
}
