package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTablesAreComplete(t *testing.T) {
	for i, op := range opcodeTable {
		assert.NotNilf(t, op, "primary opcode 0x%02X has no handler", i)
	}
	for i, op := range opcodeCBTable {
		assert.NotNilf(t, op, "CB opcode 0x%02X has no handler", i)
	}
}

func TestOpcodeCycleCounts(t *testing.T) {
	testCases := []struct {
		desc    string
		program []uint8
		cycles  int
	}{
		{desc: "NOP", program: []uint8{0x00}, cycles: 1},
		{desc: "LD r, r", program: []uint8{0x41}, cycles: 1},
		{desc: "LD r, n", program: []uint8{0x06, 0x00}, cycles: 2},
		{desc: "LD rr, nn", program: []uint8{0x21, 0x00, 0x00}, cycles: 3},
		{desc: "ADD A, r", program: []uint8{0x80}, cycles: 1},
		{desc: "PUSH", program: []uint8{0xC5}, cycles: 4},
		{desc: "POP", program: []uint8{0xC1}, cycles: 3},
		{desc: "JP", program: []uint8{0xC3, 0x00, 0xC0}, cycles: 4},
		{desc: "CALL", program: []uint8{0xCD, 0x00, 0xC0}, cycles: 6},
		{desc: "RST", program: []uint8{0xC7}, cycles: 4},
		{desc: "ADD SP, n", program: []uint8{0xE8, 0x01}, cycles: 4},
		{desc: "CB register op", program: []uint8{0xCB, 0x11}, cycles: 2},
		{desc: "CB (HL) op", program: []uint8{0xCB, 0x16}, cycles: 4},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(tC.program...)
			cpu.sp = 0xFFFE
			cpu.setHL(0xD000)
			assert.Equal(t, tC.cycles, cpu.Tick())
		})
	}
}
