package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
)

func TestMMU_ramRoundTrip(t *testing.T) {
	mmu := New()

	addresses := []uint16{
		0x8000, 0x9FFF, // VRAM
		0xA000, 0xBFFF, // external RAM
		0xC000, 0xDFFF, // WRAM
		0xFE00, 0xFE9F, // OAM
		0xFF80, 0xFFFE, // HRAM
		0xFFFF, // IE
	}
	for _, a := range addresses {
		mmu.Write(a, 0x42)
		assert.Equalf(t, uint8(0x42), mmu.Read(a), "round trip at 0x%04X", a)
	}
}

func TestMMU_romWritesIgnored(t *testing.T) {
	rom, err := LoadROM(makeROMImage(func(data []byte) {
		data[0x1234] = 0x99
	}))
	assert.NoError(t, err)
	mmu := NewWithROM(rom)

	mmu.Write(0x1234, 0x00)
	assert.Equal(t, uint8(0x99), mmu.Read(0x1234))
}

func TestMMU_emptySlotReadsFF(t *testing.T) {
	mmu := New()
	assert.Equal(t, uint8(0xFF), mmu.Read(0x0000))
	assert.Equal(t, uint8(0xFF), mmu.Read(0x7FFF))
}

func TestMMU_echoMirrorsWRAM(t *testing.T) {
	mmu := New()

	mmu.Write(0xC123, 0x55)
	assert.Equal(t, uint8(0x55), mmu.Read(0xE123))

	mmu.Write(0xE456, 0xAA)
	assert.Equal(t, uint8(0xAA), mmu.Read(0xC456))
}

func TestMMU_prohibitedArea(t *testing.T) {
	mmu := New()

	mmu.Write(0xFEA0, 0x42)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEA0))
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEFF))
}

func TestMMU_divWriteResets(t *testing.T) {
	mmu := New()

	// let DIV tick up
	for i := 0; i < dividerClocks*3; i++ {
		mmu.Tick()
	}
	assert.Equal(t, uint8(3), mmu.Read(addr.DIV))

	mmu.Write(addr.DIV, 0x7E)
	assert.Equal(t, uint8(0), mmu.Read(addr.DIV))
}

func TestMMU_dmaCopiesIntoOAM(t *testing.T) {
	mmu := New()

	for i := uint16(0); i < 160; i++ {
		mmu.Write(0xC000+i, uint8(i))
	}

	mmu.Write(addr.DMA, 0xC0)

	for i := uint16(0); i < 160; i++ {
		assert.Equal(t, uint8(i), mmu.Read(addr.OAMStart+i))
	}
	assert.Equal(t, uint8(0xC0), mmu.Read(addr.DMA))
}

func TestMMU_bootOverlay(t *testing.T) {
	mmu := New()

	boot := make([]byte, 0x100)
	for i := range boot {
		boot[i] = uint8(i)
	}
	assert.NoError(t, mmu.SetBootROM(boot))
	assert.True(t, mmu.BootROMEnabled())

	assert.Equal(t, uint8(0x00), mmu.Read(0x0000))
	assert.Equal(t, uint8(0xFF), mmu.Read(0x00FF))
	// beyond the overlay the empty cartridge slot answers
	assert.Equal(t, uint8(0xFF), mmu.Read(0x0100))

	// writes of anything but 0x01 keep the overlay on
	mmu.Write(addr.BootOff, 0x00)
	assert.True(t, mmu.BootROMEnabled())

	mmu.Write(addr.BootOff, 0x01)
	assert.False(t, mmu.BootROMEnabled())
	assert.Equal(t, uint8(0xFF), mmu.Read(0x0042))

	// the overlay never comes back
	mmu.Write(addr.BootOff, 0x00)
	assert.False(t, mmu.BootROMEnabled())
}

func TestMMU_bootROMSizeChecked(t *testing.T) {
	mmu := New()
	assert.Error(t, mmu.SetBootROM(make([]byte, 0x80)))
}

func TestMMU_read16(t *testing.T) {
	mmu := New()

	mmu.Write(0xC000, 0xCD)
	mmu.Write(0xC001, 0xAB)

	value, err := mmu.Read16(0xC000)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), value)
}

func TestMMU_write16(t *testing.T) {
	mmu := New()

	assert.NoError(t, mmu.Write16(0xC000, 0xABCD))
	assert.Equal(t, uint8(0xCD), mmu.Read(0xC000))
	assert.Equal(t, uint8(0xAB), mmu.Read(0xC001))
}

func TestMMU_16bitAccessCannotStraddleRegions(t *testing.T) {
	mmu := New()

	boundaries := []uint16{0x7FFF, 0x9FFF, 0xBFFF, 0xDFFF, 0xFDFF, 0xFE9F, 0xFEFF, 0xFF7F, 0xFFFE}
	for _, a := range boundaries {
		_, err := mmu.Read16(a)
		assert.ErrorIsf(t, err, ErrInvalid2ByteAccess, "read at 0x%04X", a)

		err = mmu.Write16(a, 0x1234)
		assert.ErrorIsf(t, err, ErrInvalid2ByteAccess, "write at 0x%04X", a)
	}

	_, err := mmu.Read16(0xFFFF)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMMU_interruptFlagUpperBitsRead1(t *testing.T) {
	mmu := New()
	mmu.Write(addr.IF, 0x00)
	assert.Equal(t, uint8(0xE0), mmu.Read(addr.IF))
}

func TestMMU_requestInterrupt(t *testing.T) {
	mmu := New()
	mmu.Write(addr.IF, 0x00)

	mmu.RequestInterrupt(addr.TimerInterrupt)
	assert.Equal(t, uint8(0x04), mmu.Read(addr.IF)&0x1F)

	mmu.RequestInterrupt(addr.VBlankInterrupt)
	assert.Equal(t, uint8(0x05), mmu.Read(addr.IF)&0x1F)
}
