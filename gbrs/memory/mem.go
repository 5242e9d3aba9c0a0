package memory

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
)

// Bus access errors. Writes to ROM are silently ignored at runtime; these
// values exist for 16 bit accesses, which are fatal when they come from
// instruction decode (the program stream is corrupt at that point).
var (
	ErrInvalid2ByteAccess = errors.New("invalid 2-byte access across region boundary")
	ErrOutOfBounds        = errors.New("2-byte access out of bounds")
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

// bootRomSize is the size of the boot overlay that shadows the low
// cartridge bytes until the program writes 0x01 to 0xFF50.
const bootRomSize = 0x100

// nonRomSize is the size of the backing storage for everything above the
// cartridge window (0x8000..0xFFFF).
const nonRomSize = 0x10000 - 0x8000

// MMU arbitrates every read and write against cartridge ROM, the RAM
// regions, OAM, the I/O registers, high RAM, the IE register and the
// optional boot overlay.
type MMU struct {
	rom       *ROM
	memory    []byte // backing for 0x8000..0xFFFF
	boot      []byte
	bootOn    bool
	timer     Timer
	regionMap [256]memRegion
}

// New creates a memory unit with no cartridge loaded. Reads from the ROM
// window return 0xFF, like a console powered on with an empty slot.
func New() *MMU {
	m := &MMU{
		memory: make([]byte, nonRomSize),
	}
	m.timer.interruptHandler = func() { m.RequestInterrupt(addr.TimerInterrupt) }
	initRegionMap(m)
	return m
}

// NewWithROM creates a memory unit with the provided cartridge mapped in.
func NewWithROM(rom *ROM) *MMU {
	m := New()
	m.rom = rom
	return m
}

// SetBootROM installs a 256 byte boot overlay and enables it. The overlay
// shadows 0x0000-0x00FF until the program writes 0x01 to 0xFF50.
func (m *MMU) SetBootROM(boot []byte) error {
	if len(boot) != bootRomSize {
		return fmt.Errorf("boot ROM must be %d bytes, got %d", bootRomSize, len(boot))
	}
	m.boot = boot
	m.bootOn = true
	return nil
}

// BootROMEnabled reports whether the boot overlay currently shadows the
// low cartridge bytes.
func (m *MMU) BootROMEnabled() bool {
	return m.bootOn
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	// 0xFE00-0xFE9F is OAM, 0xFEA0-0xFEFF is the prohibited area
	m.regionMap[0xFE] = regionOAM
	// IO + HRAM + IE: 0xFF00-0xFFFF
	m.regionMap[0xFF] = regionIO
}

// Tick advances the timer by one machine clock. Called by the frame
// scheduler once per clock.
func (m *MMU) Tick() {
	m.timer.Tick()
}

// RequestInterrupt sets the interrupt flag (IF register) of the chosen interrupt to 1.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.Write(addr.IF, bit.Set(interrupt.Bit(), m.Read(addr.IF)))
}

// ReadBit reads a single bit of the byte at the given address.
func (m *MMU) ReadBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.Read(address))
}

// SetBit sets or clears a single bit of the byte at the given address.
func (m *MMU) SetBit(index uint8, address uint16, set bool) {
	value := m.Read(address)
	if set {
		value = bit.Set(index, value)
	} else {
		value = bit.Reset(index, value)
	}
	m.Write(address, value)
}

// Read returns the byte the bus yields for the given address.
func (m *MMU) Read(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM:
		if m.bootOn && address < bootRomSize {
			return m.boot[address]
		}
		if m.rom == nil {
			return 0xFF
		}
		return m.rom.Read(address)
	case regionVRAM, regionExtRAM, regionWRAM:
		return m.memory[address-0x8000]
	case regionEcho:
		return m.memory[address-0x2000-0x8000]
	case regionOAM:
		if address > addr.OAMEnd {
			// Prohibited area 0xFEA0-0xFEFF
			return 0xFF
		}
		return m.memory[address-0x8000]
	case regionIO:
		switch address {
		case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
			return m.timer.Read(address)
		case addr.IF:
			// The upper 3 bits of IF are unused and always read as 1.
			return m.memory[address-0x8000] | 0xE0
		}
		return m.memory[address-0x8000]
	}
	panic(fmt.Sprintf("attempted read at unmapped address: 0x%04X", address))
}

// Write stores a byte at the given address, honoring the special
// behavior of the registers that have one.
func (m *MMU) Write(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM:
		// ROM-only cartridges have no banking registers; the write lands nowhere.
		slog.Debug("Ignored write to ROM region", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
	case regionVRAM, regionExtRAM, regionWRAM:
		m.memory[address-0x8000] = value
	case regionEcho:
		m.memory[address-0x2000-0x8000] = value
	case regionOAM:
		if address > addr.OAMEnd {
			// Prohibited area, write is dropped.
			return
		}
		m.memory[address-0x8000] = value
	case regionIO:
		switch address {
		case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
			m.timer.Write(address, value)
			return
		case addr.IF:
			m.memory[address-0x8000] = value | 0xE0
			return
		case addr.DMA:
			m.dmaTransfer(value)
			m.memory[address-0x8000] = value
			return
		case addr.BootOff:
			if value == 0x01 {
				m.bootOn = false
			}
			m.memory[address-0x8000] = value
			return
		}
		m.memory[address-0x8000] = value
	default:
		panic(fmt.Sprintf("attempted write at unmapped address: 0x%04X", address))
	}
}

// dmaTransfer copies 160 bytes from value<<8 into OAM. The copy is atomic;
// cycle-accurate DMA bus blocking is not modeled.
func (m *MMU) dmaTransfer(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < 160; i++ {
		m.memory[addr.OAMStart+i-0x8000] = m.Read(source + i)
	}
}

// isRegionEnd reports whether a 16 bit access starting at this address
// would straddle a region boundary.
func isRegionEnd(address uint16) bool {
	switch address {
	case 0x7FFF, 0x9FFF, 0xBFFF, 0xDFFF, 0xFDFF, addr.OAMEnd, 0xFEFF, 0xFF7F, 0xFFFE:
		return true
	}
	return false
}

// Read16 returns the little-endian 16 bit value at the given address.
// Accesses that straddle a region boundary are rejected.
func (m *MMU) Read16(address uint16) (uint16, error) {
	if address == 0xFFFF {
		return 0, ErrOutOfBounds
	}
	if isRegionEnd(address) {
		return 0, ErrInvalid2ByteAccess
	}
	return bit.Combine(m.Read(address+1), m.Read(address)), nil
}

// Write16 stores a 16 bit value little-endian at the given address.
// Accesses that straddle a region boundary are rejected.
func (m *MMU) Write16(address uint16, value uint16) error {
	if address == 0xFFFF {
		return ErrOutOfBounds
	}
	if isRegionEnd(address) {
		return ErrInvalid2ByteAccess
	}
	m.Write(address, bit.Low(value))
	m.Write(address+1, bit.High(value))
	return nil
}
