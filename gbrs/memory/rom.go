package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
)

// Cartridge load errors. Anything that goes wrong while reading or parsing
// a ROM file surfaces as one of these, wrapped with context.
var (
	ErrUnsupportedCartridgeType = errors.New("unsupported cartridge type")
	ErrUnsupportedRomSize       = errors.New("unsupported ROM size")
	ErrUnsupportedRamSize       = errors.New("unsupported RAM size")
	ErrInvalidRomData           = errors.New("invalid ROM data")
)

const (
	titleAddress           = 0x134
	titleEndAddress        = 0x142
	colorFlagAddress       = 0x143
	sgbFlagAddress         = 0x146
	cartridgeTypeAddress   = 0x147
	romSizeAddress         = 0x148
	ramSizeAddress         = 0x149
	destinationCodeAddress = 0x14A
)

// minRomLen is the size of the smallest ROM the hardware shipped (32 KiB).
// Anything shorter cannot even hold a header.
const minRomLen = 0x8000

// ROM holds the immutable program bytes of a cartridge plus its parsed
// header. Only the ROM-only cartridge type (header byte 0x00) is supported;
// everything else fails at load time.
type ROM struct {
	data []byte

	title    string
	color    bool
	superGB  bool
	japanese bool
	romSize  int
	ramSize  int
}

// LoadROMFromFile reads a cartridge image from disk and parses its header.
func LoadROMFromFile(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cartridge: %w", err)
	}
	return LoadROM(data)
}

// LoadROM parses a cartridge image from a byte slice.
func LoadROM(data []byte) (*ROM, error) {
	if len(data) < minRomLen {
		return nil, fmt.Errorf("%w: file is %d bytes, minimum is %d", ErrInvalidRomData, len(data), minRomLen)
	}

	if cartType := data[cartridgeTypeAddress]; cartType != 0x00 {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnsupportedCartridgeType, cartType)
	}

	romSize, err := romSizeFromByte(data[romSizeAddress])
	if err != nil {
		return nil, err
	}
	if len(data) < romSize {
		return nil, fmt.Errorf("%w: file is %d bytes, header declares %d", ErrInvalidRomData, len(data), romSize)
	}

	ramSize, err := ramSizeFromByte(data[ramSizeAddress])
	if err != nil {
		return nil, err
	}

	rom := &ROM{
		data:     data,
		title:    titleFromBytes(data[titleAddress : titleEndAddress+1]),
		color:    data[colorFlagAddress] == 0x80,
		superGB:  data[sgbFlagAddress] == 0x03,
		japanese: data[destinationCodeAddress] == 0x00,
		romSize:  romSize,
		ramSize:  ramSize,
	}

	slog.Info("Loaded cartridge",
		"title", rom.title,
		"rom_size", rom.romSize,
		"ram_size", rom.ramSize,
		"color", rom.color,
		"super_gb", rom.superGB,
		"japanese", rom.japanese)

	return rom, nil
}

func romSizeFromByte(b byte) (int, error) {
	switch b {
	case 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06:
		return 0x8000 << b, nil
	case 0x52:
		return 72 * 0x4000, nil
	case 0x53:
		return 80 * 0x4000, nil
	case 0x54:
		return 96 * 0x4000, nil
	}
	return 0, fmt.Errorf("%w: 0x%02X", ErrUnsupportedRomSize, b)
}

func ramSizeFromByte(b byte) (int, error) {
	switch b {
	case 0x00:
		return 0, nil
	case 0x01:
		return 2 * 1024, nil
	case 0x02:
		return 8 * 1024, nil
	case 0x03:
		return 32 * 1024, nil
	case 0x04:
		return 128 * 1024, nil
	}
	return 0, fmt.Errorf("%w: 0x%02X", ErrUnsupportedRamSize, b)
}

// titleFromBytes reads the ASCII title, stopping at the first NUL.
func titleFromBytes(bytes []byte) string {
	end := len(bytes)
	for i, b := range bytes {
		if b == 0x00 {
			end = i
			break
		}
	}
	return string(bytes[:end])
}

// Title returns the game title from the cartridge header.
func (r *ROM) Title() string { return r.title }

// IsColor reports whether the header declares a color game.
func (r *ROM) IsColor() bool { return r.color }

// IsSuperGB reports whether the game supports Super features.
func (r *ROM) IsSuperGB() bool { return r.superGB }

// IsJapanese reports whether the cartridge targets the Japanese market.
func (r *ROM) IsJapanese() bool { return r.japanese }

// Size returns the ROM size declared by the header, in bytes.
func (r *ROM) Size() int { return r.romSize }

// RAMSize returns the cartridge RAM size declared by the header, in bytes.
func (r *ROM) RAMSize() int { return r.ramSize }

// Read returns the byte at the given address. The caller guarantees the
// address is inside the mapped ROM window (below 0x8000).
func (r *ROM) Read(address uint16) uint8 {
	return r.data[address]
}

// Read16 returns the little-endian 16 bit value at the given address.
func (r *ROM) Read16(address uint16) uint16 {
	return bit.Combine(r.data[address+1], r.data[address])
}
