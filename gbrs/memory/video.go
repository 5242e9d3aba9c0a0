package memory

import (
	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
)

// VideoMode is the PPU's current rendering stage.
// The values match the STAT register bits 1-0.
type VideoMode uint8

const (
	// HBlankMode (Mode 0): horizontal blank period
	HBlankMode VideoMode = 0
	// VBlankMode (Mode 1): vertical blank period
	VBlankMode VideoMode = 1
	// OAMMode (Mode 2): the PPU is scanning OAM
	OAMMode VideoMode = 2
	// PixelTransferMode (Mode 3): the PPU is pushing pixels
	PixelTransferMode VideoMode = 3
)

// LCD Status register bit values
// Bit 7 - unused
// Bit 6 - interrupt on LYC == LY
// Bit 5 - interrupt on mode 2 (OAM)
// Bit 4 - interrupt on mode 1 (VBlank)
// Bit 3 - interrupt on mode 0 (HBlank)
// Bit 2 - LYC == LY comparison result
// Bit 1,0 - current PPU mode
type StatBit uint8

const (
	// LycStatInterrupt enables the LYC=LY STAT interrupt source.
	LycStatInterrupt StatBit = 6
	// OamStatInterrupt enables the mode-2 STAT interrupt source.
	OamStatInterrupt StatBit = 5
	// VBlankStatInterrupt enables the mode-1 STAT interrupt source.
	VBlankStatInterrupt StatBit = 4
	// HBlankStatInterrupt enables the mode-0 STAT interrupt source.
	HBlankStatInterrupt StatBit = 3
	// LycLyCmp is the LYC == LY comparison flag.
	LycLyCmp StatBit = 2
)

// LCD Control register bit values
// Bit 7 - LCD display enable
// Bit 6 - window tile map select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 5 - window display enable
// Bit 4 - BG & window tile data select (0=signed @ 9000, 1=unsigned @ 8000)
// Bit 3 - BG tile map select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 2 - sprite size (0=8x8, 1=8x16)
// Bit 1 - sprite display enable
// Bit 0 - BG display enable
type lcdcBit uint8

const (
	lcdDisplayEnable    lcdcBit = 7
	windowTileMapSelect lcdcBit = 6
	windowDisplayEnable lcdcBit = 5
	tileDataSelect      lcdcBit = 4
	bgTileMapSelect     lcdcBit = 3
	spriteSize          lcdcBit = 2
	spriteDisplayEnable lcdcBit = 1
	bgDisplayEnable     lcdcBit = 0
)

func (m *MMU) lcdcBitSet(b lcdcBit) bool {
	return bit.IsSet(uint8(b), m.Read(addr.LCDC))
}

// DisplayEnabled reports LCDC bit 7.
func (m *MMU) DisplayEnabled() bool { return m.lcdcBitSet(lcdDisplayEnable) }

// WindowEnabled reports LCDC bit 5.
func (m *MMU) WindowEnabled() bool { return m.lcdcBitSet(windowDisplayEnable) }

// BackgroundEnabled reports LCDC bit 0.
func (m *MMU) BackgroundEnabled() bool { return m.lcdcBitSet(bgDisplayEnable) }

// SpritesEnabled reports LCDC bit 1.
func (m *MMU) SpritesEnabled() bool { return m.lcdcBitSet(spriteDisplayEnable) }

// SpriteHeight returns 16 when 8x16 sprites are selected, 8 otherwise.
func (m *MMU) SpriteHeight() int {
	if m.lcdcBitSet(spriteSize) {
		return 16
	}
	return 8
}

// TileAddressingMode selects how tile map entries index into tile data.
type TileAddressingMode uint8

const (
	// SignedTiles: entries are signed offsets around 0x9000.
	SignedTiles TileAddressingMode = iota
	// UnsignedTiles: entries are unsigned offsets from 0x8000.
	UnsignedTiles
)

// TileDataMode returns the BG/window tile data addressing mode from LCDC bit 4.
func (m *MMU) TileDataMode() TileAddressingMode {
	if m.lcdcBitSet(tileDataSelect) {
		return UnsignedTiles
	}
	return SignedTiles
}

func (m *MMU) bgTileMapBase() uint16 {
	if m.lcdcBitSet(bgTileMapSelect) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

func (m *MMU) windowTileMapBase() uint16 {
	if m.lcdcBitSet(windowTileMapSelect) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

// GetLCDStatus reads a named STAT bit.
func (m *MMU) GetLCDStatus(b StatBit) bool {
	return bit.IsSet(uint8(b), m.Read(addr.STAT))
}

// SetLCDStatus sets a named STAT bit.
func (m *MMU) SetLCDStatus(b StatBit, high bool) {
	m.SetBit(uint8(b), addr.STAT, high)
}

// UpdateLycLyCmp refreshes STAT bit 2 from the current LY and LYC values.
func (m *MMU) UpdateLycLyCmp() {
	m.SetLCDStatus(LycLyCmp, m.ReadLY() == m.ReadLYC())
}

// SetVideoMode writes the mode code into STAT bits 1-0.
func (m *MMU) SetVideoMode(mode VideoMode) {
	stat := m.Read(addr.STAT)
	m.Write(addr.STAT, stat&0xFC|byte(mode))
}

// GetVideoMode reads the mode code from STAT bits 1-0.
func (m *MMU) GetVideoMode() VideoMode {
	return VideoMode(m.Read(addr.STAT) & 0x03)
}

// ReadLY returns the current scanline register.
func (m *MMU) ReadLY() uint8 { return m.Read(addr.LY) }

// SetLY writes the current scanline register.
func (m *MMU) SetLY(v uint8) { m.Write(addr.LY, v) }

// ReadLYC returns the line compare register.
func (m *MMU) ReadLYC() uint8 { return m.Read(addr.LYC) }

// ReadSCX returns the background X scroll register.
func (m *MMU) ReadSCX() uint8 { return m.Read(addr.SCX) }

// ReadSCY returns the background Y scroll register.
func (m *MMU) ReadSCY() uint8 { return m.Read(addr.SCY) }

// ReadWX returns the window X position register.
func (m *MMU) ReadWX() uint8 { return m.Read(addr.WX) }

// ReadWY returns the window Y position register.
func (m *MMU) ReadWY() uint8 { return m.Read(addr.WY) }

// Palette is a 4-entry color remap table parsed from BGP/OBP0/OBP1.
// Two bits per slot, LSB first.
type Palette [4]uint8

func paletteFromByte(b uint8) Palette {
	return Palette{
		b & 0x03,
		(b >> 2) & 0x03,
		(b >> 4) & 0x03,
		(b >> 6) & 0x03,
	}
}

// Remap translates a 2 bit color index through the palette.
func (p Palette) Remap(color uint8) uint8 {
	return p[color&0x03]
}

// BgPalette parses BGP into a remap table.
func (m *MMU) BgPalette() Palette {
	return paletteFromByte(m.Read(addr.BGP))
}

// SpritePalette0 parses OBP0 into a remap table.
func (m *MMU) SpritePalette0() Palette {
	return paletteFromByte(m.Read(addr.OBP0))
}

// SpritePalette1 parses OBP1 into a remap table.
func (m *MMU) SpritePalette1() Palette {
	return paletteFromByte(m.Read(addr.OBP1))
}

// Tile is an 8x8 matrix of 2 bit color indices decoded from 16 bytes of
// tile data (two bit planes per row).
type Tile [8][8]uint8

// At returns the color index at the given tile coordinates.
func (t *Tile) At(x, y int) uint8 {
	return t[y][x]
}

// ReadTile decodes the 16 bytes at the given address into a tile. For each
// row the low-plane byte comes first; bit 7 of each plane is the leftmost
// pixel.
func (m *MMU) ReadTile(address uint16) Tile {
	var t Tile
	for row := 0; row < 8; row++ {
		lo := m.Read(address + uint16(row*2))
		hi := m.Read(address + uint16(row*2) + 1)
		for col := 0; col < 8; col++ {
			shift := uint8(7 - col)
			t[row][col] = bit.GetBitValue(shift, hi)<<1 | bit.GetBitValue(shift, lo)
		}
	}
	return t
}

// TileMap is a 32x32 matrix of raw tile map entries together with the
// addressing mode active when it was loaded.
type TileMap struct {
	mode  TileAddressingMode
	tiles [32][32]uint8
}

// TileAddress resolves the tile data address for a tile map cell.
func (tm *TileMap) TileAddress(x, y int) uint16 {
	entry := tm.tiles[y][x]
	switch tm.mode {
	case SignedTiles:
		return uint16(int(addr.TileData2) + int(int8(entry))*16)
	default:
		return addr.TileData0 + uint16(entry)*16
	}
}

// LoadBgTilemap reads the active background tile map from VRAM.
func (m *MMU) LoadBgTilemap() TileMap {
	return m.loadTilemap(m.bgTileMapBase())
}

// LoadWindowTilemap reads the active window tile map from VRAM.
func (m *MMU) LoadWindowTilemap() TileMap {
	return m.loadTilemap(m.windowTileMapBase())
}

func (m *MMU) loadTilemap(base uint16) TileMap {
	tm := TileMap{mode: m.TileDataMode()}
	for i := uint16(0); i < 32*32; i++ {
		tm.tiles[i/32][i%32] = m.Read(base + i)
	}
	return tm
}
