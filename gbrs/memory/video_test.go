package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
)

func TestPalette(t *testing.T) {
	mmu := New()

	// identity mapping: 11 10 01 00
	mmu.Write(addr.BGP, 0xE4)
	palette := mmu.BgPalette()
	for color := uint8(0); color < 4; color++ {
		assert.Equal(t, color, palette.Remap(color))
	}

	// inverted mapping: 00 01 10 11
	mmu.Write(addr.OBP0, 0x1B)
	palette = mmu.SpritePalette0()
	for color := uint8(0); color < 4; color++ {
		assert.Equal(t, 3-color, palette.Remap(color))
	}

	// all slots to color 3
	mmu.Write(addr.OBP1, 0xFF)
	palette = mmu.SpritePalette1()
	for color := uint8(0); color < 4; color++ {
		assert.Equal(t, uint8(3), palette.Remap(color))
	}
}

func TestReadTile(t *testing.T) {
	mmu := New()

	// row 0: low plane 0xA5, high plane 0xC3.
	// bit 7 is the leftmost pixel: colors 3 2 1 0 0 1 2 3
	mmu.Write(0x8000, 0xA5)
	mmu.Write(0x8001, 0xC3)
	// row 7: solid color 3
	mmu.Write(0x800E, 0xFF)
	mmu.Write(0x800F, 0xFF)

	tile := mmu.ReadTile(0x8000)

	want := [8]uint8{3, 2, 1, 0, 0, 1, 2, 3}
	for col, color := range want {
		assert.Equalf(t, color, tile.At(col, 0), "column %d", col)
	}
	for col := 0; col < 8; col++ {
		assert.Equal(t, uint8(3), tile.At(col, 7))
	}
	// untouched rows decode to 0
	for col := 0; col < 8; col++ {
		assert.Equal(t, uint8(0), tile.At(col, 3))
	}
}

func TestTileMapAddressing(t *testing.T) {
	mmu := New()

	t.Run("unsigned mode", func(t *testing.T) {
		mmu.Write(addr.LCDC, 0x10) // LCDC bit 4: unsigned tiles
		mmu.Write(addr.TileMap0, 0x00)
		mmu.Write(addr.TileMap0+1, 0x80)
		mmu.Write(addr.TileMap0+32, 0xFF)

		tm := mmu.LoadBgTilemap()
		assert.Equal(t, uint16(0x8000), tm.TileAddress(0, 0))
		assert.Equal(t, uint16(0x8800), tm.TileAddress(1, 0))
		assert.Equal(t, uint16(0x8FF0), tm.TileAddress(0, 1))
	})

	t.Run("signed mode", func(t *testing.T) {
		mmu.Write(addr.LCDC, 0x00) // signed tiles
		mmu.Write(addr.TileMap0, 0x00)
		mmu.Write(addr.TileMap0+1, 0x80) // -128
		mmu.Write(addr.TileMap0+2, 0x7F) // +127

		tm := mmu.LoadBgTilemap()
		assert.Equal(t, uint16(0x9000), tm.TileAddress(0, 0))
		assert.Equal(t, uint16(0x8800), tm.TileAddress(1, 0))
		assert.Equal(t, uint16(0x97F0), tm.TileAddress(2, 0))
	})

	t.Run("window map select", func(t *testing.T) {
		mmu.Write(addr.LCDC, 0x50) // unsigned tiles, window map 1
		mmu.Write(addr.TileMap1, 0x01)

		tm := mmu.LoadWindowTilemap()
		assert.Equal(t, uint16(0x8010), tm.TileAddress(0, 0))
	})
}

func TestLcdcAccessors(t *testing.T) {
	mmu := New()

	mmu.Write(addr.LCDC, 0x00)
	assert.False(t, mmu.DisplayEnabled())
	assert.False(t, mmu.BackgroundEnabled())
	assert.False(t, mmu.WindowEnabled())
	assert.False(t, mmu.SpritesEnabled())
	assert.Equal(t, 8, mmu.SpriteHeight())
	assert.Equal(t, SignedTiles, mmu.TileDataMode())

	mmu.Write(addr.LCDC, 0xFF)
	assert.True(t, mmu.DisplayEnabled())
	assert.True(t, mmu.BackgroundEnabled())
	assert.True(t, mmu.WindowEnabled())
	assert.True(t, mmu.SpritesEnabled())
	assert.Equal(t, 16, mmu.SpriteHeight())
	assert.Equal(t, UnsignedTiles, mmu.TileDataMode())
}

func TestStatAccessors(t *testing.T) {
	mmu := New()

	t.Run("video mode bits", func(t *testing.T) {
		mmu.Write(addr.STAT, 0x00)
		for _, mode := range []VideoMode{HBlankMode, VBlankMode, OAMMode, PixelTransferMode} {
			mmu.SetVideoMode(mode)
			assert.Equal(t, mode, mmu.GetVideoMode())
		}
	})

	t.Run("mode write keeps the other bits", func(t *testing.T) {
		mmu.Write(addr.STAT, 0x78)
		mmu.SetVideoMode(PixelTransferMode)
		assert.Equal(t, uint8(0x7B), mmu.Read(addr.STAT))
	})

	t.Run("named bits", func(t *testing.T) {
		mmu.Write(addr.STAT, 0x00)
		mmu.SetLCDStatus(OamStatInterrupt, true)
		assert.True(t, mmu.GetLCDStatus(OamStatInterrupt))
		assert.Equal(t, uint8(0x20), mmu.Read(addr.STAT))

		mmu.SetLCDStatus(OamStatInterrupt, false)
		assert.False(t, mmu.GetLCDStatus(OamStatInterrupt))
	})

	t.Run("LYC comparison", func(t *testing.T) {
		mmu.Write(addr.STAT, 0x00)
		mmu.SetLY(0x42)
		mmu.Write(addr.LYC, 0x42)
		mmu.UpdateLycLyCmp()
		assert.True(t, mmu.GetLCDStatus(LycLyCmp))

		mmu.SetLY(0x43)
		mmu.UpdateLycLyCmp()
		assert.False(t, mmu.GetLCDStatus(LycLyCmp))
	})
}
