package video

import (
	"sort"

	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/bit"
	"github.com/TobiasNienhaus/gbrs/gbrs/memory"
)

// spritesPerLine is the hardware limit on selected objects per scanline.
const spritesPerLine = 10

// PPU renders one horizontal line at a time from the current tile maps,
// OAM and palettes into a borrowed framebuffer.
type PPU struct {
	memory *memory.MMU

	// windowLine counts the window's own vertical position; it only
	// advances on lines where the window actually rendered.
	windowLine int

	// bgLine holds the raw (pre-palette) background/window color of the
	// line being drawn, for sprite priority decisions.
	bgLine [FramebufferWidth]uint8
}

// NewPPU returns a PPU reading from the given memory unit.
func NewPPU(mmu *memory.MMU) *PPU {
	return &PPU{memory: mmu}
}

// StartFrame resets the per-frame state. The scheduler calls this at the
// top of every frame.
func (p *PPU) StartFrame() {
	p.windowLine = 0
}

// WriteLine renders the scanline LY currently points at into the
// framebuffer. Layers are resolved in order: background, window, sprites.
func (p *PPU) WriteLine(fb *FrameBuffer) {
	line := int(p.memory.ReadLY())
	if line >= FramebufferHeight {
		return
	}

	p.writeBackgroundLine(fb, line)
	if p.memory.BackgroundEnabled() && p.memory.WindowEnabled() {
		p.writeWindowLine(fb, line)
	}
	if p.memory.SpritesEnabled() {
		p.writeSpriteLine(fb, line)
	}
}

func (p *PPU) writeBackgroundLine(fb *FrameBuffer, line int) {
	palette := p.memory.BgPalette()

	if !p.memory.BackgroundEnabled() {
		// With the background disabled the line shows color 0.
		for x := 0; x < FramebufferWidth; x++ {
			p.bgLine[x] = 0
			fb.Set(x, line, palette.Remap(0))
		}
		return
	}

	tilemap := p.memory.LoadBgTilemap()
	scrollX := p.memory.ReadSCX()
	scrollY := p.memory.ReadSCY()

	scrolledY := uint8(line) + scrollY // wraps at 256
	tileY := int(scrolledY / 8)
	pixelY := int(scrolledY % 8)

	var tile memory.Tile
	lastTileX := -1

	for x := 0; x < FramebufferWidth; x++ {
		scrolledX := uint8(x) + scrollX
		tileX := int(scrolledX / 8)
		if tileX != lastTileX {
			tile = p.memory.ReadTile(tilemap.TileAddress(tileX, tileY))
			lastTileX = tileX
		}

		color := tile.At(int(scrolledX%8), pixelY)
		p.bgLine[x] = color
		fb.Set(x, line, palette.Remap(color))
	}
}

func (p *PPU) writeWindowLine(fb *FrameBuffer, line int) {
	wy := int(p.memory.ReadWY())
	if wy > line || wy > FramebufferHeight-1 {
		return
	}

	// WX holds the window X position plus 7.
	wx := int(p.memory.ReadWX()) - 7
	if wx > FramebufferWidth-1 {
		return
	}

	palette := p.memory.BgPalette()
	tilemap := p.memory.LoadWindowTilemap()

	tileY := p.windowLine / 8
	pixelY := p.windowLine % 8

	var tile memory.Tile
	lastTileX := -1

	for x := max(wx, 0); x < FramebufferWidth; x++ {
		windowX := x - wx
		tileX := windowX / 8
		if tileX != lastTileX {
			tile = p.memory.ReadTile(tilemap.TileAddress(tileX, tileY))
			lastTileX = tileX
		}

		color := tile.At(windowX%8, pixelY)
		p.bgLine[x] = color
		fb.Set(x, line, palette.Remap(color))
	}

	p.windowLine++
}

// sprite is one decoded OAM entry.
type sprite struct {
	index int
	x     int
	y     int
	tile  uint8
	attrs uint8
}

func (p *PPU) writeSpriteLine(fb *FrameBuffer, line int) {
	height := p.memory.SpriteHeight()

	// OAM selection: scan the 40 entries in order, keep the first 10 that
	// overlap this line. Only Y takes part in selection.
	var selected []sprite
	for i := 0; i < 40; i++ {
		oamAddr := addr.OAMStart + uint16(i*4)
		y := int(p.memory.Read(oamAddr)) - 16
		if y > line || y+height <= line {
			continue
		}
		selected = append(selected, sprite{
			index: i,
			y:     y,
			x:     int(p.memory.Read(oamAddr+1)) - 8,
			tile:  p.memory.Read(oamAddr + 2),
			attrs: p.memory.Read(oamAddr + 3),
		})
		if len(selected) == spritesPerLine {
			break
		}
	}

	// Priority: lower X wins, OAM index breaks ties. Drawing back to front
	// lets the highest priority sprite overwrite the others.
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].x != selected[j].x {
			return selected[i].x < selected[j].x
		}
		return selected[i].index < selected[j].index
	})

	for i := len(selected) - 1; i >= 0; i-- {
		p.drawSprite(fb, line, selected[i], height)
	}
}

func (p *PPU) drawSprite(fb *FrameBuffer, line int, s sprite, height int) {
	palette := p.memory.SpritePalette0()
	if bit.IsSet(4, s.attrs) {
		palette = p.memory.SpritePalette1()
	}
	flipX := bit.IsSet(5, s.attrs)
	flipY := bit.IsSet(6, s.attrs)
	behindBG := bit.IsSet(7, s.attrs)

	row := line - s.y
	if flipY {
		row = height - 1 - row
	}

	tileIndex := s.tile
	if height == 16 {
		// 8x16 sprites ignore bit 0 of the tile index.
		tileIndex &= 0xFE
	}

	// Sprites always use unsigned addressing from 0x8000; row 8-15 of a
	// tall sprite lands in the second tile of the pair.
	rowAddr := addr.TileData0 + uint16(tileIndex)*16 + uint16(row)*2
	low := p.memory.Read(rowAddr)
	high := p.memory.Read(rowAddr + 1)

	for px := 0; px < 8; px++ {
		x := s.x + px
		if x < 0 || x >= FramebufferWidth {
			continue
		}

		shift := uint8(7 - px)
		if flipX {
			shift = uint8(px)
		}
		color := bit.GetBitValue(shift, high)<<1 | bit.GetBitValue(shift, low)
		if color == 0 {
			// Color 0 is transparent for sprites.
			continue
		}

		if behindBG && p.bgLine[x] != 0 {
			continue
		}

		fb.Set(x, line, palette.Remap(color))
	}
}
