package render

import "github.com/TobiasNienhaus/gbrs/gbrs/video"

// shadeChars maps a 2 bit color index to a block glyph. Index 0 is the
// lightest shade and renders as a solid bright block.
var shadeChars = []rune{'█', '▓', '▒', '░'}

// ShadeRune returns the glyph for a single 2 bit color index.
func ShadeRune(color uint8) rune {
	return shadeChars[color&0x03]
}

// FrameToHalfBlocks converts a 2 bit framebuffer into text lines, two
// pixel rows per text row using half-block characters. Used by both the
// terminal presenter and headless snapshots.
func FrameToHalfBlocks(fb *video.FrameBuffer) []string {
	lines := make([]string, video.FramebufferHeight/2)

	for textRow := range lines {
		line := make([]rune, video.FramebufferWidth)
		for x := 0; x < video.FramebufferWidth; x++ {
			top := fb.At(x, textRow*2)
			bottom := fb.At(x, textRow*2+1)
			line[x] = halfBlockChar(top, bottom)
		}
		lines[textRow] = string(line)
	}

	return lines
}

// halfBlockChar picks a glyph for a vertical pair of pixels. The filled
// half marks the lighter of the two.
func halfBlockChar(top, bottom uint8) rune {
	switch {
	case top == bottom:
		return ShadeRune(top)
	case top < bottom:
		return '▀'
	default:
		return '▄'
	}
}
