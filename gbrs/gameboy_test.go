package gbrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/memory"
	"github.com/TobiasNienhaus/gbrs/gbrs/video"
)

// newTestGameBoy builds a console around a 32 KiB ROM-only image whose
// first bytes are the given program. The rest of the image is NOPs.
func newTestGameBoy(t *testing.T, program ...uint8) *GameBoy {
	t.Helper()

	image := make([]byte, 0x8000)
	copy(image, program)

	rom, err := memory.LoadROM(image)
	assert.NoError(t, err)

	return NewWithROM(rom)
}

// Scenario: a NOP-only ROM produces one frame every 17556 clocks.
func TestFrameLengthAndLYCycle(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()

	// finish the first frame to align on a frame boundary
	gb.RunUntilFrame(fb)

	mmu := gb.GetMMU()
	assert.Equal(t, uint8(153), mmu.ReadLY())

	clocks := 0
	for {
		clocks++
		done := gb.Clock(fb)

		ly := mmu.ReadLY()
		assert.LessOrEqual(t, ly, uint8(153))

		if done {
			break
		}
	}

	assert.Equal(t, ClocksPerFrame, clocks)
	assert.Equal(t, 17556, clocks)

	// at the top of the next frame LY has wrapped to 0
	gb.Clock(fb)
	assert.Equal(t, uint8(0), mmu.ReadLY())
}

func TestLYFollowsClockCounter(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()
	mmu := gb.GetMMU()

	for counter := 0; counter < ClocksPerFrame; counter++ {
		gb.Clock(fb)
		assert.Equal(t, uint8(counter/ClocksPerLine), mmu.ReadLY())
	}
}

// Scenario: within one visible line STAT holds mode 2 for 20 dots, mode 3
// for 23 dots and mode 0 for the remaining 71 dots, in that order.
func TestStatModeTransitions(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()
	mmu := gb.GetMMU()

	// skip to the start of line 50
	for i := 0; i < 50*ClocksPerLine; i++ {
		gb.Clock(fb)
	}

	var modes []memory.VideoMode
	for i := 0; i < ClocksPerLine; i++ {
		gb.Clock(fb)
		modes = append(modes, mmu.GetVideoMode())
	}

	for dot, mode := range modes {
		var want memory.VideoMode
		switch {
		case dot < OAMSearchClocks:
			want = memory.OAMMode
		case dot < PixelTransferClocks:
			want = memory.PixelTransferMode
		default:
			want = memory.HBlankMode
		}
		assert.Equalf(t, want, mode, "dot %d", dot)
	}
}

func TestVBlankModeDuringLastLines(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()
	mmu := gb.GetMMU()

	for i := 0; i < DrawLines*ClocksPerLine; i++ {
		gb.Clock(fb)
	}
	// line 144, dot 0
	gb.Clock(fb)
	assert.Equal(t, memory.VBlankMode, mmu.GetVideoMode())
	assert.Equal(t, uint8(144), mmu.ReadLY())
}

// Scenario: with IE=0x01 and an EI; JR -2 loop, the VBlank vector is
// entered exactly once per frame.
func TestVBlankFiresOncePerFrame(t *testing.T) {
	image := make([]byte, 0x8000)
	image[0x0000] = 0xFB // EI
	image[0x0001] = 0x18 // JR -2: loop in place
	image[0x0002] = 0xFE
	image[0x0040] = 0xD9 // vector handler: RETI
	rom, err := memory.LoadROM(image)
	assert.NoError(t, err)

	gb := NewWithROM(rom)
	fb := video.NewFrameBuffer()
	gb.GetMMU().Write(addr.IE, 0x01)

	cpu := gb.GetCPU()
	wasInVector := false

	for frame := 0; frame < 3; frame++ {
		perFrame := 0
		for !gb.Clock(fb) {
			inVector := cpu.GetPC() == 0x0040
			if inVector && !wasInVector {
				perFrame++
			}
			wasInVector = inVector
		}
		assert.Equalf(t, 1, perFrame, "frame %d", frame)
	}
}

func TestStatInterruptFiresOnRisingEdgeOnly(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()
	mmu := gb.GetMMU()

	// enable the LYC source and compare against line 10
	mmu.Write(addr.STAT, 0x40)
	mmu.Write(addr.LYC, 10)
	mmu.Write(addr.IF, 0x00)

	requests := 0
	prev := false
	for i := 0; i < ClocksPerFrame; i++ {
		gb.Clock(fb)
		cur := mmu.Read(addr.IF)&0x02 != 0
		if cur && !prev {
			requests++
		}
		prev = cur
		mmu.Write(addr.IF, 0x00) // consume
	}

	// LY == 10 holds for one line; a single rising edge
	assert.Equal(t, 1, requests)
}

func TestTimerInterruptRequested(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()
	mmu := gb.GetMMU()

	mmu.Write(addr.TAC, 0x05) // enabled, fastest rate
	mmu.Write(addr.TIMA, 0xFF)
	mmu.Write(addr.IF, 0x00)

	for i := 0; i < 4; i++ {
		gb.Clock(fb)
	}

	assert.Equal(t, uint8(0x04), mmu.Read(addr.IF)&0x1F)
}

func TestPPURendersDuringFrame(t *testing.T) {
	gb := newTestGameBoy(t)
	fb := video.NewFrameBuffer()

	mmu := gb.GetMMU()
	mmu.Write(addr.LCDC, 0x91)
	mmu.Write(addr.BGP, 0xE4)
	// solid color 3 tile 0
	for i := uint16(0); i < 8; i++ {
		mmu.Write(addr.TileData0+i*2, 0xFF)
		mmu.Write(addr.TileData0+i*2+1, 0xFF)
	}

	gb.RunUntilFrame(fb)

	for y := 0; y < video.FramebufferHeight; y += 16 {
		for x := 0; x < video.FramebufferWidth; x += 16 {
			assert.Equalf(t, uint8(3), fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
