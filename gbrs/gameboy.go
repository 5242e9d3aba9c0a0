package gbrs

import (
	"log/slog"

	"github.com/TobiasNienhaus/gbrs/gbrs/addr"
	"github.com/TobiasNienhaus/gbrs/gbrs/cpu"
	"github.com/TobiasNienhaus/gbrs/gbrs/memory"
	"github.com/TobiasNienhaus/gbrs/gbrs/video"
)

// Frame timing, in machine clocks. The three line constants add up to the
// 114 clocks of a line. OAM search runs up to dot OAMSearchClocks, pixel
// transfer up to dot PixelTransferClocks (23 clocks) and horizontal blank
// fills the remaining 71 clocks. A frame is 144 visible lines followed by
// 10 lines of vertical blank.
const (
	OAMSearchClocks     = 20
	PixelTransferClocks = 43
	HBlankClocks        = 51
	ClocksPerLine       = OAMSearchClocks + PixelTransferClocks + HBlankClocks

	DrawLines   = 144
	VBlankLines = 10
	Lines       = DrawLines + VBlankLines

	ClocksPerFrame = Lines * ClocksPerLine
)

// GameBoy drives the CPU, timer and PPU in lockstep, one machine clock at
// a time, and derives LY, the STAT mode bits and the frame boundary from a
// single running counter.
type GameBoy struct {
	cpu *cpu.CPU
	ppu *video.PPU
	mem *memory.MMU

	// counter is the clock position inside the current frame, 0..17555.
	counter uint32

	// prevStatLine tracks the synthetic STAT interrupt line; the LCD-STAT
	// interrupt fires on its rising edge only.
	prevStatLine bool
}

// New creates a console with no cartridge inserted, useful for tests.
func New() *GameBoy {
	return newWithMMU(memory.New())
}

// NewWithROM creates a console with the given cartridge mapped in.
func NewWithROM(rom *memory.ROM) *GameBoy {
	return newWithMMU(memory.NewWithROM(rom))
}

// Load reads a cartridge image from disk and builds a console around it.
// An optional 256 byte boot overlay can be supplied; with one present,
// execution starts inside the overlay at 0x0000.
func Load(path string, boot []byte) (*GameBoy, error) {
	rom, err := memory.LoadROMFromFile(path)
	if err != nil {
		return nil, err
	}

	mmu := memory.NewWithROM(rom)
	if boot != nil {
		if err := mmu.SetBootROM(boot); err != nil {
			return nil, err
		}
	}

	slog.Debug("Console ready", "title", rom.Title(), "boot_overlay", boot != nil)
	return newWithMMU(mmu), nil
}

func newWithMMU(mmu *memory.MMU) *GameBoy {
	return &GameBoy{
		cpu: cpu.New(mmu),
		ppu: video.NewPPU(mmu),
		mem: mmu,
	}
}

// Clock advances the whole machine by one clock and reports whether this
// clock completed a frame. The framebuffer is borrowed for the duration of
// the call.
func (gb *GameBoy) Clock(fb *video.FrameBuffer) bool {
	line := gb.counter / ClocksPerLine
	dot := gb.counter % ClocksPerLine

	gb.mem.SetLY(uint8(line))
	gb.mem.UpdateLycLyCmp()

	if gb.counter == DrawLines*ClocksPerLine {
		gb.cpu.RequestInterrupt(addr.VBlankInterrupt)
	}

	mode := videoMode(line, dot)
	gb.mem.SetVideoMode(mode)

	statLine := gb.statInterruptLine(mode)
	if statLine && !gb.prevStatLine {
		gb.cpu.RequestInterrupt(addr.LCDSTATInterrupt)
	}
	gb.prevStatLine = statLine

	gb.cpu.Clock()
	gb.mem.Tick()

	if line < DrawLines && dot == ClocksPerLine-1 {
		gb.ppu.WriteLine(fb)
	}

	gb.counter++
	if gb.counter == ClocksPerFrame {
		gb.counter = 0
		gb.ppu.StartFrame()
		return true
	}
	return false
}

// RunUntilFrame clocks the machine until the current frame completes.
func (gb *GameBoy) RunUntilFrame(fb *video.FrameBuffer) {
	for !gb.Clock(fb) {
	}
}

// videoMode derives the PPU mode from the position inside the frame.
func videoMode(line, dot uint32) memory.VideoMode {
	if line >= DrawLines {
		return memory.VBlankMode
	}
	switch {
	case dot < OAMSearchClocks:
		return memory.OAMMode
	case dot < PixelTransferClocks:
		return memory.PixelTransferMode
	default:
		return memory.HBlankMode
	}
}

// statInterruptLine computes the OR of the enabled STAT sources.
func (gb *GameBoy) statInterruptLine(mode memory.VideoMode) bool {
	m := gb.mem
	return (m.GetLCDStatus(memory.LycLyCmp) && m.GetLCDStatus(memory.LycStatInterrupt)) ||
		(mode == memory.OAMMode && m.GetLCDStatus(memory.OamStatInterrupt)) ||
		(mode == memory.HBlankMode && m.GetLCDStatus(memory.HBlankStatInterrupt)) ||
		(mode == memory.VBlankMode && m.GetLCDStatus(memory.VBlankStatInterrupt))
}

// GetCPU exposes the processor, for presenters and tests.
func (gb *GameBoy) GetCPU() *cpu.CPU {
	return gb.cpu
}

// GetMMU exposes the memory unit, for presenters and tests.
func (gb *GameBoy) GetMMU() *memory.MMU {
	return gb.mem
}
