package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	gbrs "github.com/TobiasNienhaus/gbrs/gbrs"
	"github.com/TobiasNienhaus/gbrs/gbrs/cpu"
	"github.com/TobiasNienhaus/gbrs/gbrs/video"
)

const frameTime = time.Second / 60

// TerminalRenderer presents frames as half-block glyphs in the terminal
// and shows the CPU registers next to the screen.
type TerminalRenderer struct {
	screen  tcell.Screen
	gb      *gbrs.GameBoy
	frame   *video.FrameBuffer
	running bool
}

// NewTerminalRenderer initializes a tcell screen around the console.
func NewTerminalRenderer(gb *gbrs.GameBoy) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &TerminalRenderer{
		screen:  screen,
		gb:      gb,
		frame:   video.NewFrameBuffer(),
		running: true,
	}, nil
}

// Run drives the emulation at 60 frames per second until the user quits.
func (t *TerminalRenderer) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	go t.handleInput()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for t.running {
		select {
		case <-ticker.C:
			t.gb.RunUntilFrame(t.frame)
			t.render()
			t.screen.Show()

		case <-signals:
			t.running = false
			slog.Info("Received signal to stop")
			return nil
		}
	}

	return nil
}

func (t *TerminalRenderer) handleInput() {
	for t.running {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				t.running = false
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalRenderer) render() {
	t.screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y, line := range FrameToHalfBlocks(t.frame) {
		x := 0
		for _, ch := range line {
			t.screen.SetContent(x, y, ch, nil, style)
			x++
		}
	}

	t.drawRegisters()
}

func (t *TerminalRenderer) drawRegisters() {
	c := t.gb.GetCPU()
	startX := video.FramebufferWidth + 2

	regStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	lines := []string{
		fmt.Sprintf("A: 0x%02X  F: 0x%02X [%s]", c.GetRegister(cpu.RegA), c.GetRegister(cpu.RegF), c.FlagString()),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", c.GetRegister(cpu.RegB), c.GetRegister(cpu.RegC)),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", c.GetRegister(cpu.RegD), c.GetRegister(cpu.RegE)),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", c.GetRegister(cpu.RegH), c.GetRegister(cpu.RegL)),
		fmt.Sprintf("SP: 0x%04X  PC: 0x%04X", c.GetSP(), c.GetPC()),
	}

	for i, line := range lines {
		x := startX
		for _, ch := range line {
			t.screen.SetContent(x, i, ch, nil, regStyle)
			x++
		}
	}
}
