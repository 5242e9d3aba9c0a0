package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	gbrs "github.com/TobiasNienhaus/gbrs/gbrs"
	"github.com/TobiasNienhaus/gbrs/gbrs/render"
	"github.com/TobiasNienhaus/gbrs/gbrs/video"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbrs"
	app.Description = "A cycle-driven emulator for the original handheld"
	app.Usage = "gbrs [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "m",
			Usage: "Window magnification factor",
			Value: 2,
		},
		cli.StringFlag{
			Name:  "boot",
			Usage: "Path to an optional 256-byte boot ROM overlay",
		},
		cli.BoolFlag{
			Name:  "terminal",
			Usage: "Render in the terminal instead of a window",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without any display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	if c.Bool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	if c.NArg() < 1 {
		cli.ShowAppHelp(c)
		return errors.New("no ROM path provided")
	}
	romPath := c.Args().Get(0)

	var boot []byte
	if bootPath := c.String("boot"); bootPath != "" {
		data, err := os.ReadFile(bootPath)
		if err != nil {
			return fmt.Errorf("reading boot ROM: %w", err)
		}
		boot = data
	}

	gb, err := gbrs.Load(romPath, boot)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}
		return runHeadless(gb, frames)
	}

	if c.Bool("terminal") {
		renderer, err := render.NewTerminalRenderer(gb)
		if err != nil {
			return err
		}
		return renderer.Run()
	}

	renderer, err := render.NewSDLRenderer(gb, c.Int("m"))
	if err != nil {
		return err
	}
	return renderer.Run()
}

// runHeadless runs a fixed number of frames and prints the final one as
// half-block text.
func runHeadless(gb *gbrs.GameBoy, frames int) error {
	frame := video.NewFrameBuffer()

	for i := 0; i < frames; i++ {
		gb.RunUntilFrame(frame)

		if (i+1)%60 == 0 {
			slog.Info("Frame progress", "completed", i+1, "total", frames)
		}
	}

	for _, line := range render.FrameToHalfBlocks(frame) {
		fmt.Println(line)
	}

	slog.Info("Headless execution completed", "frames", frames)
	return nil
}
