//go:build sdl2

package render

import (
	"fmt"
	"log/slog"
	"time"

	gbrs "github.com/TobiasNienhaus/gbrs/gbrs"
	"github.com/TobiasNienhaus/gbrs/gbrs/video"
	"github.com/veandco/go-sdl2/sdl"
)

// shadeColors maps a 2 bit color index to an RGBA8888 grey, lightest first.
var shadeColors = [4]uint32{0xFFFFFFFF, 0x989898FF, 0x4C4C4CFF, 0x000000FF}

// SDLRenderer presents frames in an SDL2 window, scaled by an integral
// magnification factor.
//
// Building this requires the SDL2 development libraries; default builds
// use the stub instead, see build tags (sdl2).
type SDLRenderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	gb       *gbrs.GameBoy
	frame    *video.FrameBuffer
	pixels   []byte
	running  bool
}

// NewSDLRenderer opens a window sized magnification times the LCD.
func NewSDLRenderer(gb *gbrs.GameBoy, magnification int) (*SDLRenderer, error) {
	if magnification < 1 {
		magnification = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		"gbrs",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*magnification),
		int32(video.FramebufferHeight*magnification),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %v", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create texture: %v", err)
	}

	return &SDLRenderer{
		window:   window,
		renderer: renderer,
		texture:  texture,
		gb:       gb,
		frame:    video.NewFrameBuffer(),
		pixels:   make([]byte, video.FramebufferSize*4),
		running:  true,
	}, nil
}

// Run drives the emulation at 60 frames per second until the window closes.
func (s *SDLRenderer) Run() error {
	defer s.cleanup()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for s.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				s.running = false
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					s.running = false
				}
			}
		}

		s.gb.RunUntilFrame(s.frame)
		s.present()

		<-ticker.C
	}

	slog.Info("SDL window closed")
	return nil
}

func (s *SDLRenderer) present() {
	for i, color := range s.frame.ToSlice() {
		rgba := shadeColors[color&0x03]
		s.pixels[i*4] = byte(rgba >> 24)
		s.pixels[i*4+1] = byte(rgba >> 16)
		s.pixels[i*4+2] = byte(rgba >> 8)
		s.pixels[i*4+3] = byte(rgba)
	}

	s.texture.Update(nil, s.pixels, video.FramebufferWidth*4)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}

func (s *SDLRenderer) cleanup() {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}
