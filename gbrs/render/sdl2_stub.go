//go:build !sdl2

package render

import (
	"fmt"

	gbrs "github.com/TobiasNienhaus/gbrs/gbrs"
)

// SDLRenderer stub for builds without the SDL2 development libraries.
type SDLRenderer struct{}

// NewSDLRenderer returns an error pointing at the sdl2 build tag.
func NewSDLRenderer(gb *gbrs.GameBoy, magnification int) (*SDLRenderer, error) {
	return nil, fmt.Errorf("SDL2 backend not available - build with -tags sdl2 to enable")
}

// Run is never reached; NewSDLRenderer fails first.
func (s *SDLRenderer) Run() error {
	return fmt.Errorf("SDL2 backend not available")
}
