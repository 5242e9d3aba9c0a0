package video

// Screen dimensions of the LCD.
const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// FrameBuffer is a 160x144 array of 2 bit color indices (0..3), row major
// with the origin at the top left. It is owned by the host presenter and
// borrowed by the core for the duration of one clock call.
type FrameBuffer struct {
	pixels []uint8
}

// NewFrameBuffer allocates a cleared framebuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pixels: make([]uint8, FramebufferSize),
	}
}

// At returns the color index at the given coordinates.
func (fb *FrameBuffer) At(x, y int) uint8 {
	return fb.pixels[y*FramebufferWidth+x]
}

// Set stores a color index at the given coordinates.
func (fb *FrameBuffer) Set(x, y int, color uint8) {
	fb.pixels[y*FramebufferWidth+x] = color
}

// ToSlice exposes the raw pixel storage.
func (fb *FrameBuffer) ToSlice() []uint8 {
	return fb.pixels
}

// Clear resets every pixel to color 0.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
}
