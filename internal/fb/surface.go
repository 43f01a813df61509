// Package fb provides pixel surfaces the renderer draws window frames on:
// an in-memory buffer, the Linux framebuffer device, and an X11 window
// that simulates a framebuffer for desktop development.
package fb

// Surface is a linear 32bpp pixel target. All drawing operations clip
// silently at the surface bounds; none of them can fail.
type Surface interface {
	// Size returns the pixel dimensions and the row stride in pixels.
	Size() (width, height, stride int)
	SetPixel(x, y int, color uint32)
	FillRect(x, y, width, height int, color uint32)
	// Flush makes prior drawing visible on surfaces that buffer it.
	Flush() error
}

// Buffer is an in-memory ARGB surface. It backs tests and doubles as the
// reference implementation of the clipping contract.
type Buffer struct {
	width  int
	height int
	stride int
	pix    []uint32
}

// NewBuffer allocates a width×height buffer with stride == width.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]uint32, width*height),
	}
}

func (b *Buffer) Size() (int, int, int) {
	return b.width, b.height, b.stride
}

func (b *Buffer) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.stride+x] = color
}

func (b *Buffer) FillRect(x, y, width, height int, color uint32) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.SetPixel(x+dx, y+dy, color)
		}
	}
}

func (b *Buffer) Flush() error {
	return nil
}

// At returns the pixel at (x, y), or 0 outside the bounds.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.pix[y*b.stride+x]
}
