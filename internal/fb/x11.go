package fb

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// X11Window simulates a framebuffer inside an X window. Pixels are drawn
// into an off-screen image and pushed to the window on Flush. Useful for
// developing layouts on a desktop without a raw framebuffer.
type X11Window struct {
	xu     *xgbutil.XUtil
	win    *xwindow.Window
	img    *xgraphics.Image
	width  int
	height int
}

// OpenX11Window connects to the X server and shows a width×height window.
func OpenX11Window(width, height int, title string) (*X11Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	img := xgraphics.New(xu, image.Rect(0, 0, width, height))
	win := img.XShowExtra(title, true)

	return &X11Window{
		xu:     xu,
		win:    win,
		img:    img,
		width:  width,
		height: height,
	}, nil
}

func (w *X11Window) Size() (int, int, int) {
	return w.width, w.height, w.width
}

func (w *X11Window) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= w.width || y >= w.height {
		return
	}
	w.img.SetBGRA(x, y, xgraphics.BGRA{
		B: uint8(color),
		G: uint8(color >> 8),
		R: uint8(color >> 16),
		A: 0xff,
	})
}

func (w *X11Window) FillRect(x, y, width, height int, color uint32) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			w.SetPixel(x+dx, y+dy, color)
		}
	}
}

// Flush pushes the off-screen image to the window.
func (w *X11Window) Flush() error {
	w.img.XDraw()
	w.img.XPaint(w.win.Id)
	return nil
}

// Close destroys the window and disconnects from the X server.
func (w *X11Window) Close() error {
	w.img.Destroy()
	w.win.Destroy()
	w.xu.Conn().Close()
	return nil
}
