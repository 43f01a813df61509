package fb

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Framebuffer ioctl request numbers from <linux/fb.h>; x/sys/unix does not
// export these.
const (
	fbioGetVScreeninfo = 0x4600
	fbioGetFScreeninfo = 0x4602
)

// fbBitfield mirrors struct fb_bitfield from <linux/fb.h>.
type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// fbVarScreeninfo mirrors struct fb_var_screeninfo from <linux/fb.h>.
type fbVarScreeninfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fbFixScreeninfo mirrors struct fb_fix_screeninfo from <linux/fb.h>.
type fbFixScreeninfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Device is a Surface over a memory-mapped Linux framebuffer device.
// Geometry is queried once at open; resolution changes are not handled.
type Device struct {
	file   *os.File
	mem    []byte
	width  int
	height int
	stride int // in pixels
}

// OpenDevice opens and maps a framebuffer device such as /dev/fb0.
// Only 32 bits per pixel framebuffers are supported.
func OpenDevice(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open framebuffer device: %w", err)
	}

	var varInfo fbVarScreeninfo
	if err := fbIoctl(file.Fd(), fbioGetVScreeninfo, unsafe.Pointer(&varInfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO on %s: %w", path, err)
	}

	var fixInfo fbFixScreeninfo
	if err := fbIoctl(file.Fd(), fbioGetFScreeninfo, unsafe.Pointer(&fixInfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO on %s: %w", path, err)
	}

	if varInfo.BitsPerPixel != 32 {
		file.Close()
		return nil, fmt.Errorf("unsupported framebuffer depth: %d bpp (need 32)", varInfo.BitsPerPixel)
	}

	mem, err := unix.Mmap(
		int(file.Fd()),
		0,
		int(fixInfo.SmemLen),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to map framebuffer memory: %w", err)
	}

	return &Device{
		file:   file,
		mem:    mem,
		width:  int(varInfo.XRes),
		height: int(varInfo.YRes),
		stride: int(fixInfo.LineLength) / 4,
	}, nil
}

func fbIoctl(fd uintptr, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *Device) Size() (int, int, int) {
	return d.width, d.height, d.stride
}

func (d *Device) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	offset := (y*d.stride + x) * 4
	// Little-endian XRGB.
	d.mem[offset] = byte(color)
	d.mem[offset+1] = byte(color >> 8)
	d.mem[offset+2] = byte(color >> 16)
	d.mem[offset+3] = byte(color >> 24)
}

func (d *Device) FillRect(x, y, width, height int, color uint32) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			d.SetPixel(x+dx, y+dy, color)
		}
	}
}

// Flush is a no-op: writes hit the mapped framebuffer directly.
func (d *Device) Flush() error {
	return nil
}

// Close unmaps the framebuffer and closes the device.
func (d *Device) Close() error {
	if d.mem != nil {
		if err := unix.Munmap(d.mem); err != nil {
			return err
		}
		d.mem = nil
	}
	return d.file.Close()
}
