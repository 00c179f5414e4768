package sink

import (
	"image"
	"image/color"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"
)

// Strip drives a whole NRZ LED strip as one logical brightness channel:
// every write paints all pixels gray (v,v,v). When no SPI port is available
// it falls back to rendering on the terminal.
type Strip struct {
	drawer display.Drawer
	img    *image.NRGBA

	// SPI is false when the terminal fallback is active.
	SPI bool
}

// NewStrip initializes the host, opens the SPI port named by dev ("" picks
// the first one) and attaches an NRZ strip of pixels length to it. Without
// an SPI port the strip renders to the console instead.
func NewStrip(dev string, pixels int) (*Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(dev)
	if err != nil {
		logger.With(zap.Error(err)).Warn("no SPI port found, rendering to the console")
		return NewStripDrawer(screen.New(pixels)), nil
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Halt(); err != nil {
		return nil, err
	}
	s := NewStripDrawer(d)
	s.SPI = true
	return s, nil
}

// NewSim returns a strip that renders to the terminal only.
func NewSim(pixels int) *Strip {
	return NewStripDrawer(screen.New(pixels))
}

// NewStripDrawer wraps an already configured drawer (an NRZ device, the
// console screen, or a test double).
func NewStripDrawer(d display.Drawer) *Strip {
	return &Strip{
		drawer: d,
		img:    image.NewNRGBA(d.Bounds()),
	}
}

// Write paints the whole strip with the gray level v. The Writer contract
// has no error channel, so draw failures are logged and the previous frame
// stays on the strip.
func (s *Strip) Write(v uint8) {
	gray := color.NRGBA{R: v, G: v, B: v, A: 255}
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetNRGBA(x, y, gray)
		}
	}
	if err := s.drawer.Draw(b, s.img, image.Point{}); err != nil {
		logger.With(zap.Error(err)).Error("strip draw failed")
	}
}

// Close blanks the strip.
func (s *Strip) Close() error {
	return s.drawer.Halt()
}
