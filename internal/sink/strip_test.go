package sink_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"

	"github.com/coreman2200/funtimes-ledfx/internal/sink"
	"github.com/coreman2200/funtimes-ledfx/led"
)

var (
	_ led.Writer = (*sink.Strip)(nil)
	_ led.Writer = (*sink.PWMPin)(nil)
	_ led.Writer = (*sink.Recorder)(nil)
)

func newTestStrip(t *testing.T, pixels int, buf *bytes.Buffer) *sink.Strip {
	t.Helper()
	d, err := nrzled.NewSPI(spitest.NewRecordRaw(buf), &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	require.NoError(t, err)
	return sink.NewStripDrawer(d)
}

func TestStripWritesFrames(t *testing.T) {
	buf := &bytes.Buffer{}
	s := newTestStrip(t, 4, buf)

	s.Write(255)
	first := buf.Len()
	assert.Greater(t, first, 0, "a write must push a frame over SPI")

	s.Write(0)
	assert.Greater(t, buf.Len(), first, "every write pushes a frame")
}

func TestStripDrivenByController(t *testing.T) {
	buf := &bytes.Buffer{}
	s := newTestStrip(t, 2, buf)

	l := led.New(s).Blink(10, 10)
	for now := uint32(0); now <= 20; now++ {
		l.Tick(now)
	}
	assert.False(t, l.IsRunning())
	assert.Greater(t, buf.Len(), 0)
}

func TestRecorder(t *testing.T) {
	r := &sink.Recorder{}
	assert.Equal(t, uint8(0), r.Last())

	r.Write(10)
	r.Write(20)
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, uint8(20), r.Last())
	assert.Equal(t, []uint8{10, 20}, r.Values)
}
