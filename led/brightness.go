package led

// BrightnessFunc computes the brightness of an effect at time t within one
// period. The controller guarantees 0 <= t < period and that the last
// evaluation of a finishing repetition happens at t = period-1, so an effect
// lands on a well-defined terminal value. param carries an effect specific
// auxiliary value (e.g. the on-duration of a blink). Results must be in
// range [0..255].
type BrightnessFunc func(t uint32, period uint16, param uint32) uint8

const (
	// FullBrightness is the maximum 8-bit intensity.
	FullBrightness uint8 = 255
	// ZeroBrightness is the minimum 8-bit intensity.
	ZeroBrightness uint8 = 0
)

// fadeOnTable samples y(t) = (exp(sin((t-period/2)*PI/period)) - 1/e) * 108
// at t/period = {0, 1/8, ..., 1}. fadeOn interpolates linearly between the
// samples so no floating point is needed; fade-off and breathe are derived
// from fade-on by reflection.
var fadeOnTable = [9]uint8{0, 3, 13, 33, 68, 118, 179, 232, 255}

func onFunc(_ uint32, _ uint16, _ uint32) uint8 { return FullBrightness }

func offFunc(_ uint32, _ uint16, _ uint32) uint8 { return ZeroBrightness }

// blinkFunc does one on-off cycle per period; param is the on-duration.
// The boundary is half-open: t == param is already off.
func blinkFunc(t uint32, _ uint16, param uint32) uint8 {
	if t < param {
		return FullBrightness
	}
	return ZeroBrightness
}

func fadeOnFunc(t uint32, period uint16, _ uint32) uint8 {
	return fadeOn(t, period)
}

// fadeOffFunc is the exact time-reversal of fadeOnFunc.
func fadeOffFunc(t uint32, period uint16, _ uint32) uint8 {
	return fadeOn(uint32(period)-t, period)
}

// breatheFunc fades on over the first half period and off over the second.
func breatheFunc(t uint32, period uint16, _ uint32) uint8 {
	if t+1 >= uint32(period) {
		return ZeroBrightness
	}
	half := period >> 1
	if t < uint32(half) {
		return fadeOn(t, half)
	}
	return fadeOn(uint32(half)-(t-uint32(half)), half)
}

// fadeOn approximates the fade-on curve by linear interpolation over
// fadeOnTable. t is scaled to an 8-bit fraction of period; the top 3 bits
// select the segment, the low 5 bits interpolate within it. The final tick
// pins 255 exactly so the terminal value never depends on rounding.
func fadeOn(t uint32, period uint16) uint8 {
	if t+1 >= uint32(period) {
		return FullBrightness
	}
	t = ((t << 8) / uint32(period)) & 0xff
	i := t >> 5
	y0 := uint32(fadeOnTable[i])
	y1 := uint32(fadeOnTable[i+1])
	x0 := i << 5
	// y(t) = m*t + b with m = (y1-y0)/32
	return uint8((((t - x0) * (y1 - y0)) >> 5) + y0)
}
