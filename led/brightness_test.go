package led

import "testing"

func TestFadeOnHitsTableSamples(t *testing.T) {
	// with period=256 the 8-bit time scaling is the identity, so every
	// 32ms boundary must land exactly on a table sample
	for i := 0; i < 8; i++ {
		if v := fadeOn(uint32(i)<<5, 256); v != fadeOnTable[i] {
			t.Fatalf("fadeOn(%d,256) = %d, want %d", i<<5, v, fadeOnTable[i])
		}
	}
}

func TestFadeTerminalValues(t *testing.T) {
	for _, p := range []uint16{2, 3, 100, 256, 1000, 65535} {
		if v := fadeOnFunc(uint32(p)-1, p, 0); v != FullBrightness {
			t.Fatalf("fadeOn terminal for period %d = %d, want 255", p, v)
		}
		if v := fadeOffFunc(0, p, 0); v != FullBrightness {
			t.Fatalf("fadeOff(0) for period %d = %d, want 255", p, v)
		}
		if v := breatheFunc(uint32(p)-1, p, 0); v != ZeroBrightness {
			t.Fatalf("breathe terminal for period %d = %d, want 0", p, v)
		}
	}
	// the fade-off tail reaches exact zero once the first interpolation
	// step of the mirrored fade-on rounds to zero
	for _, p := range []uint16{100, 256, 1000, 65535} {
		if v := fadeOffFunc(uint32(p)-1, p, 0); v != ZeroBrightness {
			t.Fatalf("fadeOff terminal for period %d = %d, want 0", p, v)
		}
	}
}

// fadeOn and fadeOff are time reversals of each other:
// fadeOn(t,d) == fadeOff(d-1-t,d) up to one interpolation step.
func TestFadeTimeReversal(t *testing.T) {
	const d = 1000
	for tt := uint32(0); tt < d; tt += 7 {
		a := int(fadeOnFunc(tt, d, 0))
		b := int(fadeOffFunc(d-1-tt, d, 0))
		if diff := a - b; diff < -4 || diff > 4 {
			t.Fatalf("reversal mismatch at t=%d: fadeOn=%d fadeOff=%d", tt, a, b)
		}
	}
}

func TestBreatheMidpointContinuity(t *testing.T) {
	const p = 2000
	a := int(breatheFunc(p/2-1, p, 0))
	b := int(breatheFunc(p/2, p, 0))
	if diff := a - b; diff < -4 || diff > 4 {
		t.Fatalf("breathe jumps at midpoint: %d vs %d", a, b)
	}
}

func TestBreatheIsSymmetric(t *testing.T) {
	const p = 512
	for tt := uint32(0); tt < p/2; tt += 5 {
		rise := int(breatheFunc(tt, p, 0))
		fall := int(breatheFunc(p-1-tt, p, 0))
		if diff := rise - fall; diff < -4 || diff > 4 {
			t.Fatalf("asymmetric at t=%d: rise=%d fall=%d", tt, rise, fall)
		}
	}
}

func TestBlinkBoundaryIsHalfOpen(t *testing.T) {
	// param is the on-duration; t == param is already off
	if v := blinkFunc(99, 200, 100); v != FullBrightness {
		t.Fatalf("blink(99) = %d, want on", v)
	}
	if v := blinkFunc(100, 200, 100); v != ZeroBrightness {
		t.Fatalf("blink(100) = %d, want off", v)
	}
}

func TestOnOffIgnoreTime(t *testing.T) {
	for _, tt := range []uint32{0, 1, 500, 1<<32 - 1} {
		if v := onFunc(tt, 1, 0); v != FullBrightness {
			t.Fatalf("onFunc(%d) = %d", tt, v)
		}
		if v := offFunc(tt, 1, 0); v != ZeroBrightness {
			t.Fatalf("offFunc(%d) = %d", tt, v)
		}
	}
}
