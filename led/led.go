// Package led computes time-varying brightness for a single output channel
// from a small set of parametric effects (on, off, blink, fade, breathe or a
// user supplied function) without blocking the caller. The controller is
// driven by repeated Update calls from a polling loop; time is supplied by a
// monotonic millisecond counter, never by an internal timer.
//
//	l := led.New(strip).Breathe(2000).DelayAfter(500).Forever()
//	for l.Update() {
//	}
package led

import "time"

// Writer is the output sink a controller drives. Write receives an 8-bit
// intensity value at most once per tick per phase transition.
type Writer interface {
	Write(brightness uint8)
}

// WriterFunc adapts a plain function to the Writer interface.
type WriterFunc func(brightness uint8)

func (f WriterFunc) Write(brightness uint8) { f(brightness) }

// RepeatForever is the repeat count meaning the effect never finishes.
const RepeatForever uint16 = 65535

var epoch = time.Now()

// defaultClock counts milliseconds since process start. The counter wraps
// after ~49.7 days; the controller only ever subtracts timestamps, so the
// wrap is harmless.
func defaultClock() uint32 {
	return uint32(time.Since(epoch).Milliseconds())
}

// Led runs one brightness effect against one Writer. A Led is bound to its
// Writer for life; selecting a new effect resets the timeline but keeps the
// binding and any modifiers already applied. Not safe for concurrent use:
// one controller is driven by exactly one caller context.
//
// The timeline of one run is
//
//	<delay before> [ fn(0 .. period-1) | hold <delay after> ]  x numRepeats
//
// where the hold phase freezes the value of fn(period-1).
type Led struct {
	writer Writer
	clock  func() uint32

	fn     BrightnessFunc
	period uint16
	param  uint32

	numRepeats  uint16
	delayBefore uint16
	delayAfter  uint16

	lastTick  uint32
	ticked    bool // lastTick holds a real timestamp
	timeStart uint32

	inverted     bool
	lowActive    bool
	inDelayAfter bool
}

// New returns an idle controller bound to w. Update is a no-op until an
// effect is selected.
func New(w Writer) *Led {
	return &Led{writer: w, clock: defaultClock, numRepeats: 1}
}

// WithClock replaces the millisecond clock sampled by Update. The clock must
// be monotonically increasing modulo 2^32.
func (l *Led) WithClock(clock func() uint32) *Led {
	l.clock = clock
	return l
}

// On turns the LED on, respecting any delay-before.
func (l *Led) On() *Led {
	l.period = 1
	return l.init(onFunc)
}

// Off turns the LED off, respecting any delay-before.
func (l *Led) Off() *Led {
	l.period = 1
	return l.init(offFunc)
}

// Set turns the LED on or off.
func (l *Led) Set(on bool) *Led {
	if on {
		return l.On()
	}
	return l.Off()
}

// FadeOn fades the LED from off to on over duration ms.
func (l *Led) FadeOn(duration uint16) *Led {
	l.period = minPeriod(duration)
	return l.init(fadeOnFunc)
}

// FadeOff fades the LED from on to off over duration ms.
func (l *Led) FadeOff(duration uint16) *Led {
	l.period = minPeriod(duration)
	return l.init(fadeOffFunc)
}

// Breathe fades the LED on and back off once per period ms.
func (l *Led) Breathe(period uint16) *Led {
	l.period = minPeriod(period)
	return l.init(breatheFunc)
}

// Blink turns the LED on for durationOn ms and off for durationOff ms per
// repetition.
func (l *Led) Blink(durationOn, durationOff uint16) *Led {
	l.period = minPeriod(durationOn + durationOff)
	l.param = uint32(durationOn)
	return l.init(blinkFunc)
}

// UserFunc installs fn as the brightness function, evaluated over period ms
// with the opaque param passed through on every call.
func (l *Led) UserFunc(fn BrightnessFunc, period uint16, param uint32) *Led {
	l.period = minPeriod(period)
	l.param = param
	return l.init(fn)
}

// Repeat sets the number of repetitions to run.
func (l *Led) Repeat(n uint16) *Led {
	l.numRepeats = n
	return l
}

// Forever repeats the effect indefinitely.
func (l *Led) Forever() *Led { return l.Repeat(RepeatForever) }

// IsForever reports whether the effect repeats indefinitely.
func (l *Led) IsForever() bool { return l.numRepeats == RepeatForever }

// DelayBefore sets the time to wait before the first repetition starts,
// relative to the first Update call.
func (l *Led) DelayBefore(ms uint16) *Led {
	l.delayBefore = ms
	return l
}

// DelayAfter sets the time to hold the terminal value after each repetition.
func (l *Led) DelayAfter(ms uint16) *Led {
	l.delayAfter = ms
	return l
}

// Invert replaces every computed brightness b with 255-b.
func (l *Led) Invert() *Led {
	l.inverted = true
	return l
}

// IsInverted reports whether brightness inversion is active.
func (l *Led) IsInverted() bool { return l.inverted }

// LowActive inverts every value physically written to the sink, for outputs
// where 0 means full on.
func (l *Led) LowActive() *Led {
	l.lowActive = true
	return l
}

// IsLowActive reports whether the output polarity is inverted.
func (l *Led) IsLowActive() bool { return l.lowActive }

// IsRunning reports whether an effect is active.
func (l *Led) IsRunning() bool { return l.fn != nil }

// Update samples the clock and advances the effect. It returns true while
// the effect is still running and false once it finished or when the
// controller is idle.
func (l *Led) Update() bool { return l.Tick(l.clock()) }

// Tick advances the effect to time now (milliseconds, monotonic modulo
// 2^32) and writes at most one brightness value to the sink. Calling Tick
// again with the same now is a no-op. It returns true while the effect is
// still running.
func (l *Led) Tick(now uint32) bool {
	if l.fn == nil {
		return false
	}

	// collapse duplicate calls within the same tick to the evaluation
	// already performed
	if l.ticked && now == l.lastTick {
		return true
	}

	if !l.ticked {
		l.ticked = true
		l.lastTick = now
		l.timeStart = now + uint32(l.delayBefore)
	}
	delta := now - l.lastTick
	l.lastTick = now

	// consume delay-before with wall-clock deltas so irregular call
	// intervals still add up to the configured delay
	if l.delayBefore > 0 {
		if delta < uint32(l.delayBefore) {
			l.delayBefore -= uint16(delta)
			return true
		}
		l.delayBefore = 0
	}

	cycle := uint32(l.period) + uint32(l.delayAfter)

	if !l.IsForever() {
		lifetime := cycle * uint32(l.numRepeats)
		if now-l.timeStart >= lifetime {
			// land on the terminal value before going idle
			l.write(l.eval(uint32(l.period) - 1))
			l.fn = nil
			return false
		}
	}

	// position within the current repetition, in [0..cycle-1]
	t := (now - l.timeStart) % cycle

	if t < uint32(l.period) {
		l.inDelayAfter = false
		l.write(l.eval(t))
	} else if !l.inDelayAfter {
		// hold phase: freeze the terminal value with a single write
		l.inDelayAfter = true
		l.write(l.eval(uint32(l.period) - 1))
	}
	return true
}

// Stop aborts the effect and turns the output off immediately. The raw zero
// bypasses inversion and polarity.
func (l *Led) Stop() {
	l.fn = nil
	l.writer.Write(0)
}

// init installs fn and resets the timeline. Modifiers (delays, repeat,
// flags) are deliberately left untouched so they compose with effect
// selection in any call order.
func (l *Led) init(fn BrightnessFunc) *Led {
	l.fn = fn
	l.ticked = false
	l.timeStart = 0
	return l
}

func (l *Led) eval(t uint32) uint8 {
	v := l.fn(t, l.period, l.param)
	if l.inverted {
		v = FullBrightness - v
	}
	return v
}

func (l *Led) write(v uint8) {
	if l.lowActive {
		v = FullBrightness - v
	}
	l.writer.Write(v)
}

// minPeriod keeps the cycle arithmetic divisible: every evaluable effect
// runs over at least 1ms.
func minPeriod(p uint16) uint16 {
	if p == 0 {
		return 1
	}
	return p
}
