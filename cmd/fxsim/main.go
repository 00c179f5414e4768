// Command fxsim steps an effect through a virtual millisecond clock and
// prints every brightness write as a bar, so curves can be eyeballed
// without hardware or wall time.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/coreman2200/funtimes-ledfx/led"
)

func main() {
	var (
		effect  string
		period  uint
		on, off uint
		repeat  uint
		delayB  uint
		delayA  uint
		invert  bool
		stepMS  uint
		maxMS   uint
	)
	flag.StringVar(&effect, "effect", "breathe", "on|off|blink|fadeon|fadeoff|breathe")
	flag.UintVar(&period, "period", 1000, "effect period in ms")
	flag.UintVar(&on, "on", 250, "blink on-duration in ms")
	flag.UintVar(&off, "off", 250, "blink off-duration in ms")
	flag.UintVar(&repeat, "repeat", 1, "repetitions, 0 = forever")
	flag.UintVar(&delayB, "delay-before", 0, "delay before first repetition in ms")
	flag.UintVar(&delayA, "delay-after", 0, "hold after each repetition in ms")
	flag.BoolVar(&invert, "invert", false, "invert brightness")
	flag.UintVar(&stepMS, "step", 25, "virtual clock step in ms")
	flag.UintVar(&maxMS, "max", 10000, "stop after this many virtual ms")
	flag.Parse()

	now := uint32(0)
	var last uint8
	l := led.New(led.WriterFunc(func(v uint8) {
		last = v
		fmt.Printf("%6dms %3d %s\n", now, v, strings.Repeat("#", int(v)/4))
	}))

	switch effect {
	case "on":
		l.On()
	case "off":
		l.Off()
	case "blink":
		l.Blink(uint16(on), uint16(off))
	case "fadeon":
		l.FadeOn(uint16(period))
	case "fadeoff":
		l.FadeOff(uint16(period))
	case "breathe":
		l.Breathe(uint16(period))
	default:
		log.Fatalf("unknown effect %q", effect)
	}
	if repeat == 0 {
		l.Forever()
	} else {
		l.Repeat(uint16(repeat))
	}
	l.DelayBefore(uint16(delayB)).DelayAfter(uint16(delayA))
	if invert {
		l.Invert()
	}

	for ; now <= uint32(maxMS); now += uint32(stepMS) {
		if !l.Tick(now) {
			fmt.Printf("finished at %dms, last value %d\n", now, last)
			return
		}
	}
	fmt.Printf("stopped at %dms (still running), last value %d\n", maxMS, last)
}
