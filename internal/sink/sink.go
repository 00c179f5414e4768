// Package sink provides led.Writer implementations: an NRZ (WS2812-class)
// strip driven over SPI with a terminal fallback, a PWM GPIO pin, and an
// in-memory recorder for tests and simulation.
package sink

import "github.com/coreman2200/funtimes-ledfx/internal/logging"

var logger = logging.New("sink")
