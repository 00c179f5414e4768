// Package config reads the demo daemon configuration from environment
// variables and translates it into controller builder calls.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"

	"github.com/coreman2200/funtimes-ledfx/led"
)

// Config selects the effect, its timing parameters and the output sink.
// Durations are in milliseconds; REPEAT=0 means forever.
type Config struct {
	Effect      string `env:"EFFECT" envDefault:"BREATHE"`
	Period      int    `env:"PERIOD_MS" envDefault:"2000"`
	DurationOn  int    `env:"DURATION_ON_MS" envDefault:"500"`
	DurationOff int    `env:"DURATION_OFF_MS" envDefault:"500"`
	Repeat      int    `env:"REPEAT" envDefault:"0"`
	DelayBefore int    `env:"DELAY_BEFORE_MS" envDefault:"0"`
	DelayAfter  int    `env:"DELAY_AFTER_MS" envDefault:"0"`
	Invert      bool   `env:"INVERT" envDefault:"false"`
	LowActive   bool   `env:"LOW_ACTIVE" envDefault:"false"`

	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"5ms"`

	SinkType string `env:"SINK" envDefault:"SIM"` // SPI | PWM | SIM
	SPIDev   string `env:"SPI_DEV" envDefault:""`
	Pixels   int    `env:"PIXELS" envDefault:"8"`
	GPIOPin  string `env:"GPIO_PIN" envDefault:"GPIO18"`
}

// Parse reads the configuration from the environment.
func Parse() (Config, error) {
	c := Config{}
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Apply configures l with the effect and modifiers named by c.
func Apply(c Config, l *led.Led) error {
	switch c.Effect {
	case "ON":
		l.On()
	case "OFF":
		l.Off()
	case "BLINK":
		l.Blink(uint16(c.DurationOn), uint16(c.DurationOff))
	case "FADE_ON":
		l.FadeOn(uint16(c.Period))
	case "FADE_OFF":
		l.FadeOff(uint16(c.Period))
	case "BREATHE":
		l.Breathe(uint16(c.Period))
	default:
		return fmt.Errorf("unknown effect: %v (valid: ON, OFF, BLINK, FADE_ON, FADE_OFF, BREATHE)", c.Effect)
	}
	if c.Repeat == 0 {
		l.Forever()
	} else {
		l.Repeat(uint16(c.Repeat))
	}
	l.DelayBefore(uint16(c.DelayBefore))
	l.DelayAfter(uint16(c.DelayAfter))
	if c.Invert {
		l.Invert()
	}
	if c.LowActive {
		l.LowActive()
	}
	return nil
}
