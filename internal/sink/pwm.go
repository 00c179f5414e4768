package sink

import (
	"fmt"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// PWMPin dims a single GPIO pin by mapping the 8-bit brightness onto the
// pin's PWM duty cycle.
type PWMPin struct {
	pin  gpio.PinIO
	freq physic.Frequency
}

// NewPWMPin initializes the host and looks up the pin by name (e.g. "GPIO18"
// or "18"). freq is the PWM carrier frequency; 0 picks 25kHz.
func NewPWMPin(name string, freq physic.Frequency) (*PWMPin, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	if freq == 0 {
		freq = 25 * physic.KiloHertz
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return &PWMPin{pin: pin, freq: freq}, nil
}

// Write sets the duty cycle proportional to v (255 = always on).
func (p *PWMPin) Write(v uint8) {
	duty := gpio.Duty(uint64(v) * uint64(gpio.DutyMax) / 255)
	if err := p.pin.PWM(duty, p.freq); err != nil {
		logger.With(zap.Error(err), zap.String("pin", p.pin.Name())).Error("PWM write failed")
	}
}

// Close stops the PWM output.
func (p *PWMPin) Close() error {
	return p.pin.Halt()
}
