// Command ledfx runs one LED effect against a hardware sink, driven by a
// polling loop. All settings come from the environment, e.g.:
//
//	EFFECT=BLINK DURATION_ON_MS=250 DURATION_OFF_MS=250 SINK=SPI ledfx
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/coreman2200/funtimes-ledfx/internal/config"
	"github.com/coreman2200/funtimes-ledfx/internal/logging"
	"github.com/coreman2200/funtimes-ledfx/internal/sink"
	"github.com/coreman2200/funtimes-ledfx/led"
)

var logger = logging.New("ledfx")

type closableWriter interface {
	led.Writer
	Close() error
}

func main() {
	defer logger.Sync()

	cfg, err := config.Parse()
	if err != nil {
		logger.With(zap.Error(err)).Fatal("failed to parse environment variables")
	}
	logger.With(zap.Any("config", cfg)).Info("starting ledfx")

	w, err := buildSink(cfg)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("failed to open sink")
	}
	defer w.Close()

	l := led.New(w)
	if err := config.Apply(cfg, l); err != nil {
		logger.With(zap.Error(err)).Fatal("bad effect configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run(ctx, l, cfg.TickInterval)
}

func run(ctx context.Context, l *led.Led, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !l.Update() {
				logger.Info("effect finished")
				return
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			l.Stop()
			return
		}
	}
}

func buildSink(cfg config.Config) (closableWriter, error) {
	switch cfg.SinkType {
	case "SPI":
		return sink.NewStrip(cfg.SPIDev, cfg.Pixels)
	case "PWM":
		return sink.NewPWMPin(cfg.GPIOPin, 0)
	case "SIM":
		return sink.NewSim(cfg.Pixels), nil
	default:
		logger.Fatalf("unknown sink type: %v (valid: SPI, PWM, SIM)", cfg.SinkType)
		return nil, nil
	}
}
