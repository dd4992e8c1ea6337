package sim

import (
	"errors"
	"fmt"

	"github.com/arloliu/go-b1500/constants"
	"github.com/arloliu/go-b1500/logger"
)

type instrumentConfig struct {
	installed []constants.ChNr
	logger    logger.Logger
	writeErr  error
	askErr    error
}

// InstrumentOption represents a functional option for configuring an Instrument.
type InstrumentOption interface {
	apply(*instrumentConfig) error
}

type instrumentOptFunc struct {
	f func(*instrumentConfig) error
}

func (o *instrumentOptFunc) apply(cfg *instrumentConfig) error {
	return o.f(cfg)
}

func newInstrumentOptFunc(f func(*instrumentConfig) error) *instrumentOptFunc {
	return &instrumentOptFunc{f: f}
}

// WithInstalledChannels restricts the simulator to the given channels.
//
// CN and CL without arguments act on these channels, and commands addressing any other
// channel fail with ErrNotInstalled. By default every valid channel is accepted and CN or
// CL without arguments act on no channel.
func WithInstalledChannels(channels ...constants.ChNr) InstrumentOption {
	return newInstrumentOptFunc(func(cfg *instrumentConfig) error {
		for _, ch := range channels {
			if !ch.IsValid() {
				return fmt.Errorf("invalid installed channel %d", ch)
			}
		}
		cfg.installed = append(make([]constants.ChNr, 0, len(channels)), channels...)
		return nil
	})
}

// WithLogger sets the logger of the simulator.
func WithLogger(l logger.Logger) InstrumentOption {
	return newInstrumentOptFunc(func(cfg *instrumentConfig) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l
		return nil
	})
}

// WithWriteError makes every Write fail with err, simulating a broken connection.
func WithWriteError(err error) InstrumentOption {
	return newInstrumentOptFunc(func(cfg *instrumentConfig) error {
		cfg.writeErr = err
		return nil
	})
}

// WithAskError makes every Ask fail with err, simulating a broken connection.
func WithAskError(err error) InstrumentOption {
	return newInstrumentOptFunc(func(cfg *instrumentConfig) error {
		cfg.askErr = err
		return nil
	})
}
