package module

import (
	"github.com/arloliu/go-b1500/command"
	"github.com/arloliu/go-b1500/logger"
)

type moduleConfig struct {
	name    string
	builder CommandBuilder
	logger  logger.Logger
}

func defaultConfig() *moduleConfig {
	return &moduleConfig{
		builder: command.Commands{},
		logger:  logger.GetLogger(),
	}
}

// ModuleOption represents a functional option for configuring a Module.
type ModuleOption interface {
	apply(*moduleConfig) error
}

type moduleOptFunc struct {
	f func(*moduleConfig) error
}

func (o *moduleOptFunc) apply(cfg *moduleConfig) error {
	return o.f(cfg)
}

func newModuleOptFunc(f func(*moduleConfig) error) *moduleOptFunc {
	return &moduleOptFunc{f: f}
}

// WithName sets the name of the module used in log messages.
// Defaults to "module<slot>", e.g. "module3".
func WithName(name string) ModuleOption {
	return newModuleOptFunc(func(cfg *moduleConfig) error {
		cfg.name = name
		return nil
	})
}

// WithCommandBuilder sets the builder of the command messages.
// Defaults to command.Commands.
func WithCommandBuilder(builder CommandBuilder) ModuleOption {
	return newModuleOptFunc(func(cfg *moduleConfig) error {
		if builder == nil {
			return ErrCommandBuilderNil
		}
		cfg.builder = builder
		return nil
	})
}

// WithLogger sets the logger of the module.
// Defaults to the package default logger of the logger package.
func WithLogger(l logger.Logger) ModuleOption {
	return newModuleOptFunc(func(cfg *moduleConfig) error {
		if l == nil {
			return ErrLoggerNil
		}
		cfg.logger = l
		return nil
	})
}
