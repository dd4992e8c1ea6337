package module

import "errors"

var (
	// ErrInstrumentNil indicates that a nil Instrument was provided.
	ErrInstrumentNil = errors.New("instrument is nil")

	// ErrInvalidSlot indicates that the slot number is out of range of [1, 10].
	ErrInvalidSlot = errors.New("invalid slot number, should be in range of [1, 10]")

	// ErrNoChannels indicates that a module was created without channels.
	ErrNoChannels = errors.New("module has no channels")

	// ErrInvalidChannel indicates that a channel number is not addressable.
	ErrInvalidChannel = errors.New("invalid channel number")

	// ErrDuplicateChannel indicates that a channel number appears more than once.
	ErrDuplicateChannel = errors.New("duplicate channel number")

	// ErrCommandBuilderNil indicates that a nil CommandBuilder was provided.
	ErrCommandBuilderNil = errors.New("command builder is nil")

	// ErrLoggerNil indicates that a nil Logger was provided.
	ErrLoggerNil = errors.New("logger is nil")
)
