package module

import (
	"fmt"
	"strconv"

	"github.com/arloliu/go-b1500/constants"
	"github.com/arloliu/go-b1500/internal/util"
	"github.com/arloliu/go-b1500/logger"
	"github.com/arloliu/go-b1500/response"
)

// Module represents a plug-in module of the B1500 mainframe.
//
// The slot and the channels are fixed when the module is created.
type Module struct {
	instr    Instrument
	builder  CommandBuilder
	logger   logger.Logger
	name     string
	slot     constants.SlotNr
	channels []constants.ChNr
}

// NewModule creates a Module installed in slot, owning the given channels in order.
//
// The channels are copied; later changes to the slice do not affect the module.
// It returns an error if the instrument is nil, the slot is out of range, or the channels
// are empty, invalid or duplicated.
func NewModule(instr Instrument, slot constants.SlotNr, channels []constants.ChNr, opts ...ModuleOption) (*Module, error) {
	if instr == nil {
		return nil, ErrInstrumentNil
	}

	if !slot.IsValid() {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSlot, slot)
	}

	if err := validateChannels(channels); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.name == "" {
		cfg.name = "module" + strconv.Itoa(int(slot))
	}

	return &Module{
		instr:    instr,
		builder:  cfg.builder,
		logger:   cfg.logger.With("module", cfg.name, "slot", int(slot)),
		name:     cfg.name,
		slot:     slot,
		channels: util.CloneSlice(channels, 0),
	}, nil
}

func validateChannels(channels []constants.ChNr) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}

	seen := make(map[constants.ChNr]struct{}, len(channels))
	for _, ch := range channels {
		if !ch.IsValid() {
			return fmt.Errorf("%w: %d", ErrInvalidChannel, ch)
		}
		if _, ok := seen[ch]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateChannel, ch)
		}
		seen[ch] = struct{}{}
	}

	return nil
}

// Name returns the name of the module.
func (m *Module) Name() string { return m.name }

// Slot returns the slot number the module is installed in.
func (m *Module) Slot() constants.SlotNr { return m.slot }

// Channels returns a copy of the channels of the module, in order.
func (m *Module) Channels() []constants.ChNr { return util.CloneSlice(m.channels, 0) }

// EnableOutputs enables all outputs of the module by closing the output relays of
// its channels.
//
// Errors from the command builder and the instrument are returned unchanged.
func (m *Module) EnableOutputs() error {
	msg, err := m.builder.CloseRelay(m.channels)
	if err != nil {
		return err
	}

	return m.write(msg)
}

// DisableOutputs disables all outputs of the module by opening the output relays of
// its channels.
//
// Errors from the command builder and the instrument are returned unchanged.
func (m *Module) DisableOutputs() error {
	msg, err := m.builder.OpenRelay(m.channels)
	if err != nil {
		return err
	}

	return m.write(msg)
}

// IsEnabled reports whether all channels of the module are enabled.
//
// It queries the output switch status of the instrument on every call. The result is
// true only if every channel of the module has a closed output relay; a module with
// some of its channels enabled reports false.
//
// Only errors from the command builder and the instrument are returned.
func (m *Module) IsEnabled() (bool, error) {
	msg, err := m.builder.StatusQuery(constants.LRNOutputSwitch)
	if err != nil {
		return false, err
	}

	m.logger.Debug("ask instrument", "cmd", msg)
	resp, err := m.instr.Ask(msg)
	if err != nil {
		m.logger.Warn("failed to ask instrument", "cmd", msg, "error", err)
		return false, err
	}
	m.logger.Debug("instrument responded", "cmd", msg, "response", resp)

	closed := response.ParseOutputSwitchResponse(resp)

	return util.IsSubset(m.channels, closed), nil
}

func (m *Module) write(msg string) error {
	m.logger.Debug("write instrument", "cmd", msg)
	if err := m.instr.Write(msg); err != nil {
		m.logger.Warn("failed to write instrument", "cmd", msg, "error", err)
		return err
	}

	return nil
}
