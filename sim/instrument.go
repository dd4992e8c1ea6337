package sim

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/go-b1500/constants"
	"github.com/arloliu/go-b1500/logger"
	"github.com/arloliu/go-b1500/module"
	"github.com/puzpuzpuz/xsync/v3"
)

const outputSwitchQuery = "LRN? 0"

// Instrument is a simulated B1500 mainframe.
type Instrument struct {
	closed    *xsync.MapOf[constants.ChNr, struct{}]
	installed map[constants.ChNr]struct{}
	logger    logger.Logger
	writeErr  error
	askErr    error
}

var _ module.Instrument = (*Instrument)(nil)

// NewInstrument creates a simulator with all relays open.
func NewInstrument(opts ...InstrumentOption) (*Instrument, error) {
	cfg := &instrumentConfig{logger: logger.GetLogger()}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	instr := &Instrument{
		closed:   xsync.NewMapOf[constants.ChNr, struct{}](),
		logger:   cfg.logger.With("component", "sim"),
		writeErr: cfg.writeErr,
		askErr:   cfg.askErr,
	}

	if cfg.installed != nil {
		instr.installed = make(map[constants.ChNr]struct{}, len(cfg.installed))
		for _, ch := range cfg.installed {
			instr.installed[ch] = struct{}{}
		}
	}

	return instr, nil
}

type relayOp struct {
	close    bool
	channels []constants.ChNr
}

// Write executes the ';'-separated CN and CL commands of cmd.
//
// No command takes effect if any of them is invalid or unsupported.
func (instr *Instrument) Write(cmd string) error {
	if instr.writeErr != nil {
		return instr.writeErr
	}

	ops := make([]relayOp, 0, 1)
	for _, part := range strings.Split(cmd, ";") {
		op, err := instr.parseRelayCommand(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	for _, op := range ops {
		for _, ch := range op.channels {
			if op.close {
				instr.closed.Store(ch, struct{}{})
			} else {
				instr.closed.Delete(ch)
			}
		}
	}

	instr.logger.Debug("command executed", "cmd", cmd, "closed", instr.Closed())

	return nil
}

// Ask answers the output switch query.
func (instr *Instrument) Ask(cmd string) (string, error) {
	if instr.askErr != nil {
		return "", instr.askErr
	}

	if strings.Join(strings.Fields(cmd), " ") != outputSwitchQuery {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCommand, cmd)
	}

	closed := instr.Closed()
	if len(closed) == 0 {
		return "CL", nil
	}

	fields := make([]string, len(closed))
	for i, ch := range closed {
		fields[i] = strconv.Itoa(int(ch))
	}
	resp := "CN" + strings.Join(fields, ",")

	instr.logger.Debug("query answered", "cmd", cmd, "response", resp)

	return resp, nil
}

// Closed returns the channels with closed output relays in ascending order.
func (instr *Instrument) Closed() []constants.ChNr {
	closed := make([]constants.ChNr, 0, instr.closed.Size())
	instr.closed.Range(func(ch constants.ChNr, _ struct{}) bool {
		closed = append(closed, ch)
		return true
	})
	slices.Sort(closed)

	return closed
}

// Reset opens all output relays.
func (instr *Instrument) Reset() {
	instr.closed.Clear()
}

func (instr *Instrument) parseRelayCommand(cmd string) (relayOp, error) {
	name, args, _ := strings.Cut(cmd, " ")

	var op relayOp
	switch name {
	case "CN":
		op.close = true
	case "CL":
		op.close = false
	default:
		return op, fmt.Errorf("%w: %q", ErrUnsupportedCommand, cmd)
	}

	args = strings.TrimSpace(args)
	if args == "" {
		op.channels = instr.installedChannels()
		return op, nil
	}

	for _, field := range strings.Split(args, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return op, fmt.Errorf("%w: %q: %w", ErrInvalidCommand, cmd, err)
		}

		ch := constants.ChNr(n)
		if !ch.IsValid() {
			return op, fmt.Errorf("%w: %q: channel %d", ErrInvalidCommand, cmd, ch)
		}
		if !instr.isInstalled(ch) {
			return op, fmt.Errorf("%w: %d", ErrNotInstalled, ch)
		}
		op.channels = append(op.channels, ch)
	}

	return op, nil
}

// isInstalled treats every valid channel as installed unless WithInstalledChannels is used.
func (instr *Instrument) isInstalled(ch constants.ChNr) bool {
	if instr.installed == nil {
		return true
	}
	_, ok := instr.installed[ch]

	return ok
}

func (instr *Instrument) installedChannels() []constants.ChNr {
	channels := make([]constants.ChNr, 0, len(instr.installed))
	for ch := range instr.installed {
		channels = append(channels, ch)
	}
	slices.Sort(channels)

	return channels
}
