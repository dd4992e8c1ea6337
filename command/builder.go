package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-b1500/constants"
)

const (
	// MaxChannels is the maximum number of channels accepted by a single CN or CL command.
	MaxChannels = 15

	commandSeparator = ";"
)

// MessageBuilder builds a B1500 command message.
//
// The zero value is ready to use. A MessageBuilder is not safe for concurrent use.
type MessageBuilder struct {
	commands []string
	err      error
}

// NewMessageBuilder creates a new, empty MessageBuilder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// CN adds a command closing the output relays of the given channels.
// Without channels, the command closes the relays of all installed channels.
func (b *MessageBuilder) CN(channels ...constants.ChNr) *MessageBuilder {
	return b.addChannelCommand("CN", channels)
}

// CL adds a command opening the output relays of the given channels.
// Without channels, the command opens the relays of all installed channels.
func (b *MessageBuilder) CL(channels ...constants.ChNr) *MessageBuilder {
	return b.addChannelCommand("CL", channels)
}

// LRNQuery adds a learn query requesting the settings record of type t.
func (b *MessageBuilder) LRNQuery(t constants.LRNType) *MessageBuilder {
	if !t.IsValid() {
		return b.setError(fmt.Errorf("%w: %d", ErrInvalidLRNType, int(t)))
	}

	return b.add("LRN? " + strconv.Itoa(int(t)))
}

// Message returns the commands joined by ';', or the first error recorded while building.
func (b *MessageBuilder) Message() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if len(b.commands) == 0 {
		return "", ErrEmptyMessage
	}

	return strings.Join(b.commands, commandSeparator), nil
}

// Err returns the first error recorded while building, if any.
func (b *MessageBuilder) Err() error {
	return b.err
}

func (b *MessageBuilder) addChannelCommand(name string, channels []constants.ChNr) *MessageBuilder {
	if len(channels) == 0 {
		return b.add(name)
	}

	if len(channels) > MaxChannels {
		return b.setError(fmt.Errorf("%w: %s accepts up to %d channels, got %d", ErrTooManyChannels, name, MaxChannels, len(channels)))
	}

	var sb strings.Builder
	sb.Grow(len(name) + 1 + len(channels)*5)
	sb.WriteString(name)
	sb.WriteByte(' ')
	for i, ch := range channels {
		if !ch.IsValid() {
			return b.setError(fmt.Errorf("%w: %d", ErrInvalidChannel, ch))
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(ch)))
	}

	return b.add(sb.String())
}

func (b *MessageBuilder) add(cmd string) *MessageBuilder {
	if b.err == nil {
		b.commands = append(b.commands, cmd)
	}

	return b
}

func (b *MessageBuilder) setError(err error) *MessageBuilder {
	if b.err == nil {
		b.err = err
	}

	return b
}
