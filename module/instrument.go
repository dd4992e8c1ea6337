package module

import "github.com/arloliu/go-b1500/constants"

// Instrument defines the interface of the instrument connection used by a Module.
type Instrument interface {
	// Write sends a command message that has no response.
	Write(cmd string) error

	// Ask sends a query message and returns its response.
	Ask(cmd string) (string, error)
}

// CommandBuilder defines the interface for building the command messages used by a Module.
//
// command.Commands is the default implementation.
type CommandBuilder interface {
	// CloseRelay returns the message closing the output relays of the channels.
	CloseRelay(channels []constants.ChNr) (string, error)

	// OpenRelay returns the message opening the output relays of the channels.
	OpenRelay(channels []constants.ChNr) (string, error)

	// StatusQuery returns the message querying the settings record of type t.
	StatusQuery(t constants.LRNType) (string, error)
}
