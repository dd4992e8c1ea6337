package command

import "github.com/arloliu/go-b1500/constants"

// Commands builds single-command messages with MessageBuilder.
//
// It implements the module.CommandBuilder interface.
type Commands struct{}

// CloseRelay returns a CN message for the given channels.
func (Commands) CloseRelay(channels []constants.ChNr) (string, error) {
	return NewMessageBuilder().CN(channels...).Message()
}

// OpenRelay returns a CL message for the given channels.
func (Commands) OpenRelay(channels []constants.ChNr) (string, error) {
	return NewMessageBuilder().CL(channels...).Message()
}

// StatusQuery returns a LRN? message for the given record type.
func (Commands) StatusQuery(t constants.LRNType) (string, error) {
	return NewMessageBuilder().LRNQuery(t).Message()
}
