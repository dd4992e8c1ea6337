// Package command provides a fluent builder for B1500 command messages.
//
// A message is a sequence of commands joined by ';' and sent to the instrument in
// a single write. The builder supports the relay control commands and the learn query:
//
//   - CN: close the output relays (enable) of the given channels.
//   - CL: open the output relays (disable) of the given channels.
//   - LRN?: query one record of the instrument settings.
//
// Validation errors are recorded on the builder and reported by Message, so calls can
// be chained without checking each step.
//
// Usage Example:
//
//	msg, err := command.NewMessageBuilder().
//	    CN(1, 2).
//	    LRNQuery(constants.LRNOutputSwitch).
//	    Message()
//	// msg: "CN 1,2;LRN? 0"
package command
