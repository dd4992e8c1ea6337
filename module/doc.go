// Package module provides the driver of a single B1500 plug-in module.
//
// A Module owns the slot it is installed in and a fixed, ordered sequence of channels.
// It controls the output relays of all its channels at once:
//
//   - EnableOutputs closes the output relays of every channel (CN).
//   - DisableOutputs opens the output relays of every channel (CL).
//   - IsEnabled queries the output switch status (LRN? 0) and reports whether
//     every channel of the module has a closed relay.
//
// Per-channel relay control is not supported: a module with only some closed
// relays reports not enabled.
//
// The Module talks to the instrument through the Instrument interface and builds its
// commands through the CommandBuilder interface, so both can be replaced for testing.
// A Module issues exactly one command per call and holds no other state; callers
// driving several modules over one connection must serialize the calls.
package module
