// Package sim provides an in-memory B1500 instrument simulator.
//
// The simulator implements module.Instrument and executes the relay control subset of
// the command set:
//
//   - CN [chnum[,chnum...]]: close the output relays; all installed channels if none given.
//   - CL [chnum[,chnum...]]: open the output relays; all installed channels if none given.
//   - LRN? 0: report the closed relays as "CN<chnum>[,<chnum>...]", or "CL" if none is closed.
//
// Commands of one message are separated by ';' and validated before any of them takes effect.
// The relay state is held in a lock-free map, so an Instrument can be shared between goroutines.
package sim
