// Package constants defines the value types shared by the B1500 command builder,
// the response parsers and the module driver.
//
// Slot and Channel Numbers:
//
// A B1500 mainframe has ten card slots, numbered from 1. Every channel of a plug-in
// module is addressed by a channel number derived from its slot:
//
//   - 1 to 10: the first channel of the module in slot 1 to 10.
//   - 101 to 1002: slot*100 + sub channel, where sub channel is 1 or 2
//     (e.g. 102 is the second channel of the module in slot 1).
//
// Learn Query Types:
//
// The LRN? query reports one record of the instrument settings. Only the
// output switch record (LRNOutputSwitch) is used by this library.
package constants
