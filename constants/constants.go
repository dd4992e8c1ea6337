package constants

import "fmt"

const (
	// MinSlotNr is the first card slot of the mainframe.
	MinSlotNr SlotNr = 1
	// MaxSlotNr is the last card slot of the mainframe.
	MaxSlotNr SlotNr = 10
	// MaxSubChannel is the highest sub channel a module can own in one slot.
	MaxSubChannel = 2
)

// SlotNr identifies a physical card slot of the mainframe, 1-based.
type SlotNr int

// IsValid reports whether the slot number is in the range of [1, 10].
func (s SlotNr) IsValid() bool {
	return s >= MinSlotNr && s <= MaxSlotNr
}

// ChNr is a B1500 channel number.
type ChNr int

// NewChNr returns the channel number of the given sub channel of the module in slot.
//
// Sub channel 1 maps to the short form, which equals the slot number.
func NewChNr(slot SlotNr, sub int) (ChNr, error) {
	if !slot.IsValid() {
		return 0, fmt.Errorf("invalid slot number %d, should be in range of [%d, %d]", slot, MinSlotNr, MaxSlotNr)
	}

	switch {
	case sub == 1:
		return ChNr(slot), nil
	case sub > 1 && sub <= MaxSubChannel:
		return ChNr(slot)*100 + ChNr(sub), nil
	default:
		return 0, fmt.Errorf("invalid sub channel %d, should be in range of [1, %d]", sub, MaxSubChannel)
	}
}

// IsValid reports whether ch is an addressable channel number.
func (ch ChNr) IsValid() bool {
	if ch < 100 {
		return SlotNr(ch).IsValid()
	}

	sub := ch % 100
	if sub < 1 || sub > MaxSubChannel {
		return false
	}

	return ch/100 <= ChNr(MaxSlotNr) && ch/100 >= ChNr(MinSlotNr)
}

// Slot returns the slot of the module owning the channel, or 0 if ch is invalid.
func (ch ChNr) Slot() SlotNr {
	if !ch.IsValid() {
		return 0
	}
	if ch < 100 {
		return SlotNr(ch)
	}

	return SlotNr(ch / 100)
}

// LRNType is the record kind requested by the LRN? (learn) query.
type LRNType int

const (
	// LRNOutputSwitch requests the output switch (relay) status of all channels.
	LRNOutputSwitch LRNType = 0
)

// IsValid reports whether t is a supported learn query type.
func (t LRNType) IsValid() bool {
	return t == LRNOutputSwitch
}

func (t LRNType) String() string {
	switch t {
	case LRNOutputSwitch:
		return "output switch"
	default:
		return fmt.Sprintf("LRNType(%d)", int(t))
	}
}
