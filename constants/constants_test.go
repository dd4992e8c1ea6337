package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotNr_IsValid(t *testing.T) {
	require := require.New(t)

	require.False(SlotNr(0).IsValid())
	require.True(SlotNr(1).IsValid())
	require.True(SlotNr(10).IsValid())
	require.False(SlotNr(11).IsValid())
}

func TestNewChNr(t *testing.T) {
	tests := []struct {
		name        string
		slot        SlotNr
		sub         int
		expected    ChNr
		expectedErr string
	}{
		{name: "slot 1, first channel", slot: 1, sub: 1, expected: 1},
		{name: "slot 10, first channel", slot: 10, sub: 1, expected: 10},
		{name: "slot 1, second channel", slot: 1, sub: 2, expected: 102},
		{name: "slot 10, second channel", slot: 10, sub: 2, expected: 1002},
		{name: "invalid slot", slot: 0, sub: 1, expectedErr: "invalid slot number 0"},
		{name: "invalid sub channel", slot: 3, sub: 3, expectedErr: "invalid sub channel 3"},
		{name: "zero sub channel", slot: 3, sub: 0, expectedErr: "invalid sub channel 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := NewChNr(tt.slot, tt.sub)
			if tt.expectedErr != "" {
				require.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, ch)
			require.True(t, ch.IsValid())
			require.Equal(t, tt.slot, ch.Slot())
		})
	}
}

func TestChNr_IsValid(t *testing.T) {
	valid := []ChNr{1, 5, 10, 101, 102, 502, 1001, 1002}
	invalid := []ChNr{0, 11, 99, 100, 103, 110, 1003, 1101, 1102}

	for _, ch := range valid {
		require.Truef(t, ch.IsValid(), "channel %d should be valid", ch)
	}
	for _, ch := range invalid {
		require.Falsef(t, ch.IsValid(), "channel %d should be invalid", ch)
		require.Equal(t, SlotNr(0), ch.Slot())
	}
}

func TestLRNType(t *testing.T) {
	require.True(t, LRNOutputSwitch.IsValid())
	require.False(t, LRNType(31).IsValid())
	require.Equal(t, "output switch", LRNOutputSwitch.String())
	require.Equal(t, "LRNType(31)", LRNType(31).String())
}
