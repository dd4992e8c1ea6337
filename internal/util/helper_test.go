package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []uint16{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 99
	require.Equal(uint16(1), src[0], "clone should not share the backing array")

	clone = CloneSlice(src, 5)
	require.Equal([]uint16{1, 2, 3, 0, 0}, clone)

	clone = CloneSlice([]uint16{}, 0)
	require.Empty(clone)
	require.NotNil(clone)
}

func TestIsSubset(t *testing.T) {
	tests := []struct {
		description string
		subset      []int
		set         []int
		expected    bool
	}{
		{description: "equal sets", subset: []int{1, 2}, set: []int{2, 1}, expected: true},
		{description: "proper subset", subset: []int{1}, set: []int{1, 2, 3}, expected: true},
		{description: "missing element", subset: []int{1, 2}, set: []int{1}, expected: false},
		{description: "empty subset", subset: []int{}, set: []int{1}, expected: true},
		{description: "empty set", subset: []int{1}, set: nil, expected: false},
		{description: "duplicates in subset", subset: []int{2, 2}, set: []int{2}, expected: true},
	}

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		require.Equal(t, tt.expected, IsSubset(tt.subset, tt.set))
	}
}
