package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// IsSubset reports whether every element of subset appears in set.
//
// Duplicates are ignored, and an empty subset is a subset of any set.
func IsSubset[T comparable](subset []T, set []T) bool {
	members := make(map[T]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}

	for _, v := range subset {
		if _, ok := members[v]; !ok {
			return false
		}
	}

	return true
}
