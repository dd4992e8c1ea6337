package response

import "unsafe"

// sharesMemory reports whether sub points into the bytes of s.
func sharesMemory(s string, sub string) bool {
	if len(s) == 0 || len(sub) == 0 {
		return false
	}

	start := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(sub)))

	return p >= start && p < start+uintptr(len(s))
}
