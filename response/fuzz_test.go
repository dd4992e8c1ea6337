package response

import (
	"testing"
)

// FuzzParseSpotMeasurementResponse fuzzes the spot measurement parser with arbitrary input.
//
// The invariant is: the parser must never panic, and a successful parse must either carry
// a complete header or none at all.
func FuzzParseSpotMeasurementResponse(f *testing.F) {
	f.Add("WAV+001.2345E+06")
	f.Add("-001.234E-02")
	f.Add("NAI+000.005E-06,NBI+000.005E-06")
	f.Add("hello")
	f.Add("")
	f.Add("\x00\xff+1.000E+00")

	f.Fuzz(func(t *testing.T, input string) {
		m, err := ParseSpotMeasurementResponse(input)
		if err != nil {
			if m != nil {
				t.Fatalf("got measurement %+v with error %v", m, err)
			}
			return
		}

		set := 0
		for _, field := range []string{m.Status, m.Channel, m.DType} {
			if field != "" {
				if len(field) != 1 {
					t.Fatalf("header field %q should be one character", field)
				}
				set++
			}
		}
		if set != 0 && set != 3 {
			t.Fatalf("partial header in %+v", m)
		}
	})
}

// FuzzParseModuleQueryResponse fuzzes the inventory parser with arbitrary input.
//
// The invariant is: the parser never panics and never reports an empty slot.
func FuzzParseModuleQueryResponse(f *testing.F) {
	f.Add("A,1;0,2;B,3")
	f.Add("B1517A,0;0,0")
	f.Add("")
	f.Add(";;,,")

	f.Fuzz(func(t *testing.T, input string) {
		inventory := ParseModuleQueryResponse(input)
		for slot, model := range inventory {
			if slot < 1 {
				t.Fatalf("invalid slot %d", slot)
			}
			if model == emptySlotModel {
				t.Fatalf("slot %d reported as empty model", slot)
			}
		}
	})
}

// FuzzParseOutputSwitchResponse fuzzes the output switch parser with arbitrary input.
func FuzzParseOutputSwitchResponse(f *testing.F) {
	f.Add("CN1,2;")
	f.Add("CL")
	f.Add("1,,,99999999999")

	f.Fuzz(func(t *testing.T, input string) {
		for _, ch := range ParseOutputSwitchResponse(input) {
			if ch < 0 {
				t.Fatalf("negative channel %d", ch)
			}
		}
	})
}
