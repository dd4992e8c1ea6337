// Package response provides parsers for the ASCII responses of a B1500 parameter analyzer.
//
// Supported responses:
//
//   - Module inventory (reply to `UNT? 0`): a sequence of `model,revision` pairs,
//     optionally separated by `;`. See ParseModuleQueryResponse.
//   - Spot measurement (reply to a spot measurement command): an optional 3-character
//     status/channel/data-type header followed by a signed scientific-notation value.
//     See ParseSpotMeasurementResponse.
//   - Output switch status (reply to `LRN? 0`): comma-separated channel numbers
//     mixed with other characters. See ParseOutputSwitchResponse.
//
// All parsers are stateless and safe for concurrent use.
//
// Usage Example:
//
//	inventory := response.ParseModuleQueryResponse("B1517A,0;B1517A,0;0,0")
//	// inventory: map[1:B1517A 2:B1517A]
//
//	m, err := response.ParseSpotMeasurementResponse("NAI+000.005E-06")
//	if err != nil {
//	    // Handle error
//	}
//	// m.Status: "N", m.Channel: "A", m.DType: "I", m.Value: 5e-09
package response
