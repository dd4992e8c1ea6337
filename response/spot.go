package response

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const spotMeasurementPattern = `((?P<status>\w)(?P<chnr>\w)(?P<dtype>\w))?` +
	`(?P<value>[+-]\d{1,3}\.\d{3,6}E[+-]\d{2})`

// anchored at the start only, trailing characters are ignored
var spotMeasurementRegexp = regexp.MustCompile(`^(?:` + spotMeasurementPattern + `)`)

var (
	spotStatusIdx  = spotMeasurementRegexp.SubexpIndex("status")
	spotChannelIdx = spotMeasurementRegexp.SubexpIndex("chnr")
	spotDTypeIdx   = spotMeasurementRegexp.SubexpIndex("dtype")
	spotValueIdx   = spotMeasurementRegexp.SubexpIndex("value")
)

// SpotMeasurement represents a single spot measurement record.
//
// Status, Channel and DType come from the optional 3-character header of the response.
// They are either all set, each holding exactly one character, or all empty when the
// response carries no header.
type SpotMeasurement struct {
	// Status is the measurement status code.
	Status string
	// Channel is the channel tag of the measured channel.
	Channel string
	// DType is the measured data type tag, e.g. "I" for current or "V" for voltage.
	DType string
	// Value is the measured value.
	Value float64
}

// HasHeader reports whether the response carried the status/channel/data type header.
func (m *SpotMeasurement) HasHeader() bool {
	return m.Status != ""
}

// ParseSpotMeasurementResponse extracts the measured value and its header from the
// response of a spot measurement query.
//
// The response must start with an optional header of three word characters
// (status, channel, data type), immediately followed by a value in the form
// `[+-]D{1,3}.D{3,6}E[+-]DD`. Characters after the value are ignored.
// The response is treated as ASCII: header characters are [0-9A-Za-z_] and digits are [0-9].
//
// It returns a *ParseError if the response doesn't match.
func ParseSpotMeasurementResponse(resp string) (*SpotMeasurement, error) {
	idx := spotMeasurementRegexp.FindStringSubmatchIndex(resp)
	if idx == nil {
		return nil, newParseError(resp, spotMeasurementPattern, nil)
	}

	m := &SpotMeasurement{
		Status:  submatch(resp, idx, spotStatusIdx),
		Channel: submatch(resp, idx, spotChannelIdx),
		DType:   submatch(resp, idx, spotDTypeIdx),
	}

	valueStr := submatch(resp, idx, spotValueIdx)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		// the pattern only admits well-formed floats
		panic(fmt.Sprintf("spot measurement value %q matched %q but is not a float: %s", valueStr, spotMeasurementPattern, err))
	}
	m.Value = value

	return m, nil
}

// submatch returns the text of group n, or an empty string if the group didn't participate.
func submatch(s string, idx []int, n int) string {
	start, end := idx[2*n], idx[2*n+1]
	if start < 0 {
		return ""
	}

	return strings.Clone(s[start:end])
}
