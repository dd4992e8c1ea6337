package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSpotMeasurementResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *SpotMeasurement
	}{
		{
			name:     "with header",
			input:    "WAV+001.2345E+06",
			expected: &SpotMeasurement{Status: "W", Channel: "A", DType: "V", Value: 1234500.0},
		},
		{
			name:     "without header",
			input:    "-001.234E-02",
			expected: &SpotMeasurement{Value: -0.01234},
		},
		{
			name:     "current measurement",
			input:    "NAI+000.005E-06",
			expected: &SpotMeasurement{Status: "N", Channel: "A", DType: "I", Value: 5e-09},
		},
		{
			name:     "one integer digit and six fractional digits",
			input:    "NBV-1.123456E+00",
			expected: &SpotMeasurement{Status: "N", Channel: "B", DType: "V", Value: -1.123456},
		},
		{
			name:     "trailing characters are ignored",
			input:    "NAI+100.000E-03,NBI+200.000E-03\r\n",
			expected: &SpotMeasurement{Status: "N", Channel: "A", DType: "I", Value: 0.1},
		},
		{
			name:     "numeric header characters",
			input:    "012+001.000E+00",
			expected: &SpotMeasurement{Status: "0", Channel: "1", DType: "2", Value: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseSpotMeasurementResponse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, m)
			require.Equal(t, tt.expected.Status != "", m.HasHeader())
		})
	}
}

func TestParseSpotMeasurementResponse_Errors(t *testing.T) {
	inputs := []string{
		"hello",
		"",
		"WAV",
		"WAV001.234E+06",      // missing sign
		"WAV+001.23E+06",      // too few fractional digits
		"WAV+0001.234E+06",    // too many integer digits
		"WAV+001.234E+6",      // one exponent digit
		"WAV+001.234e+06",     // lowercase exponent
		"XWAV+001.234E+06",    // 4-character header
		" WAV+001.234E+06",    // leading space
		"WA+001.234E+06",      // 2-character header
		"WAV+001.2345678E+06", // too many fractional digits
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			m, err := ParseSpotMeasurementResponse(input)
			require.Nil(t, m)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrParse)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, input, parseErr.Input)
			require.Equal(t, spotMeasurementPattern, parseErr.Pattern)
		})
	}
}

func TestParseSpotMeasurementResponse_ErrorMessage(t *testing.T) {
	_, err := ParseSpotMeasurementResponse("hello")
	require.ErrorContains(t, err, `"hello" didn't match`)
}

func TestParseSpotMeasurementResponse_NoSharedMemory(t *testing.T) {
	resp := "WAV+001.2345E+06"
	m, err := ParseSpotMeasurementResponse(resp)
	require.NoError(t, err)

	for _, field := range []string{m.Status, m.Channel, m.DType} {
		require.Falsef(t, sharesMemory(resp, field), "field %q shares memory with the response", field)
	}
}
