package response

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/go-b1500/constants"
)

var nonChannelListRegexp = regexp.MustCompile(`[^,\d]`)

// ParseOutputSwitchResponse extracts the channels with closed output relays from
// the response of the `LRN? 0` query.
//
// Every character that is neither a digit nor a comma is removed, and the remaining
// text is split on commas. The channel numbers are returned in response order.
// Empty fields, e.g. from a `CL` response reporting no closed relay, are skipped.
// Fields too large for an int are skipped as well, since they can never equal a
// channel number.
//
// The response is treated as ASCII: only the digits 0-9 count as digits.
func ParseOutputSwitchResponse(resp string) []constants.ChNr {
	filtered := nonChannelListRegexp.ReplaceAllString(resp, "")

	fields := strings.Split(filtered, ",")
	channels := make([]constants.ChNr, 0, len(fields))
	for _, field := range fields {
		if field == "" {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil {
			// only range errors are possible after filtering
			continue
		}
		channels = append(channels, constants.ChNr(n))
	}

	return channels
}
