package receipt

import (
	"strings"
	"time"
)

// ISODateLayout is the layout used to print a payment date. Receipts carry no timezone, so the
// printed value is the wall-clock time shown on the receipt.
const ISODateLayout = "2006-01-02T15:04:05"

// paymentDateLayouts are tried in order and the first one that parses wins. Some dates are
// valid in more than one layout (e.g. 05/03/2024), and the order decides how they are read.
// Minutes and seconds may have one or two digits.
var paymentDateLayouts = []string{
	"2/1/2006, 3:4:5 PM", // DD/MM/YYYY
	"1/2/2006, 3:4:5 PM", // MM/DD/YYYY
	"2006/1/2, 3:4:5 PM", // YYYY/MM/DD
	"2-1-2006, 3:4:5 PM", // DD-MM-YYYY
}

// ParsePaymentDate parses the "Payment Date & Time" value of a receipt. It returns false when
// none of the supported layouts matches.
func ParsePaymentDate(value string) (time.Time, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" || hasZeroHour(value) {
		return time.Time{}, false
	}

	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// hasZeroHour reports whether the clock part of value has an hour of 0. The 12-hour clock runs
// from 1 to 12, but time.Parse accepts 0 as well.
func hasZeroHour(value string) bool {
	_, clock, found := strings.Cut(value, ", ")
	if !found {
		return false
	}
	hour, _, _ := strings.Cut(strings.TrimSpace(clock), ":")
	return hour != "" && strings.TrimLeft(hour, "0") == ""
}
