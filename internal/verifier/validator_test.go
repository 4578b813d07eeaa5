package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateInputs(t *testing.T) {
	testCases := []struct {
		name          string
		reference     string
		accountSuffix string
		want          bool
	}{
		{name: "valid", reference: "FT24012345ABC", accountSuffix: "12345678", want: true},
		{name: "reference is only the prefix", reference: "FT", accountSuffix: "12345678", want: true},
		{name: "empty reference", reference: "", accountSuffix: "12345678", want: false},
		{name: "lower-case prefix", reference: "ft24012345", accountSuffix: "12345678", want: false},
		{name: "prefix not at the start", reference: "XFT24012345", accountSuffix: "12345678", want: false},
		{name: "empty suffix", reference: "FT24012345", accountSuffix: "", want: false},
		{name: "suffix too short", reference: "FT24012345", accountSuffix: "1234567", want: false},
		{name: "suffix too long", reference: "FT24012345", accountSuffix: "123456789", want: false},
		{name: "suffix with letters", reference: "FT24012345", accountSuffix: "1234567a", want: false},
		{name: "suffix with a trailing newline", reference: "FT24012345", accountSuffix: "12345678\n", want: false},
		{name: "suffix with non-ASCII digits", reference: "FT24012345", accountSuffix: "١٢٣٤٥٦٧٨", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateInputs(tc.reference, tc.accountSuffix))
		})
	}
}
