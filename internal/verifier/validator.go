package verifier

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

const (
	referencePrefix    = "FT"
	accountSuffixRegex = `^[0-9]{8}$`
)

// ValidateInputs reports whether the reference starts with "FT" and the account suffix is made
// of exactly 8 ASCII digits.
func ValidateInputs(reference, accountSuffix string) bool {
	return strings.HasPrefix(reference, referencePrefix) && govalidator.Matches(accountSuffix, accountSuffixRegex)
}
