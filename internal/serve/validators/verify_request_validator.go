package validators

import "strings"

const (
	referencePrefix      = "FT"
	accountSuffixPattern = `^[0-9]{8}$`
)

type VerifyRequest struct {
	Reference     string `json:"reference"`
	AccountSuffix string `json:"account_suffix"`
}

type VerifyRequestValidator struct {
	*Validator
}

func NewVerifyRequestValidator() *VerifyRequestValidator {
	return &VerifyRequestValidator{Validator: NewValidator()}
}

// ValidateVerifyRequest checks the request body and returns a trimmed copy of it, or nil when the
// body has errors.
func (rv *VerifyRequestValidator) ValidateVerifyRequest(reqBody *VerifyRequest) *VerifyRequest {
	rv.Check(reqBody != nil, "body", "request body is empty")
	if rv.HasErrors() {
		return nil
	}

	reference := strings.TrimSpace(reqBody.Reference)
	accountSuffix := strings.TrimSpace(reqBody.AccountSuffix)

	rv.CheckRequired(reference, "reference")
	rv.CheckRequired(accountSuffix, "account_suffix")
	if rv.HasErrors() {
		return nil
	}

	rv.CheckPrefix(reference, referencePrefix, "reference")
	rv.CheckMatches(accountSuffix, accountSuffixPattern, "account_suffix", "account_suffix must be exactly 8 digits")
	if rv.HasErrors() {
		return nil
	}

	return &VerifyRequest{
		Reference:     reference,
		AccountSuffix: accountSuffix,
	}
}
