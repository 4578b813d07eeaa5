// Package receipt turns the text of a CBE payment receipt into typed fields.
package receipt

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	rePayer    = regexp.MustCompile(`(?i)Payer\s*:?\s*(.*?)\s+Account`)
	reReceiver = regexp.MustCompile(`(?i)Receiver\s*:?\s*(.*?)\s+Account`)
	// reMaskedAccount matches accounts like "1****1234" or "1***1234". The first match on the
	// receipt is the payer account and the second one is the receiver account.
	reMaskedAccount = regexp.MustCompile(`(?i)Account\s*:?\s*([A-Z0-9]?\*{3,4}\d{4})`)
	reAmount        = regexp.MustCompile(`(?i)Transferred Amount\s*:?\s*([\d,]+\.\d{2})\s*ETB`)
	reReference     = regexp.MustCompile(`(?i)Reference No\.?\s*\(VAT Invoice No\)\s*:?\s*([A-Z0-9]+)`)
	rePaymentDate   = regexp.MustCompile(`(?i)Payment Date & Time\s*:?\s*([\d/,: -]+[AP]M)`)
)

// Fields holds the values extracted from a receipt. Empty strings and nil pointers mean the
// value could not be found.
type Fields struct {
	Payer           string
	PayerAccount    string
	Receiver        string
	ReceiverAccount string
	Amount          *decimal.Decimal
	Date            *time.Time
	Reference       string
	// RawText is the flattened receipt text. It's only set when at least one field is missing.
	RawText string
}

// IsComplete reports whether every field was extracted.
func (f Fields) IsComplete() bool {
	return f.Payer != "" &&
		f.PayerAccount != "" &&
		f.Receiver != "" &&
		f.ReceiverAccount != "" &&
		f.Amount != nil &&
		f.Date != nil &&
		f.Reference != ""
}

// ExtractFields applies the receipt patterns to the flattened text. A missing field is never an
// error: it's left empty and the text is attached to the result to help debugging.
func ExtractFields(text string) Fields {
	fields := Fields{
		Payer:     firstSubmatch(rePayer, text),
		Receiver:  firstSubmatch(reReceiver, text),
		Reference: firstSubmatch(reReference, text),
		Amount:    extractAmount(text),
		Date:      extractPaymentDate(text),
	}

	accounts := reMaskedAccount.FindAllStringSubmatch(text, 2)
	if len(accounts) > 0 {
		fields.PayerAccount = strings.TrimSpace(accounts[0][1])
	}
	if len(accounts) > 1 {
		fields.ReceiverAccount = strings.TrimSpace(accounts[1][1])
	}

	if !fields.IsComplete() {
		fields.RawText = text
	}

	return fields
}

func extractAmount(text string) *decimal.Decimal {
	amountStr := firstSubmatch(reAmount, text)
	if amountStr == "" {
		return nil
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", ""))
	if err != nil {
		return nil
	}
	amount = amount.Round(2)

	return &amount
}

func extractPaymentDate(text string) *time.Time {
	date, ok := ParsePaymentDate(firstSubmatch(rePaymentDate, text))
	if !ok {
		return nil
	}
	return &date
}

// firstSubmatch returns the trimmed first capture group of the leftmost match, or an empty
// string when the pattern doesn't match.
func firstSubmatch(re *regexp.Regexp, text string) string {
	matches := re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimSpace(matches[1])
}
