package verifier

import (
	"encoding/json"
	"strings"

	"github.com/yohaboy/cbe-verifier/internal/receipt"
)

type ErrorKind string

const (
	ErrorKindInvalidInput      ErrorKind = "INVALID_INPUT"
	ErrorKindBankServerError   ErrorKind = "BANK_SERVER_ERROR"
	ErrorKindNetworkError      ErrorKind = "NETWORK_ERROR"
	ErrorKindProcessingError   ErrorKind = "PROCESSING_ERROR"
	ErrorKindMaxRetriesReached ErrorKind = "MAX_RETRIES_REACHED"
)

// Outcome is the metric label of a result with this kind.
func (k ErrorKind) Outcome() string {
	return strings.ToLower(string(k))
}

// Result is the outcome of a verification. Successful results carry the receipt fields, failed
// results carry the error kind and a human-readable message.
type Result struct {
	Success      bool
	Receipt      receipt.Fields
	ErrorKind    ErrorKind
	ErrorMessage string
}

func Succeeded(fields receipt.Fields) Result {
	return Result{Success: true, Receipt: fields}
}

func Failed(kind ErrorKind, message string) Result {
	return Result{ErrorKind: kind, ErrorMessage: message}
}

// Outcome is "success" or the lower-cased error kind.
func (r Result) Outcome() string {
	if r.Success {
		return "success"
	}
	return r.ErrorKind.Outcome()
}

type successJSON struct {
	Success         bool    `json:"success"`
	Payer           *string `json:"payer"`
	Receiver        *string `json:"receiver"`
	PayerAccount    *string `json:"payer_account"`
	ReceiverAccount *string `json:"receiver_account"`
	Amount          *string `json:"amount"`
	Reference       *string `json:"reference"`
	Date            *string `json:"date"`
	RawText         *string `json:"raw_text"`
}

type failureJSON struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	ErrorKind ErrorKind `json:"error_kind"`
}

// MarshalJSON renders missing receipt fields as null, the amount as a string with two decimal
// places and the date as YYYY-MM-DDTHH:MM:SS.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(failureJSON{
			Success:   false,
			Error:     r.ErrorMessage,
			ErrorKind: r.ErrorKind,
		})
	}

	fields := r.Receipt
	out := successJSON{
		Success:         true,
		Payer:           nullableString(fields.Payer),
		Receiver:        nullableString(fields.Receiver),
		PayerAccount:    nullableString(fields.PayerAccount),
		ReceiverAccount: nullableString(fields.ReceiverAccount),
		Reference:       nullableString(fields.Reference),
		RawText:         nullableString(fields.RawText),
	}
	if fields.Amount != nil {
		amount := fields.Amount.StringFixed(2)
		out.Amount = &amount
	}
	if fields.Date != nil {
		date := fields.Date.Format(receipt.ISODateLayout)
		out.Date = &date
	}

	return json.Marshal(out)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
