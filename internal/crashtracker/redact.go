package crashtracker

import (
	"regexp"

	"github.com/getsentry/sentry-go"
)

const redactedAccountSuffix = "********"

var (
	wordRegex          = regexp.MustCompile(`[A-Za-z0-9]+`)
	accountSuffixRegex = regexp.MustCompile(`^[0-9]{8}$`)
)

// RedactAccountSuffixes masks the account suffixes found in s: every alphanumeric word made of
// exactly 8 digits.
func RedactAccountSuffixes(s string) string {
	return wordRegex.ReplaceAllStringFunc(s, func(word string) string {
		if accountSuffixRegex.MatchString(word) {
			return redactedAccountSuffix
		}
		return word
	})
}

// redactEvent is used as the sentry BeforeSend hook.
func redactEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil {
		return nil
	}

	event.Message = RedactAccountSuffixes(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = RedactAccountSuffixes(event.Exception[i].Value)
	}
	if event.Request != nil {
		event.Request.URL = RedactAccountSuffixes(event.Request.URL)
		event.Request.QueryString = RedactAccountSuffixes(event.Request.QueryString)
		event.Request.Data = RedactAccountSuffixes(event.Request.Data)
	}

	return event
}
