package receipt

import "strings"

// Flatten joins the text of every page with a newline and collapses every run of whitespace
// into a single space, so the extraction patterns only need to care about the order of the
// words on the receipt.
func Flatten(pages []string) string {
	return strings.Join(strings.Fields(strings.Join(pages, "\n")), " ")
}
