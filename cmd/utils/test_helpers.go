package utils

import (
	"os"
	"strings"
	"testing"
)

// ClearTestEnvironment blanks every variable of the process environment for the duration of the
// test, so config options only see what the test sets.
func ClearTestEnvironment(t *testing.T) {
	t.Helper()

	for _, env := range os.Environ() {
		key, _, found := strings.Cut(env, "=")
		if !found || key == "" {
			continue
		}
		t.Setenv(key, "")
	}
}
