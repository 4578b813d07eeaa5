package dependencyinjection

import "testing"

// ClearInstancesTestHelper empties the store so tests don't share instances.
func ClearInstancesTestHelper(t *testing.T) {
	t.Helper()

	dependenciesStore.Range(func(key, _ any) bool {
		dependenciesStore.Delete(key)
		return true
	})
}
