// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
)

// SkipNetworkTests skips the test if RUN_NETWORK_TESTS is not set.
// Use this for tests that talk to skills.sh or GitHub.
//
// Run network tests with: RUN_NETWORK_TESTS=1 go test ./...
func SkipNetworkTests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_NETWORK_TESTS") == "" {
		t.Skip("Skipping network test (set RUN_NETWORK_TESTS=1 to run)")
	}
}
