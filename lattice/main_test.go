package lattice

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Keep normalization warnings out of test output.
	// Set DEBUG_TESTS=1 to see full logs: DEBUG_TESTS=1 go test ./lattice/... -v
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.ErrorLevel)
	}
	os.Exit(m.Run())
}
