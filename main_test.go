package portcheck_test

import (
	"os"
	"testing"

	"github.com/giantswarm/portcheck/internal/porttest"
)

func TestMain(m *testing.M) {
	porttest.SetupTestLogging()
	os.Exit(m.Run())
}
