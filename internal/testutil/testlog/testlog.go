// Package testlog bootstraps logging for tests.
package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/dcnet-server/dcnet/internal/logging"
)

// Start configures test-profile logging and records the running test name.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
