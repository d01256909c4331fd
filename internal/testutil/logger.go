package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/nba-data-client/internal/logging"
)

// NewBufferLogger returns a debug-level text logger built the way the
// binaries build theirs, writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "debug", Output: &buf}), &buf
}
