package testutil

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/manifest-info/internal/utils"
)

// NewTestLogger creates a JSON debug logger writing into the returned buffer
func NewTestLogger(t *testing.T) (*utils.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})

	return logger.WithComponent(t.Name()), &buf
}
