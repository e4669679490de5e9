package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuietByDefault(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	New(&buf, false).Debug("cloned repository", "url", "https://example.com/r.git")

	assert.Empty(t, buf.String())
}

func TestNewDebugFlag(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	New(&buf, true).Debug("walk", "files", 3)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "files=3")
}

func TestNewDebugEnv(t *testing.T) {
	t.Setenv(DebugEnv, "1")
	var buf bytes.Buffer
	New(&buf, false).Debug("walk")

	assert.Contains(t, buf.String(), "msg=walk")
}
