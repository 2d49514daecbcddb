package debug_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segmentio/cityhash/internal/debug"
)

func TestFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	debug.SetOutput(buf)
	defer debug.SetOutput(os.Stderr)
	defer debug.Toggle(false)

	debug.Toggle(false)
	debug.Format("hidden %d", 1)
	assert.Zero(t, buf.Len())

	debug.Toggle(true)
	assert.True(t, debug.Enabled())
	debug.Format("hashed %d bytes", 42)
	assert.Contains(t, buf.String(), "cityhash: ")
	assert.Contains(t, buf.String(), "hashed 42 bytes\n")
}

func TestDo(t *testing.T) {
	defer debug.Toggle(false)

	calls := 0
	debug.Toggle(false)
	debug.Do(func() { calls++ })
	assert.Equal(t, 0, calls)

	debug.Toggle(true)
	debug.Do(func() { calls++ })
	assert.Equal(t, 1, calls)
}
