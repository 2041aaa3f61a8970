package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	Fail(&buf, "failed to read line: EOF")
	assert.Equal(t, "✖ failed to read line: EOF\n", buf.String())
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTTY(f))

	Fail(f, "x")
	b, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "✖ x\n", string(b))
}
