package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, native func(string) error, hasNative, hasOSC52 bool) *bytes.Buffer {
	t.Helper()
	oldWrite, oldOK, oldTerm, oldOSC := writeNative, nativeOK, terminal, osc52Supported
	t.Cleanup(func() {
		writeNative, nativeOK, terminal, osc52Supported = oldWrite, oldOK, oldTerm, oldOSC
	})

	var buf bytes.Buffer
	writeNative = native
	nativeOK = func() bool { return hasNative }
	terminal = &buf
	osc52Supported = func() bool { return hasOSC52 }
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	return &buf
}

func TestCopyUsesNativeClipboard(t *testing.T) {
	var got string
	buf := stub(t, func(s string) error { got = s; return nil }, true, true)

	require.NoError(t, Copy("Germany"))
	assert.Equal(t, "Germany", got)
	assert.Zero(t, buf.Len())
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	buf := stub(t, func(string) error { return errors.New("no xclip") }, true, true)

	require.NoError(t, Copy("Berlin"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("Berlin")))
}

func TestCopyWithoutAnyClipboard(t *testing.T) {
	buf := stub(t, nil, false, false)

	assert.Error(t, Copy("London"))
	assert.Zero(t, buf.Len())
}
