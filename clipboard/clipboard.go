// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/siftly-grid/logging"
)

var (
	writeNative = sysclip.WriteAll
	nativeOK    = func() bool { return !sysclip.Unsupported }
	terminal    io.Writer = os.Stdout
)

// Copy writes text with the platform clipboard tool and falls back to an
// OSC52 escape on the terminal when no tool is available.
func Copy(text string) error {
	if nativeOK() {
		err := writeNative(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: native copy failed: %v", err)
	}
	return copyOSC52(terminal, text)
}
