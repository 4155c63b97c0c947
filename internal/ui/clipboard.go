package ui

import (
	"os"

	"github.com/muesli/termenv"
)

// CopyToClipboard places text on the system clipboard via the OSC52
// escape sequence. Best effort: terminals without OSC52 support ignore
// the sequence, and callers treat a miss as harmless.
func CopyToClipboard(text string) {
	termenv.NewOutput(os.Stdout).Copy(text)
}
