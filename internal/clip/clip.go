// Package clip copies text to the user's clipboard, falling back to an
// OSC 52 escape sequence when no system clipboard is reachable (headless
// hosts, SSH sessions).
package clip

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method reports which copy path served a request.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// Copy places text on the clipboard. The system clipboard is tried first;
// on failure the legacy path emits an OSC 52 sequence so the terminal
// itself performs the copy.
func Copy(text string) (Method, error) {
	if err := clipboard.WriteAll(text); err == nil {
		return MethodSystem, nil
	}

	if _, err := osc52.New(text).WriteTo(os.Stderr); err != nil {
		return "", fmt.Errorf("clipboard copy failed: %w", err)
	}
	return MethodOSC52, nil
}
