package vmrun

import (
	"fmt"
	"strings"
)

// GUIMode selects whether vmrun start opens the VM console window.
type GUIMode int

const (
	// GUIModeNoGUI starts the VM headless ("nogui").
	GUIModeNoGUI GUIMode = iota
	// GUIModeGUI starts the VM with its console window ("gui").
	GUIModeGUI
)

var guiTokens = map[GUIMode]string{
	GUIModeNoGUI: "nogui",
	GUIModeGUI:   "gui",
}

// CommandLineValue returns the token vmrun expects for m. Values outside the
// defined constants return ErrInvalidGUIMode.
func (m GUIMode) CommandLineValue() (string, error) {
	token, ok := guiTokens[m]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidGUIMode, int(m))
	}
	return token, nil
}

// String returns the command line token, or a Go-syntax placeholder for
// invalid values.
func (m GUIMode) String() string {
	if token, ok := guiTokens[m]; ok {
		return token
	}
	return fmt.Sprintf("GUIMode(%d)", int(m))
}

// ParseGUIMode parses "gui" or "nogui", ignoring case and surrounding space.
func ParseGUIMode(s string) (GUIMode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for m, token := range guiTokens {
		if token == want {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want gui or nogui)", ErrInvalidGUIMode, s)
}
