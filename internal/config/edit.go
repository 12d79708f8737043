package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/xdg/vmctl/internal/clog"
)

// EditConfig opens the configuration file at path (DefaultPath() if empty)
// in the user's editor, writing the default file first if none exists. The
// editor is $VISUAL, then $EDITOR, then vi; it may include arguments. A file
// that fails to load after editing is logged as a warning and returned as
// the error so the caller can report it.
func EditConfig(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := WriteDefaultConfig(path); err != nil {
		return fmt.Errorf("create default config: %w", err)
	}

	if err := openEditor(path); err != nil {
		return err
	}

	if _, err := LoadConfig(path); err != nil {
		clog.Warn("config: %s has errors after edit: %v", path, err)
		return err
	}
	return nil
}

// editorCommand returns the editor program and its arguments.
func editorCommand() (string, []string) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return "vi", nil
}

func openEditor(path string) error {
	editor, args := editorCommand()
	cmd := exec.Command(editor, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor %q exited with status %d", editor, exitErr.ExitCode())
		}
		return fmt.Errorf("run editor %q: %w", editor, err)
	}
	return nil
}
