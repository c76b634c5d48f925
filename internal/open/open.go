package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// InEditor opens path in $EDITOR, falling back to less.
func InEditor(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	var cmd *exec.Cmd
	switch {
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", path)
	default:
		cmd = exec.Command(editor, path)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
