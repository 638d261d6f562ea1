package files

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const defaultEditor = "vi"

// ResolveEditor picks the editor command from VISUAL, then EDITOR, then vi.
func ResolveEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			return value
		}
	}
	return defaultEditor
}

// Edit writes the initial text to a temp markdown file, opens it in the
// user's editor attached to the terminal, and returns the edited contents.
func Edit(ctx context.Context, editor, initial string) (string, error) {
	if editor == "" {
		editor = ResolveEditor()
	}

	temp, err := os.CreateTemp("", "brag-*.md")
	if err != nil {
		return "", err
	}
	path := temp.Name()
	defer os.Remove(path)

	if _, err := temp.WriteString(initial); err != nil {
		temp.Close()
		return "", err
	}
	if err := temp.Close(); err != nil {
		return "", err
	}

	// Editors like "code -w" arrive as a single env value with flags.
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{defaultEditor}
	}
	args := append(parts[1:], path)
	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", parts[0], err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
