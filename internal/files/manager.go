package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maebert/bragmaster/internal/brag"
)

const filePermissions = 0o644

// Manager centralizes where the brag document lives on disk and moves it
// between text and the parsed tree. The core model never touches files.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the given document path. If path is
// empty, it falls back to BRAG_FILE or ~/.brag.md (see ResolvePath).
func NewManager(path string) (*Manager, error) {
	var err error
	if path == "" {
		path, err = ResolvePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Manager{path: abs}, nil
}

// Path returns the absolute location of the brag document.
func (m *Manager) Path() string {
	return m.path
}

// Load parses the document from disk. A missing file yields an empty
// document so the first update can bootstrap it.
func (m *Manager) Load(ctx context.Context) (*brag.Document, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &brag.Document{}, nil
		}
		return nil, fmt.Errorf("read brag file: %w", err)
	}

	doc, err := brag.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.path, err)
	}
	return doc, nil
}

// LoadText parses an arbitrary file into a document, used for update input.
func LoadText(path string) (*brag.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	doc, err := brag.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Save serializes the document and writes it atomically: a temp file in the
// same directory, synced, then renamed over the target.
func (m *Manager) Save(ctx context.Context, doc *brag.Document) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "brag-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := doc.Render()
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), m.path)
}
