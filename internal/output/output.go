/*
Package output writes the generated examples of each paragraph to its own
JSON file.
*/
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shanehull/dateaug/internal/types"
)

const fileNameFormat = "augmentation_paragraph_number_%d.json"

// FileName returns the output file name for a 1-based paragraph index.
func FileName(index int) string {
	return fmt.Sprintf(fileNameFormat, index)
}

type Writer struct {
	dir    string
	indent string
}

// NewWriter returns a Writer rooted at dir. An empty indent writes compact JSON.
func NewWriter(dir, indent string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, indent: indent}
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) Path(index int) string {
	return filepath.Join(w.dir, FileName(index))
}

// Write replaces the file for paragraph index with examples. The file is
// written to a temporary name first and renamed into place.
func (w *Writer) Write(index int, examples []types.Example) (string, error) {
	if examples == nil {
		examples = []types.Example{}
	}

	var (
		data []byte
		err  error
	)
	if w.indent != "" {
		data, err = json.MarshalIndent(examples, "", w.indent)
	} else {
		data, err = json.Marshal(examples)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal examples for paragraph %d: %w", index, err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}

	dest := w.Path(index)
	tmp, err := os.CreateTemp(w.dir, ".tmp-"+FileName(index)+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", dest, err)
	}

	return dest, nil
}

// Read loads a previously written example file.
func Read(path string) ([]types.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var examples []types.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return examples, nil
}
