/*
Package dataset loads the contract paragraphs to augment from JSON, YAML or
HTML files, or falls back to the built-in lease paragraphs.
*/
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shanehull/dateaug/internal/dateformat"
	"github.com/shanehull/dateaug/internal/types"
)

// Load reads paragraphs from path, choosing the decoder by file extension.
func Load(path string) ([]types.Paragraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	var paragraphs []types.Paragraph

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.NewDecoder(f).Decode(&paragraphs); err != nil {
			return nil, fmt.Errorf("failed to decode JSON dataset %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&paragraphs); err != nil {
			return nil, fmt.Errorf("failed to decode YAML dataset %s: %w", path, err)
		}
	case ".html", ".htm":
		paragraphs, err = ParseHTML(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML dataset %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q", ext)
	}

	for i, p := range paragraphs {
		if err := check(p); err != nil {
			return nil, fmt.Errorf("dataset %s record %d: %w", path, i+1, err)
		}
	}

	return paragraphs, nil
}

// check validates the offsets of p and that they cover a parseable date.
func check(p types.Paragraph) error {
	spans, err := p.Split()
	if err != nil {
		return err
	}
	if _, err := dateformat.Parse(spans.Date); err != nil {
		return err
	}
	return nil
}
