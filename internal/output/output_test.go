package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/dateaug/internal/types"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewWriter(dir, "")

	examples := []types.Example{
		{Paragraph: "before 1999-12-01 after", Date: "1999-12-01"},
		{Paragraph: "before the First of May, 2001 after", Date: "the First of May, 2001"},
	}

	path, err := w.Write(3, examples)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "augmentation_paragraph_number_3.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), `[{"paragraph":"before 1999-12-01 after","date":"1999-12-01"}`))

	back, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, examples, back)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteIndentedAndEmpty(t *testing.T) {
	w := NewWriter(t.TempDir(), "  ")

	path, err := w.Write(1, nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	path, err = w.Write(1, []types.Example{{Paragraph: "p", Date: "d"}})
	require.NoError(t, err)
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"paragraph\": \"p\"")
}

func TestWriterDir(t *testing.T) {
	assert.Equal(t, ".", NewWriter("", "").Dir())

	dir := t.TempDir()
	w := NewWriter(dir, "")
	assert.Equal(t, dir, w.Dir())
	assert.Equal(t, filepath.Join(dir, FileName(3)), w.Path(3))
}
