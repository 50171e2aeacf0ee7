package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/dateaug/internal/types"
)

var paragraph = types.Paragraph{Text: "due on May 2, 2004 each year", DateStart: 7, DateEnd: 18}

func TestRecordAndReload(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "augmentation_paragraph_number_1.json")
	require.NoError(t, os.WriteFile(out, []byte("[]"), 0o644))

	m, err := NewManager(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, historyFileName), m.HistoryFilePath())
	_, err = uuid.Parse(m.RunID())
	require.NoError(t, err)

	_, done := m.Completed(paragraph, out)
	assert.False(t, done)

	require.NoError(t, m.Record(paragraph, out, 200))

	reloaded, err := NewManager(dir, nil)
	require.NoError(t, err)
	assert.NotEqual(t, m.RunID(), reloaded.RunID())

	entry, done := reloaded.Completed(paragraph, out)
	require.True(t, done)
	assert.Equal(t, 200, entry.Examples)
	assert.Equal(t, m.RunID(), entry.RunID)
}

func TestCompletedRequiresOutputFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, nil)
	require.NoError(t, err)

	gone := filepath.Join(dir, "gone.json")
	require.NoError(t, m.Record(paragraph, gone, 10))

	_, done := m.Completed(paragraph, gone)
	assert.False(t, done)
}

func TestCompletedRequiresSameOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "augmentation_paragraph_number_1.json")
	second := filepath.Join(dir, "augmentation_paragraph_number_2.json")
	require.NoError(t, os.WriteFile(first, []byte("[]"), 0o644))

	m, err := NewManager(dir, nil)
	require.NoError(t, err)
	require.NoError(t, m.Record(paragraph, first, 5))

	_, done := m.Completed(paragraph, second)
	assert.False(t, done)
	_, done = m.Completed(paragraph, dir+"/./augmentation_paragraph_number_1.json")
	assert.True(t, done)
}

func TestRecordDropsOverwrittenEntries(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "augmentation_paragraph_number_1.json")
	require.NoError(t, os.WriteFile(out, []byte("[]"), 0o644))

	other := types.Paragraph{Text: "Closing shall occur on June 30, 2010.", DateStart: 23, DateEnd: 36}

	m, err := NewManager(dir, nil)
	require.NoError(t, err)
	require.NoError(t, m.Record(paragraph, out, 5))
	require.NoError(t, m.Record(other, out, 7))

	_, done := m.Completed(paragraph, out)
	assert.False(t, done)
	entry, done := m.Completed(other, out)
	require.True(t, done)
	assert.Equal(t, 7, entry.Examples)
}

func TestCorruptHistoryStartsFresh(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, historyFileName), []byte("{not json"), 0o644))

	m, err := NewManager(dir, nil)
	require.NoError(t, err)

	_, done := m.Completed(paragraph, filepath.Join(dir, "x.json"))
	assert.False(t, done)
	require.NoError(t, m.Record(paragraph, filepath.Join(dir, "x.json"), 1))
}

func TestFingerprint(t *testing.T) {
	other := paragraph
	other.DateEnd++

	assert.Equal(t, Fingerprint(paragraph), Fingerprint(paragraph))
	assert.NotEqual(t, Fingerprint(paragraph), Fingerprint(other))
	assert.Len(t, Fingerprint(paragraph), 64)
}
