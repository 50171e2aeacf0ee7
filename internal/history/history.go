/*
Package history keeps track of the paragraphs that were already augmented so
that an interrupted run can be resumed.
*/
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shanehull/dateaug/internal/types"
)

const historyFileName = ".dateaug_history.json"

type Entry struct {
	Output      string    `json:"output"`
	Examples    int       `json:"examples"`
	RunID       string    `json:"run_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type History struct {
	LastRunID  string           `json:"last_run_id"`
	Paragraphs map[string]Entry `json:"paragraphs"`
}

type Manager struct {
	history         History
	mutex           sync.Mutex
	historyFilePath string
	runID           string
	logger          *zap.Logger
}

// NewManager loads the history kept in dir and starts a new run.
func NewManager(dir string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory %s: %w", dir, err)
	}

	m := &Manager{
		historyFilePath: filepath.Join(dir, historyFileName),
		runID:           uuid.NewString(),
		logger:          logger,
	}

	m.loadHistory()
	return m, nil
}

// Fingerprint identifies a paragraph by its text and date offsets.
func Fingerprint(p types.Paragraph) string {
	h := sha256.New()
	h.Write([]byte(p.Text))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(p.DateStart) + ":" + strconv.Itoa(p.DateEnd)))
	return hex.EncodeToString(h.Sum(nil))
}

func (m *Manager) loadHistory() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.history = History{Paragraphs: make(map[string]Entry)}

	data, err := os.ReadFile(m.historyFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Info("history file not found, starting fresh", zap.String("path", m.historyFilePath))
			return
		}
		m.logger.Warn("failed to read history file, starting fresh", zap.String("path", m.historyFilePath), zap.Error(err))
		return
	}

	var loaded History
	if err := json.Unmarshal(data, &loaded); err != nil {
		m.logger.Warn("failed to decode history file, starting fresh", zap.String("path", m.historyFilePath), zap.Error(err))
		return
	}
	if loaded.Paragraphs == nil {
		loaded.Paragraphs = make(map[string]Entry)
	}

	m.history = loaded
	m.logger.Info("loaded history",
		zap.Int("paragraphs", len(loaded.Paragraphs)),
		zap.String("last_run_id", loaded.LastRunID))
}

func (m *Manager) saveHistory() error {
	m.history.LastRunID = m.runID

	data, err := json.MarshalIndent(m.history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(m.historyFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", m.historyFilePath, err)
	}
	return nil
}

// Completed reports whether p was augmented before into output and that
// file is still on disk. An entry pointing at another file does not count,
// since output files are named by position in the dataset.
func (m *Manager) Completed(p types.Paragraph, output string) (Entry, bool) {
	m.mutex.Lock()
	entry, ok := m.history.Paragraphs[Fingerprint(p)]
	m.mutex.Unlock()

	if !ok || filepath.Clean(entry.Output) != filepath.Clean(output) {
		return Entry{}, false
	}
	if _, err := os.Stat(entry.Output); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// Record stores a finished paragraph and persists the history. Entries of
// other paragraphs that pointed at outputPath are dropped, their file was
// just overwritten.
func (m *Manager) Record(p types.Paragraph, outputPath string, examples int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, entry := range m.history.Paragraphs {
		if filepath.Clean(entry.Output) == filepath.Clean(outputPath) {
			delete(m.history.Paragraphs, key)
		}
	}

	m.history.Paragraphs[Fingerprint(p)] = Entry{
		Output:      outputPath,
		Examples:    examples,
		RunID:       m.runID,
		CompletedAt: time.Now().UTC(),
	}
	return m.saveHistory()
}

func (m *Manager) RunID() string {
	return m.runID
}

func (m *Manager) HistoryFilePath() string {
	return m.historyFilePath
}
