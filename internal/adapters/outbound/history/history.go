package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

const historyFile = ".wcag/history/scores.json"

// FileHistory implements domain.ScoreHistory using JSON file storage.
type FileHistory struct {
	mu sync.Mutex
}

func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entries to the history under dir.
func (h *FileHistory) Save(dir string, entries ...domain.ScoreEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	existing, err := h.Load(dir)
	if err != nil {
		return err
	}

	existing = append(existing, entries...)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.ScoreEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
