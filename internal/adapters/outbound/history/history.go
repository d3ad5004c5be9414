package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/abdidvp/stockroom/internal/domain"
)

// FileHistory implements domain.SaveHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Append(path string, entry domain.SaveEntry) error {
	entries, err := h.Load(path)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (h *FileHistory) Load(path string) ([]domain.SaveEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SaveEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
