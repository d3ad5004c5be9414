package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/stockroom/internal/domain"
)

// Store is a file-based implementation of domain.InventoryStore. The file
// holds a JSON array of records.
type Store struct{}

// New creates a new file-based inventory store.
func New() *Store {
	return &Store{}
}

// Load reads the record array at path. Returns (nil, nil) if the file does
// not exist or is empty.
func (s *Store) Load(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Save overwrites path with records. The data is written to a uniquely
// named temp file in the same directory and renamed into place, so
// concurrent saves never share a temp file.
func (s *Store) Save(path string, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
