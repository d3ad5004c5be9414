package domain

// InventoryStore reads and writes the persisted record array.
type InventoryStore interface {
	// Load returns the records stored at path. A missing file yields no
	// records and no error.
	Load(path string) ([]Record, error)
	Save(path string, records []Record) error
}

// SaveHistory keeps an append-only log of inventory saves.
type SaveHistory interface {
	Append(path string, entry SaveEntry) error
	Load(path string) ([]SaveEntry, error)
}

// GitInfo reports version-control state for a directory.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

// SaveEntry records one successful save of the inventory file.
type SaveEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	File         string `json:"file"`
	ProductCount int    `json:"product_count"`
	TotalValue   string `json:"total_value"`
}
