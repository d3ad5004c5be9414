package application

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abdidvp/stockroom/internal/domain"
)

// InventoryService owns one inventory and the file it persists to.
// All methods are safe for concurrent use; calls are serialized.
// Products handed out are copies, never the stored instances.
type InventoryService struct {
	mu      sync.Mutex
	saveMu  sync.Mutex // held from snapshot through history append
	inv     *domain.Inventory
	cfg     domain.Config
	store   domain.InventoryStore
	history domain.SaveHistory
	git     domain.GitInfo
	logger  *zap.Logger
	now     func() time.Time
}

// ServiceOption configures an InventoryService.
type ServiceOption func(*InventoryService)

// WithHistory records every save through h, stamped with the commit of the
// data directory when git is non-nil.
func WithHistory(h domain.SaveHistory, git domain.GitInfo) ServiceOption {
	return func(s *InventoryService) {
		s.history = h
		s.git = git
	}
}

func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *InventoryService) { s.logger = l }
}

// WithClock sets the time source for expiry sweeps and history timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *InventoryService) { s.now = now }
}

func NewInventoryService(cfg domain.Config, store domain.InventoryStore, opts ...ServiceOption) *InventoryService {
	s := &InventoryService{
		cfg:    cfg,
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.inv = domain.NewInventory(domain.WithClock(s.now))
	return s
}

// Path is the inventory file this service loads from and saves to.
func (s *InventoryService) Path() string { return s.cfg.InventoryFile }

// Open loads the configured inventory file. With bestEffort, a file that
// cannot be read or parsed is logged and the inventory starts empty.
func (s *InventoryService) Open(bestEffort bool) error {
	err := s.LoadFromFile(s.cfg.InventoryFile)
	if err == nil {
		return nil
	}
	if !bestEffort {
		return err
	}
	s.logger.Warn("starting with empty inventory",
		zap.String("file", s.cfg.InventoryFile), zap.Error(err))
	return nil
}

// LoadFromFile adds every product stored at path. A duplicate ID fails the
// whole load and nothing is added; unknown product types are skipped.
func (s *InventoryService) LoadFromFile(path string) error {
	records, err := s.store.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skipped, err := s.inv.LoadRecords(records)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if skipped > 0 {
		s.logger.Warn("skipped records with unknown type",
			zap.String("file", path), zap.Int("skipped", skipped))
	}
	s.logger.Debug("inventory loaded",
		zap.String("file", path), zap.Int("products", s.inv.Len()))
	return nil
}

// SaveToFile overwrites path with every product.
func (s *InventoryService) SaveToFile(path string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	_, err := s.saveFile(path)
	return err
}

// saveFile writes one snapshot to path and returns the history entry that
// describes that snapshot. Callers hold saveMu.
func (s *InventoryService) saveFile(path string) (domain.SaveEntry, error) {
	s.mu.Lock()
	records := s.inv.Records()
	entry := domain.SaveEntry{
		Timestamp:    s.now().Format(time.RFC3339),
		File:         path,
		ProductCount: len(records),
		TotalValue:   s.inv.TotalValue().StringFixed(2),
	}
	s.mu.Unlock()

	if err := s.store.Save(path, records); err != nil {
		return domain.SaveEntry{}, fmt.Errorf("saving %s: %w", path, err)
	}
	s.logger.Debug("inventory saved", zap.String("file", path), zap.Int("products", len(records)))
	return entry, nil
}

// Save writes the configured inventory file and appends a history entry.
// History failures are logged, not returned.
func (s *InventoryService) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	entry, err := s.saveFile(s.cfg.InventoryFile)
	if err != nil {
		return err
	}
	if s.history == nil || !s.cfg.ShouldRecordHistory() {
		return nil
	}

	if dir := filepath.Dir(s.cfg.InventoryFile); s.git != nil && s.git.IsGitRepo(dir) {
		if hash, err := s.git.CommitHash(dir); err == nil {
			entry.CommitHash = hash
		}
	}
	if err := s.history.Append(s.cfg.HistoryFile, entry); err != nil {
		s.logger.Warn("recording save history failed",
			zap.String("file", s.cfg.HistoryFile), zap.Error(err))
	}
	return nil
}

// History returns every recorded save, oldest first.
func (s *InventoryService) History() ([]domain.SaveEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.history.Load(s.cfg.HistoryFile)
}

func (s *InventoryService) Add(p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.inv.Add(p); err != nil {
		return err
	}
	s.logger.Info("product added", zap.String("id", p.ID()), zap.String("kind", string(p.Kind())))
	return nil
}

func (s *InventoryService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.inv.Remove(id); err != nil {
		return err
	}
	s.logger.Info("product removed", zap.String("id", id))
	return nil
}

func (s *InventoryService) Sell(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.inv.Sell(id, quantity); err != nil {
		return err
	}
	s.logger.Info("product sold", zap.String("id", id), zap.Int("quantity", quantity))
	return nil
}

func (s *InventoryService) Restock(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.inv.Restock(id, quantity); err != nil {
		return err
	}
	s.logger.Info("product restocked", zap.String("id", id), zap.Int("quantity", quantity))
	return nil
}

func (s *InventoryService) Get(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.inv.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	return *p, nil
}

func (s *InventoryService) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.inv.List())
}

func (s *InventoryService) SearchByName(sub string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.inv.SearchByName(sub))
}

func (s *InventoryService) SearchByType(tag string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.inv.SearchByType(tag))
}

func (s *InventoryService) TotalValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.TotalValue()
}

func (s *InventoryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Len()
}

// RemoveExpired sweeps expired groceries and returns what was removed.
func (s *InventoryService) RemoveExpired() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.inv.RemoveExpired()
	for _, p := range removed {
		s.logger.Info("expired product removed", zap.String("id", p.ID()), zap.String("name", p.Name))
	}
	return snapshot(removed)
}

func snapshot(products []*domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	return out
}
