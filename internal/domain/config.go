package domain

import (
	"fmt"
	"path/filepath"
)

// Config holds settings loaded from .stockroom.yaml and STOCKROOM_* variables.
type Config struct {
	InventoryFile string `yaml:"inventory_file" json:"inventory_file" envconfig:"INVENTORY_FILE"`
	HistoryFile   string `yaml:"history_file"   json:"history_file"   envconfig:"HISTORY_FILE"`
	RecordHistory *bool  `yaml:"record_history" json:"record_history" envconfig:"RECORD_HISTORY"`
	SweepOnStart  *bool  `yaml:"sweep_on_start" json:"sweep_on_start" envconfig:"SWEEP_ON_START"`
	LogLevel      string `yaml:"log_level"      json:"log_level"      envconfig:"LOG_LEVEL"`
	LogEncoding   string `yaml:"log_encoding"   json:"log_encoding"   envconfig:"LOG_ENCODING"`
}

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogEncodings enumerates accepted log_encoding values.
var ValidLogEncodings = []string{"console", "json"}

// DefaultConfig keeps inventory.json in the working directory and sweeps
// expired groceries when the shell starts.
func DefaultConfig() Config {
	return Config{
		InventoryFile: "inventory.json",
		HistoryFile:   filepath.Join(".stockroom", "history.json"),
		RecordHistory: boolPtr(true),
		SweepOnStart:  boolPtr(true),
		LogLevel:      "warn",
		LogEncoding:   "console",
	}
}

// Merge overlays the non-zero fields of override on c.
func (c Config) Merge(override Config) Config {
	if override.InventoryFile != "" {
		c.InventoryFile = override.InventoryFile
	}
	if override.HistoryFile != "" {
		c.HistoryFile = override.HistoryFile
	}
	if override.RecordHistory != nil {
		c.RecordHistory = override.RecordHistory
	}
	if override.SweepOnStart != nil {
		c.SweepOnStart = override.SweepOnStart
	}
	if override.LogLevel != "" {
		c.LogLevel = override.LogLevel
	}
	if override.LogEncoding != "" {
		c.LogEncoding = override.LogEncoding
	}
	return c
}

func (c Config) Validate() error {
	if c.InventoryFile == "" {
		return fmt.Errorf("inventory_file must not be empty")
	}
	if c.LogLevel != "" && !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.LogEncoding != "" && !contains(ValidLogEncodings, c.LogEncoding) {
		return fmt.Errorf("unknown log_encoding %q (valid: console, json)", c.LogEncoding)
	}
	return nil
}

func (c Config) ShouldRecordHistory() bool { return c.RecordHistory == nil || *c.RecordHistory }

func (c Config) ShouldSweepOnStart() bool { return c.SweepOnStart == nil || *c.SweepOnStart }

func boolPtr(b bool) *bool { return &b }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
