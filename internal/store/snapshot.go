// Package store persists the portfolio snapshot: the raw ledger plus
// prices, targets, goal and budgets, as one JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

func init() {
	// Snapshot numerics are bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Goals holds the optional target equity.
type Goals struct {
	Equity *decimal.Decimal `json:"equity"`
}

// Snapshot is the persisted state. Cash is a derived cache and is refreshed
// from the ledger on every save; everything else is caller-owned input.
type Snapshot struct {
	Cash         decimal.Decimal            `json:"cash"`
	Transactions []model.Transaction        `json:"transactions"`
	Prices       map[string]decimal.Decimal `json:"prices"`
	Goals        Goals                      `json:"goals"`
	Budgets      map[string]decimal.Decimal `json:"budgets"`
	Targets      map[string]decimal.Decimal `json:"targets"`
}

// New returns an empty snapshot with allocated maps.
func New() *Snapshot {
	return &Snapshot{
		Transactions: []model.Transaction{},
		Prices:       make(map[string]decimal.Decimal),
		Budgets:      make(map[string]decimal.Decimal),
		Targets:      make(map[string]decimal.Decimal),
	}
}

// Read decodes a snapshot. Any subset of top-level keys may be present;
// missing keys default to empty values. Malformed input is rejected whole.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	s.normalize()
	return &s, nil
}

// Write encodes a snapshot as indented JSON.
func Write(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return s, nil
}

// Save writes a snapshot file atomically: a temp file in the same directory
// is renamed over the target, so a failed write never leaves a half-applied
// snapshot behind.
func Save(path string, s *Snapshot) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// normalize fills in defaults for absent keys and canonicalizes asset keys.
func (s *Snapshot) normalize() {
	if s.Transactions == nil {
		s.Transactions = []model.Transaction{}
	}
	s.Prices = normalizeAssetKeys(s.Prices)
	s.Targets = normalizeAssetKeys(s.Targets)
	if s.Budgets == nil {
		s.Budgets = make(map[string]decimal.Decimal)
	}
}

func normalizeAssetKeys(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for asset, v := range m {
		out[model.NormalizeAsset(asset)] = v
	}
	return out
}
