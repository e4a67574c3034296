package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/ledger"
	"github.com/folio-dev/folio/internal/model"
)

// Service owns the snapshot file and applies whole mutations to it: every
// method loads the current snapshot, changes it, and saves it back. Derived
// state is never kept between calls; the cached cash field is refreshed from
// a full ledger replay on each save.
type Service struct {
	path string
}

// NewService creates a Service for a snapshot file path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Path returns the snapshot file path.
func (s *Service) Path() string { return s.path }

// Load reads the current snapshot.
func (s *Service) Load() (*Snapshot, error) {
	return Load(s.path)
}

// Init writes an empty snapshot. Fails if one already exists.
func (s *Service) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("snapshot %s already exists", s.path)
	}
	return Save(s.path, New())
}

func (s *Service) update(mutate func(*Snapshot) error) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	if err := mutate(snap); err != nil {
		return err
	}
	snap.Cash = ledger.Cash(snap.Transactions)
	return Save(s.path, snap)
}

// Append validates a transaction and appends it to the ledger.
func (s *Service) Append(tx model.Transaction) error {
	if err := checkValid(tx); err != nil {
		return err
	}
	return s.update(func(snap *Snapshot) error {
		for _, existing := range snap.Transactions {
			if existing.ID == tx.ID {
				return fmt.Errorf("transaction %s already exists", tx.ID)
			}
		}
		snap.Transactions = append(snap.Transactions, tx)
		return nil
	})
}

// Replace swaps the transaction with the same ID for the given record.
func (s *Service) Replace(tx model.Transaction) error {
	if err := checkValid(tx); err != nil {
		return err
	}
	return s.update(func(snap *Snapshot) error {
		for i, existing := range snap.Transactions {
			if existing.ID == tx.ID {
				snap.Transactions[i] = tx
				return nil
			}
		}
		return fmt.Errorf("transaction %s not found", tx.ID)
	})
}

// Remove deletes a transaction by ID.
func (s *Service) Remove(id string) error {
	return s.update(func(snap *Snapshot) error {
		for i, existing := range snap.Transactions {
			if existing.ID == id {
				snap.Transactions = append(snap.Transactions[:i], snap.Transactions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("transaction %s not found", id)
	})
}

// SetPrice upserts the latest unit price for an asset.
func (s *Service) SetPrice(asset string, price decimal.Decimal) error {
	asset = model.NormalizeAsset(asset)
	if asset == "" {
		return fmt.Errorf("asset is required")
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be greater than zero")
	}
	return s.update(func(snap *Snapshot) error {
		snap.Prices[asset] = price
		return nil
	})
}

// RemovePrice deletes an asset's price.
func (s *Service) RemovePrice(asset string) error {
	return s.update(func(snap *Snapshot) error {
		delete(snap.Prices, model.NormalizeAsset(asset))
		return nil
	})
}

// SetTarget upserts a target allocation percentage for an asset.
func (s *Service) SetTarget(asset string, pct decimal.Decimal) error {
	asset = model.NormalizeAsset(asset)
	if asset == "" {
		return fmt.Errorf("asset is required")
	}
	if !pct.IsPositive() {
		return fmt.Errorf("target percentage must be greater than zero")
	}
	return s.update(func(snap *Snapshot) error {
		snap.Targets[asset] = pct
		return nil
	})
}

// RemoveTarget deletes an asset's target allocation.
func (s *Service) RemoveTarget(asset string) error {
	return s.update(func(snap *Snapshot) error {
		delete(snap.Targets, model.NormalizeAsset(asset))
		return nil
	})
}

// SetGoal sets the target equity goal.
func (s *Service) SetGoal(equity decimal.Decimal) error {
	if !equity.IsPositive() {
		return fmt.Errorf("goal equity must be greater than zero")
	}
	return s.update(func(snap *Snapshot) error {
		snap.Goals.Equity = &equity
		return nil
	})
}

// ClearGoal removes the target equity goal.
func (s *Service) ClearGoal() error {
	return s.update(func(snap *Snapshot) error {
		snap.Goals.Equity = nil
		return nil
	})
}

// SetBudget upserts the deposit target for a "YYYY-MM" month.
func (s *Service) SetBudget(month string, amount decimal.Decimal) error {
	if _, err := model.ParseDate(month + "-01"); err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("budget amount must be greater than zero")
	}
	return s.update(func(snap *Snapshot) error {
		snap.Budgets[month] = amount
		return nil
	})
}

// RemoveBudget deletes a month's deposit target.
func (s *Service) RemoveBudget(month string) error {
	return s.update(func(snap *Snapshot) error {
		delete(snap.Budgets, month)
		return nil
	})
}

// Import replaces the whole snapshot with the contents of another file. A
// malformed file is rejected before anything is written, so the previous
// snapshot stays in effect.
func (s *Service) Import(path string) error {
	snap, err := Load(path)
	if err != nil {
		return err
	}
	snap.Cash = ledger.Cash(snap.Transactions)
	return Save(s.path, snap)
}

// Export writes the current snapshot to another file.
func (s *Service) Export(path string) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	return Save(path, snap)
}

func checkValid(tx model.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	verrs := model.Validate(tx)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
