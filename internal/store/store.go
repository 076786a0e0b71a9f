package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/medikit/ClinicStock_Go/internal/concurrency"
	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/repository"
)

// Table file names under the data directory.
const (
	FileInventory = "inventory.json"
	FileUsage     = "usage_history.json"
	FileOrders    = "purchase_orders.json"
)

// Lock names. Multi-table mutations always acquire the inventory lock
// first so writers cannot deadlock.
const (
	lockInventory = "inventory"
	lockUsage     = "usage"
	lockOrders    = "orders"
)

// FileStore persists the three tables as pretty-printed JSON arrays,
// matching the layout the original data files used. Every mutation runs
// single-writer per table and commits via temp-file rename, so a torn
// write never corrupts a table.
type FileStore struct {
	dir   string
	locks *concurrency.LockManager
}

// New creates a FileStore rooted at dir, initializing any missing table
// file to an empty array.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", domain.ErrPersistence, err)
	}

	s := &FileStore{dir: dir, locks: concurrency.NewLockManager()}

	for _, name := range []string{FileInventory, FileUsage, FileOrders} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
				return nil, fmt.Errorf("%w: init %s: %v", domain.ErrPersistence, name, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrPersistence, name, err)
		}
	}

	return s, nil
}

var _ repository.Store = (*FileStore)(nil)

// readTable loads and decodes one table. A read or parse error surfaces as
// ErrPersistence; it is never silently treated as an empty table.
func readTable[T any](s *FileStore, file string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, file, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrPersistence, file, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// stagedWrite is one table encoded and ready to commit.
type stagedWrite struct {
	file string
	data []byte
}

// stage encodes a table without touching disk.
func stage(file string, v interface{}) (stagedWrite, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return stagedWrite{}, fmt.Errorf("%w: marshal %s: %v", domain.ErrPersistence, file, err)
	}
	return stagedWrite{file: file, data: append(data, '\n')}, nil
}

// commit writes every staged table to a temp file first, then renames them
// all into place. A failure before the first rename leaves no partial
// state; the rename sequence itself is the only residual window.
func (s *FileStore) commit(writes ...stagedWrite) error {
	tmpPaths := make([]string, len(writes))
	for i, w := range writes {
		tmp, err := os.CreateTemp(s.dir, w.file+".tmp-*")
		if err != nil {
			removeAll(tmpPaths[:i])
			return fmt.Errorf("%w: stage %s: %v", domain.ErrPersistence, w.file, err)
		}
		tmpPaths[i] = tmp.Name()

		if _, err := tmp.Write(w.data); err != nil {
			tmp.Close()
			removeAll(tmpPaths[:i+1])
			return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, w.file, err)
		}
		if err := tmp.Close(); err != nil {
			removeAll(tmpPaths[:i+1])
			return fmt.Errorf("%w: close %s: %v", domain.ErrPersistence, w.file, err)
		}
	}

	for i, w := range writes {
		if err := os.Rename(tmpPaths[i], filepath.Join(s.dir, w.file)); err != nil {
			removeAll(tmpPaths[i:])
			return fmt.Errorf("%w: commit %s: %v", domain.ErrPersistence, w.file, err)
		}
	}
	return nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}

// GetItems returns the inventory table.
func (s *FileStore) GetItems(ctx context.Context) ([]domain.Item, error) {
	return readTable[domain.Item](s, FileInventory)
}

// GetUsageEvents returns the usage ledger.
func (s *FileStore) GetUsageEvents(ctx context.Context) ([]domain.UsageEvent, error) {
	return readTable[domain.UsageEvent](s, FileUsage)
}

// GetOrders returns the purchase-order table.
func (s *FileStore) GetOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	return readTable[domain.PurchaseOrder](s, FileOrders)
}

// UpdateInventory runs fn against the current inventory under its write
// lock and commits the result.
func (s *FileStore) UpdateInventory(ctx context.Context, fn repository.InventoryMutation) error {
	return s.locks.WithLock(lockInventory, func() error {
		items, err := readTable[domain.Item](s, FileInventory)
		if err != nil {
			return err
		}

		updated, err := fn(items)
		if err != nil {
			return err
		}

		w, err := stage(FileInventory, updated)
		if err != nil {
			return err
		}
		return s.commit(w)
	})
}

// UpdateInventoryAndUsage commits inventory and usage ledger together.
func (s *FileStore) UpdateInventoryAndUsage(ctx context.Context, fn repository.UsageMutation) error {
	return s.locks.WithLock(lockInventory, func() error {
		return s.locks.WithLock(lockUsage, func() error {
			items, err := readTable[domain.Item](s, FileInventory)
			if err != nil {
				return err
			}
			events, err := readTable[domain.UsageEvent](s, FileUsage)
			if err != nil {
				return err
			}

			newItems, newEvents, err := fn(items, events)
			if err != nil {
				return err
			}

			wi, err := stage(FileInventory, newItems)
			if err != nil {
				return err
			}
			wu, err := stage(FileUsage, newEvents)
			if err != nil {
				return err
			}
			return s.commit(wi, wu)
		})
	})
}

// UpdateInventoryAndOrders commits inventory and purchase orders together.
// When fn returns nil items the inventory table is left as it is.
func (s *FileStore) UpdateInventoryAndOrders(ctx context.Context, fn repository.OrderMutation) error {
	return s.locks.WithLock(lockInventory, func() error {
		return s.locks.WithLock(lockOrders, func() error {
			items, err := readTable[domain.Item](s, FileInventory)
			if err != nil {
				return err
			}
			orders, err := readTable[domain.PurchaseOrder](s, FileOrders)
			if err != nil {
				return err
			}

			newItems, newOrders, err := fn(items, orders)
			if err != nil {
				return err
			}

			wo, err := stage(FileOrders, newOrders)
			if err != nil {
				return err
			}
			if newItems == nil {
				return s.commit(wo)
			}

			wi, err := stage(FileInventory, newItems)
			if err != nil {
				return err
			}
			return s.commit(wi, wo)
		})
	})
}

// UpdateOrders runs fn against the purchase-order table alone.
func (s *FileStore) UpdateOrders(ctx context.Context, fn repository.OrdersOnlyMutation) error {
	return s.locks.WithLock(lockOrders, func() error {
		orders, err := readTable[domain.PurchaseOrder](s, FileOrders)
		if err != nil {
			return err
		}

		updated, err := fn(orders)
		if err != nil {
			return err
		}

		w, err := stage(FileOrders, updated)
		if err != nil {
			return err
		}
		return s.commit(w)
	})
}

// CheckHealth verifies the inventory table is readable. Used by the
// readiness probe.
func (s *FileStore) CheckHealth(ctx context.Context) error {
	_, err := s.GetItems(ctx)
	return err
}
