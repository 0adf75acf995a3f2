// Package memstore keeps accounts and orders in process memory, optionally mirrored to a JSON
// snapshot file. Writes made inside Begin are staged and applied together on success, so a
// failed transaction leaves no trace.
package memstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"go.uber.org/zap"
)

var ErrDuplicateOrder = errors.New("order id already exists")

type txKey struct{}

type tx struct {
	accounts map[int64]*domain.Account
	orders   []domain.Order
}

type Store struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	orders   []domain.Order
	orderIDs map[string]struct{}
	path     string
}

func New() *Store {
	return &Store{
		accounts: make(map[int64]*domain.Account),
		orderIDs: make(map[string]struct{}),
	}
}

// Open loads the snapshot at path, creating an empty one on first run.
func Open(path string) (*Store, error) {
	s := New()
	s.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("can't create data dir: %w", err)
		}
		if err := s.persist(s.accounts, s.orders); err != nil {
			return nil, err
		}
		zap.L().Info("created empty snapshot", zap.String("path", path))
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("can't read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("can't decode snapshot %s: %w", path, err)
	}
	for _, rec := range snap.Accounts {
		s.accounts[rec.ID] = rec.toDomain()
	}
	for _, rec := range snap.Orders {
		order := rec.toDomain()
		s.orders = append(s.orders, order)
		s.orderIDs[order.ID] = struct{}{}
	}
	zap.L().Info("snapshot loaded",
		zap.String("path", path),
		zap.Int("accounts", len(s.accounts)),
		zap.Int("orders", len(s.orders)),
	)
	return s, nil
}

var _ pg.TXManager = (*Store)(nil)

func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(ctx)
	}

	t := &tx{accounts: make(map[int64]*domain.Account)}
	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}
	return s.commit(t)
}

func (s *Store) commit(t *tx) error {
	if len(t.accounts) == 0 && len(t.orders) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range t.orders {
		if _, ok := s.orderIDs[order.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
		}
	}

	accounts := s.accounts
	if s.path != "" {
		accounts = make(map[int64]*domain.Account, len(s.accounts)+len(t.accounts))
		for id, acc := range s.accounts {
			accounts[id] = acc
		}
	}
	for id, acc := range t.accounts {
		accounts[id] = acc
	}
	orders := append(slices.Clip(s.orders), t.orders...)

	if s.path != "" {
		if err := s.persist(accounts, orders); err != nil {
			zap.L().Error("can't persist snapshot", zap.Error(err))
			return err
		}
	}

	s.accounts = accounts
	s.orders = orders
	for _, order := range t.orders {
		s.orderIDs[order.ID] = struct{}{}
	}
	return nil
}

func (s *Store) persist(accounts map[int64]*domain.Account, orders []domain.Order) error {
	data, err := json.MarshalIndent(newSnapshot(accounts, orders), "", "  ")
	if err != nil {
		return fmt.Errorf("can't encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("can't create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("can't write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("can't sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("can't close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("can't replace snapshot: %w", err)
	}
	return nil
}

func txFrom(ctx context.Context) *tx {
	t, _ := ctx.Value(txKey{}).(*tx)
	return t
}

func (s *Store) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t := txFrom(ctx); t != nil {
		if acc, ok := t.accounts[id]; ok {
			return acc.Clone(), nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[id].Clone(), nil
}

// FindByIDForUpdate is FindByID: callers serialize per account before entering a transaction.
func (s *Store) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return s.FindByID(ctx, id)
}

func (s *Store) Save(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t := txFrom(ctx); t != nil {
		t.accounts[account.ID] = account.Clone()
		return nil
	}
	return s.commit(&tx{accounts: map[int64]*domain.Account{account.ID: account.Clone()}})
}

// Create stages a fresh account unless one with the same id already exists.
func (s *Store) Create(ctx context.Context, account *domain.Account) (bool, error) {
	if txFrom(ctx) == nil {
		var created bool
		err := s.Begin(ctx, func(ctx context.Context) error {
			var err error
			created, err = s.Create(ctx, account)
			return err
		})
		return created, err
	}

	existing, err := s.FindByID(ctx, account.ID)
	if err != nil || existing != nil {
		return false, err
	}
	txFrom(ctx).accounts[account.ID] = account.Clone()
	return true, nil
}

func (s *Store) Append(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t := txFrom(ctx); t != nil {
		if slices.ContainsFunc(t.orders, func(o domain.Order) bool { return o.ID == order.ID }) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
		}
		t.orders = append(t.orders, *order)
		return nil
	}
	return s.commit(&tx{orders: []domain.Order{*order}})
}

// FindByAccountID returns the account's orders, newest first.
func (s *Store) FindByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := slices.Clone(s.orders)
	s.mu.RUnlock()
	if t := txFrom(ctx); t != nil {
		all = append(all, t.orders...)
	}

	var orders []domain.Order
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].AccountID == accountID {
			orders = append(orders, all[i])
		}
	}
	return orders, nil
}
