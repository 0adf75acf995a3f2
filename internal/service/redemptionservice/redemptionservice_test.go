package redemptionservice

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/minipoints/internal/catalog"
	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/repo/memstore"
	"github.com/GlebRadaev/minipoints/internal/service/ledgerservice"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockLedger, *MockCatalog) {
	ctrl := gomock.NewController(t)
	repo := NewMockOrderRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	cat := NewMockCatalog(ctrl)
	service := New(repo, ledger, cat)
	return service, repo, ledger, cat
}

func NewInMemory(t *testing.T, balances map[int64]int64) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	for id, points := range balances {
		account := domain.NewAccount(id, time.Now().UTC())
		account.Points = points
		require.NoError(t, store.Save(context.Background(), account))
	}
	ledger := ledgerservice.New(store, store, ledgerservice.DefaultReferralBonus)
	return New(store, ledger, catalog.Default()), store
}

// runEffect makes the ledger mock behave like a real Spend against the given balance.
func runEffect(balance int64) func(ctx context.Context, userID, amount int64, effect ledgerservice.Effect) (*domain.Account, error) {
	return func(ctx context.Context, userID, amount int64, effect ledgerservice.Effect) (*domain.Account, error) {
		account := domain.Account{ID: userID, Points: balance - amount}
		if err := effect(ctx, account); err != nil {
			return nil, err
		}
		return &account, nil
	}
}

func TestRedeem(t *testing.T) {
	service, repo, ledger, cat := NewMock(t)
	item := domain.CatalogItem{ID: "basic-prompt", Name: "Basic", Points: 100}

	tests := []struct {
		name           string
		userID         int64
		itemID         string
		prepareMock    func()
		expectedPoints int64
		expectedError  error
	}{
		{
			name:   "Order is created",
			userID: 1,
			itemID: "basic-prompt",
			prepareMock: func() {
				cat.EXPECT().Find("basic-prompt").Return(item, true)
				ledger.EXPECT().Spend(gomock.Any(), int64(1), int64(100), gomock.Any()).DoAndReturn(runEffect(150))
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedPoints: 50,
		},
		{
			name:          "Missing user id",
			userID:        0,
			itemID:        "basic-prompt",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Missing item id",
			userID:        1,
			itemID:        "",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:   "Unknown item",
			userID: 1,
			itemID: "gold",
			prepareMock: func() {
				cat.EXPECT().Find("gold").Return(domain.CatalogItem{}, false)
			},
			expectedError: domain.ErrItemNotFound,
		},
		{
			name:   "Unknown account",
			userID: 1,
			itemID: "basic-prompt",
			prepareMock: func() {
				cat.EXPECT().Find("basic-prompt").Return(item, true)
				ledger.EXPECT().Spend(gomock.Any(), int64(1), int64(100), gomock.Any()).Return(nil, domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:   "Insufficient balance",
			userID: 1,
			itemID: "basic-prompt",
			prepareMock: func() {
				cat.EXPECT().Find("basic-prompt").Return(item, true)
				ledger.EXPECT().Spend(gomock.Any(), int64(1), int64(100), gomock.Any()).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:   "Order log write fails",
			userID: 1,
			itemID: "basic-prompt",
			prepareMock: func() {
				cat.EXPECT().Find("basic-prompt").Return(item, true)
				ledger.EXPECT().Spend(gomock.Any(), int64(1), int64(100), gomock.Any()).DoAndReturn(runEffect(150))
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, account, err := service.Redeem(context.Background(), tt.userID, tt.itemID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrInvalidInput) ||
					errors.Is(tt.expectedError, domain.ErrNotFound) ||
					errors.Is(tt.expectedError, domain.ErrInsufficientBalance) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, order)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, account.Points)
			assert.Equal(t, tt.userID, order.AccountID)
			assert.Equal(t, item.ID, order.ItemID)
			assert.Equal(t, item.Name, order.ItemName)
			assert.Equal(t, item.Points, order.ConsumedPoints)
			assert.False(t, order.CreatedAt.IsZero())
		})
	}
}

func TestRedeem_OrderIDFormat(t *testing.T) {
	service, _ := NewInMemory(t, map[int64]int64{1: 1000})

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		order, _, err := service.Redeem(context.Background(), 1, "basic-prompt")
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(order.ID, orderIDPrefix))
		id, err := uuid.Parse(strings.TrimPrefix(order.ID, orderIDPrefix))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())

		_, dup := seen[order.ID]
		assert.False(t, dup)
		seen[order.ID] = struct{}{}
	}
}

func TestRedeem_IDGenerationFailureRollsBack(t *testing.T) {
	service, store := NewInMemory(t, map[int64]int64{1: 100})
	service.newID = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, _, err := service.Redeem(context.Background(), 1, "basic-prompt")
	assert.ErrorIs(t, err, domain.ErrStorage)

	account, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Points)
	orders, err := store.FindByAccountID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRedeem_Scenarios(t *testing.T) {
	t.Run("Exact balance", func(t *testing.T) {
		service, store := NewInMemory(t, map[int64]int64{1: 100})

		order, account, err := service.Redeem(context.Background(), 1, "basic-prompt")
		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Points)
		assert.Equal(t, int64(100), order.ConsumedPoints)

		orders, err := store.FindByAccountID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.Order{*order}, orders)
	})

	t.Run("Balance too low", func(t *testing.T) {
		service, store := NewInMemory(t, map[int64]int64{1: 50})

		_, _, err := service.Redeem(context.Background(), 1, "basic-prompt")
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		account, err := store.FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(50), account.Points)
		orders, err := store.FindByAccountID(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Unknown account", func(t *testing.T) {
		service, _ := NewInMemory(t, nil)

		_, _, err := service.Redeem(context.Background(), 7, "basic-prompt")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestRedeem_ConcurrentOverBudget(t *testing.T) {
	service, store := NewInMemory(t, map[int64]int64{1: 500})

	var ok, rejected atomic.Int32
	var g errgroup.Group
	for i := 0; i < 12; i++ {
		g.Go(func() error {
			_, _, err := service.Redeem(context.Background(), 1, "basic-prompt")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrInsufficientBalance):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(5), ok.Load())
	assert.Equal(t, int32(7), rejected.Load())

	account, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Points)

	orders, err := store.FindByAccountID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
	var spent int64
	for _, o := range orders {
		spent += o.ConsumedPoints
	}
	assert.Equal(t, int64(500), spent)
}

func TestListOrders(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedOrders []domain.Order
		expectedError  error
	}{
		{
			name: "No orders",
			prepareMock: func() {
				repo.EXPECT().FindByAccountID(gomock.Any(), int64(1)).Return([]domain.Order{}, nil)
			},
			expectedOrders: nil,
		},
		{
			name: "Orders found",
			prepareMock: func() {
				repo.EXPECT().FindByAccountID(gomock.Any(), int64(1)).Return([]domain.Order{{ID: "ORD-2"}, {ID: "ORD-1"}}, nil)
			},
			expectedOrders: []domain.Order{{ID: "ORD-2"}, {ID: "ORD-1"}},
		},
		{
			name: "Storage error",
			prepareMock: func() {
				repo.EXPECT().FindByAccountID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			orders, err := service.ListOrders(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOrders, orders)
			}
		})
	}
}
