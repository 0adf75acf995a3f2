package service

import (
	"context"
	"testing"

	"github.com/GlebRadaev/minipoints/internal/catalog"
	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"github.com/GlebRadaev/minipoints/internal/repo"
	"github.com/GlebRadaev/minipoints/internal/repo/memstore"
	"github.com/GlebRadaev/minipoints/internal/service/ledgerservice"
	"github.com/GlebRadaev/minipoints/internal/service/redemptionservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		AccountRepo: ledgerservice.NewMockAccountRepo(ctrl),
		OrderRepo:   redemptionservice.NewMockOrderRepo(ctrl),
		TXManager:   pg.NewMockTXManager(ctrl),
	}

	services := New(repos, catalog.Default(), Options{})

	assert.NotNil(t, services.LaunchService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.Catalog)
}

// The referral and redemption flows share one ledger, so a bonus earned through a
// launch can be spent through an order.
func TestNew_SharedLedger(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	services := New(repo.NewInMemory(store), catalog.Default(), Options{ReferralBonus: 100})

	_, err := services.LaunchService.Launch(ctx, 1, domain.Profile{}, "")
	require.NoError(t, err)
	_, err = services.LaunchService.Launch(ctx, 2, domain.Profile{}, "1")
	require.NoError(t, err)

	order, account, err := services.OrderService.Redeem(ctx, 1, "basic-prompt")
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Points)
	assert.Equal(t, "basic-prompt", order.ItemID)

	orders, err := services.OrderService.ListOrders(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
