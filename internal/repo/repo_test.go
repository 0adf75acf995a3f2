package repo

import (
	"testing"

	"github.com/GlebRadaev/minipoints/internal/pg"
	accountrepo "github.com/GlebRadaev/minipoints/internal/repo/account-repo"
	"github.com/GlebRadaev/minipoints/internal/repo/memstore"
	orderrepo "github.com/GlebRadaev/minipoints/internal/repo/order-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.TXManager)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewInMemory(t *testing.T) {
	store := memstore.New()
	repo := NewInMemory(store)

	assert.Same(t, store, repo.AccountRepo)
	assert.Same(t, store, repo.OrderRepo)
	assert.Same(t, store, repo.TXManager)
}
