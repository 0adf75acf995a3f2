package repo

import (
	"github.com/GlebRadaev/minipoints/internal/pg"
	accountrepo "github.com/GlebRadaev/minipoints/internal/repo/account-repo"
	"github.com/GlebRadaev/minipoints/internal/repo/memstore"
	orderrepo "github.com/GlebRadaev/minipoints/internal/repo/order-repo"
	"github.com/GlebRadaev/minipoints/internal/service/ledgerservice"
	"github.com/GlebRadaev/minipoints/internal/service/redemptionservice"
)

// Repositories share one TXManager so account and order writes can join the same transaction.
type Repositories struct {
	AccountRepo ledgerservice.AccountRepo
	OrderRepo   redemptionservice.OrderRepo
	TXManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(conn, txManager),
		OrderRepo:   orderrepo.New(conn, txManager),
		TXManager:   txManager,
	}
}

func NewInMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		AccountRepo: store,
		OrderRepo:   store,
		TXManager:   store,
	}
}
