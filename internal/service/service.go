package service

import (
	"github.com/GlebRadaev/minipoints/internal/catalog"
	"github.com/GlebRadaev/minipoints/internal/handlers/launch"
	"github.com/GlebRadaev/minipoints/internal/handlers/orders"
	"github.com/GlebRadaev/minipoints/internal/repo"
	launchservice "github.com/GlebRadaev/minipoints/internal/service/launchservice"
	ledgerservice "github.com/GlebRadaev/minipoints/internal/service/ledgerservice"
	redemptionservice "github.com/GlebRadaev/minipoints/internal/service/redemptionservice"
)

type Options struct {
	ReferralBonus    int64
	ReferralLinkBase string
}

type Services struct {
	LaunchService launch.Service
	OrderService  orders.Service
	Catalog       *catalog.Catalog
}

func New(repo *repo.Repositories, catalog *catalog.Catalog, opts Options) *Services {
	ledger := ledgerservice.New(repo.AccountRepo, repo.TXManager, opts.ReferralBonus)
	launchService := launchservice.New(ledger, opts.ReferralLinkBase)
	orderService := redemptionservice.New(repo.OrderRepo, ledger, catalog)

	return &Services{
		LaunchService: launchService,
		OrderService:  orderService,
		Catalog:       catalog,
	}
}
