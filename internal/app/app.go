package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/minipoints/internal/catalog"
	"github.com/GlebRadaev/minipoints/internal/config"
	"github.com/GlebRadaev/minipoints/internal/handlers"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"github.com/GlebRadaev/minipoints/internal/repo"
	"github.com/GlebRadaev/minipoints/internal/repo/memstore"
	"github.com/GlebRadaev/minipoints/internal/service"
	"github.com/GlebRadaev/minipoints/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool
	addr net.Addr

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg

	// Catalog first: nothing to close if it fails.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		zap.L().Error("catalog load failed: ", zap.Error(err))
		return fmt.Errorf("can't load catalog: %w", err)
	}

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return err
	}

	a.repo = repos
	a.srv = service.New(a.repo, cat, service.Options{
		ReferralBonus:    cfg.ReferralBonus,
		ReferralLinkBase: cfg.ReferralLinkBase,
	})
	a.api = handlers.New(a.srv, handlers.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildRepositories picks PostgreSQL when a DSN is configured, otherwise the in-memory
// store, persisted to a snapshot file when a storage path is set.
func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	switch {
	case a.cfg.Database != "":
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		zap.L().Info("using postgres storage")
		return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil

	case a.cfg.StoragePath != "":
		store, err := memstore.Open(a.cfg.StoragePath)
		if err != nil {
			zap.L().Error("open storage file failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't open storage file: %w", err)
		}
		zap.L().Info("using file storage", zap.String("path", a.cfg.StoragePath))
		return repo.NewInMemory(store), nil

	default:
		zap.L().Warn("no storage configured, data will be lost on restart")
		return repo.NewInMemory(memstore.New()), nil
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", a.cfg.Address)
	if err != nil {
		return err
	}
	a.addr = listener.Addr()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.addr.String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
