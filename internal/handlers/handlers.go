package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/minipoints/docs"
	launchhandlers "github.com/GlebRadaev/minipoints/internal/handlers/launch"
	markethandlers "github.com/GlebRadaev/minipoints/internal/handlers/market"
	ordershandlers "github.com/GlebRadaev/minipoints/internal/handlers/orders"
	"github.com/GlebRadaev/minipoints/internal/service"
	"github.com/GlebRadaev/minipoints/pkg/metrics"
	"github.com/GlebRadaev/minipoints/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type LaunchHandler interface {
	Launch(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	GetItems(w http.ResponseWriter, r *http.Request)
}

// Options tune the /api middleware chain. A zero RateLimitRPS disables throttling.
type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

type Handlers struct {
	LaunchHandler LaunchHandler
	OrderHandler  OrderHandler
	MarketHandler MarketHandler
	Options       Options
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		LaunchHandler: launchhandlers.New(s.LaunchService, s.Catalog),
		OrderHandler:  ordershandlers.New(s.OrderService),
		MarketHandler: markethandlers.New(s.Catalog),
		Options:       opts,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(ratelimit.Middleware(h.Options.RateLimitRPS, h.Options.RateLimitBurst))

		r.Get("/market-items", h.MarketHandler.GetItems)
		r.Post("/launch", h.LaunchHandler.Launch)
		r.Get("/profile/{telegramId}", h.LaunchHandler.GetProfile)
		r.Post("/order", h.OrderHandler.CreateOrder)
		r.Get("/orders/{telegramId}", h.OrderHandler.GetOrders)
	})

	return r
}
