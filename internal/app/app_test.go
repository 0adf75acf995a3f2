package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/GlebRadaev/minipoints/internal/config"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func testConfig() *config.Config {
	return &config.Config{
		Address:          "127.0.0.1:0",
		LogLvl:           "info",
		ReferralBonus:    50,
		ReferralLinkBase: "https://t.me/test_bot/app",
	}
}

func (s *ApplicationSuite) url(path string) string {
	return "http://" + s.app.addr.String() + path
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestStart_InMemory() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.app.start(ctx, testConfig()))
	s.True(s.app.ready)

	resp, err := http.Get(s.url("/api/market-items"))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel), "graceful shutdown is not an error")
}

func (s *ApplicationSuite) TestStart_FileStoragePersists() {
	cfg := testConfig()
	cfg.StoragePath = filepath.Join(s.T().TempDir(), "minipoints.json")

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.start(ctx, cfg))

	resp, err := http.Post(s.url("/api/launch"), "application/json", bytes.NewBufferString(`{"user":{"id":7}}`))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	cancel()
	s.Require().NoError(s.app.Wait(ctx, cancel))

	s.app = New()
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	s.Require().NoError(s.app.start(ctx, cfg))

	resp, err = http.Get(s.url("/api/profile/7"))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode, "account survives a restart")

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_Failures() {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		errMsg string
	}{
		{
			name:   "Missing catalog file",
			mutate: func(cfg *config.Config) { cfg.CatalogPath = filepath.Join(s.T().TempDir(), "none.yaml") },
			errMsg: "can't load catalog",
		},
		{
			name: "Missing catalog file with database configured",
			mutate: func(cfg *config.Config) {
				cfg.Database = "postgres://minipoints@127.0.0.1:1/minipoints"
				cfg.CatalogPath = filepath.Join(s.T().TempDir(), "none.yaml")
			},
			errMsg: "can't load catalog",
		},
		{
			name:   "Invalid database DSN",
			mutate: func(cfg *config.Config) { cfg.Database = "postgres://%zz" },
			errMsg: "can't build pgx pool",
		},
		{
			name:   "Unusable address",
			mutate: func(cfg *config.Config) { cfg.Address = "256.0.0.1:99999" },
			errMsg: "can't start http server",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := testConfig()
			tt.mutate(cfg)

			app := New()
			err := app.start(context.Background(), cfg)
			s.Require().Error(err)
			s.Contains(err.Error(), tt.errMsg)
			s.Nil(app.pool, "no pool is left open after a failed start")
		})
	}
}
