package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/internal/market"
	"github.com/carry9637/cryptocurrency-dashboard/internal/services"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/config"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// App wires the market-data synchronization layer together: gateway,
// fetchers, store, and the sync service.
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc

	store   *state.Store
	gateway *gateway.Client
	market  *market.Service
	syncer  *services.SyncService
}

// New creates a new application instance.
func New(cfg *config.Config, logger *logrus.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Initialize constructs all components.
func (a *App) Initialize() error {
	store, err := state.New(models.DefaultCurrency)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	a.store = store

	a.gateway = gateway.NewClient(&a.cfg.API, a.logger)
	a.market = market.NewService(a.gateway, a.logger)
	a.syncer = services.NewSyncService(a.store, a.market, &a.cfg.Market, a.logger)

	return nil
}

// Start begins synchronization. Data arrives asynchronously through store
// transitions.
func (a *App) Start() error {
	if err := a.syncer.Start(a.ctx); err != nil {
		return fmt.Errorf("failed to start sync service: %w", err)
	}
	a.logger.Info("Market data synchronization started")
	return nil
}

// Stop shuts the sync layer down and waits for in-flight fetches.
func (a *App) Stop() error {
	a.cancel()
	a.syncer.Stop()
	a.logger.Info("Market data synchronization stopped")
	return nil
}

// Store exposes the synchronization store to the presentation layer.
func (a *App) Store() *state.Store {
	return a.store
}

// Market exposes the fetchers for one-shot commands.
func (a *App) Market() *market.Service {
	return a.market
}

// Sync exposes the sync service.
func (a *App) Sync() *services.SyncService {
	return a.syncer
}
