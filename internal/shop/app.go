// Package shop wires the store handle, repositories, and services together.
// The *sql.DB is owned here and passed into each service at construction;
// there is no module-level store singleton.
package shop

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/metrics"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/config"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/services"
)

// App owns the database handle and exposes the shop services to whatever
// transport or job binary embeds it.
type App struct {
	Config *config.Config
	Logger logging.Logger

	Accounts *services.AccountService
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *services.OrderService

	db *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	cm := metrics.NewCheckoutMetrics(nil)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Accounts: services.NewAccountService(db, m, cfg, logger),
		Catalog:  services.NewCatalogService(db, m, logger),
		Cart:     services.NewCartService(db, m, logger),
		Checkout: services.NewCheckoutService(db, m, logger, cm),
		Orders:   services.NewOrderService(db, m, logger),
		db:       db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}
