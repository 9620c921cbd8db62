package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
)

// CatalogService is the read-only product view plus the stock-reset entry
// point used by the external scheduled job.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CatalogService {
	return &CatalogService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "catalog"),
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return result, nil
}

// GetProduct passes common.ErrorNotFound through for an unknown id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.Get(ctx, id)
}

// MaxPrice returns the highest unit price in the catalog, 0 when empty.
func (s *CatalogService) MaxPrice(ctx context.Context) (float64, error) {
	repo := s.repomanager.Products(s.db)
	max, err := repo.MaxPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("error reading max price: %w", err)
	}
	return max, nil
}

// ResetAllStock unconditionally sets every product's stock to value. It is
// called by an external timer-driven job; no in-core scheduling.
func (s *CatalogService) ResetAllStock(ctx context.Context, value int) error {
	if value < 0 {
		return fmt.Errorf("stock value must be non-negative, got %d", value)
	}

	repo := s.repomanager.Products(s.db)
	if err := repo.ResetStock(ctx, value); err != nil {
		return fmt.Errorf("error resetting stock: %w", err)
	}

	s.logger.Info(ctx, "stock reset", "value", value)
	return nil
}
