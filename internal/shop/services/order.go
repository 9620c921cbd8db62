package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
)

// OrderService is the append-only order history view.
type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *OrderService {
	return &OrderService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "orders"),
	}
}

// ListOrders returns the account's orders, newest first. Totals are computed
// from the snapshotted order price, not the live catalog price.
func (s *OrderService) ListOrders(ctx context.Context, account string) ([]*models.OrderView, error) {
	repo := s.repomanager.Orders(s.db)
	result, err := repo.ListViews(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return result, nil
}

// DeleteOrder removes one order owned by account. A missing or non-owned
// order yields common.ErrorNotFound; stock is not affected.
func (s *OrderService) DeleteOrder(ctx context.Context, account, orderID string) error {
	repo := s.repomanager.Orders(s.db)
	if err := repo.Delete(ctx, account, orderID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting order: %w", err)
	}
	return nil
}
