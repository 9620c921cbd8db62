package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/metrics"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
)

// timeNow is a hook for tests that assert the checkout timestamp.
var timeNow = time.Now

// SelectedItem is one line of a checkout batch.
type SelectedItem struct {
	ProductID string
	Quantity  int
}

// CheckoutService commits checkout batches: it validates every selected line
// against current stock and, in one transaction, writes order rows with a
// price snapshot, decrements stock, and clears the purchased cart lines.
// Either the whole batch commits or none of it does.
type CheckoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	metrics     *metrics.CheckoutMetrics
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cm *metrics.CheckoutMetrics) *CheckoutService {
	return &CheckoutService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "checkout"),
		metrics:     cm,
	}
}

// Checkout processes items in input order. Any invalid line (non-positive
// quantity, unknown product, quantity above stock) rejects the entire batch
// and leaves cart and stock untouched. Store failures roll back and surface
// as ErrCheckoutFailed, safe to retry.
//
// Product rows are read FOR UPDATE inside the transaction, so two concurrent
// checkouts cannot sell the same stock units twice.
func (s *CheckoutService) Checkout(ctx context.Context, account string, items []SelectedItem) error {

	if len(items) == 0 {
		s.observe(metrics.StatusRejected)
		return ErrEmptySelection
	}

	start := timeNow()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		productRepo := s.repomanager.Products(tx)
		orderRepo := s.repomanager.Orders(tx)
		cartRepo := s.repomanager.CartLines(tx)

		checkoutTime := timeNow().UTC()

		for _, item := range items {

			if item.Quantity <= 0 {
				return &InvalidQuantityError{ProductID: item.ProductID}
			}

			p, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return &ProductNotFoundError{ProductID: item.ProductID}
				}
				return fmt.Errorf("error reading product %s: %w", item.ProductID, err)
			}

			if item.Quantity > p.Stock {
				return &StockInsufficientError{
					ProductID: item.ProductID,
					Requested: item.Quantity,
					Available: p.Stock,
				}
			}

			order := &models.Order{
				Account:      account,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				Price:        p.Price,
				CheckoutTime: checkoutTime,
			}
			if _, err := orderRepo.Create(ctx, order); err != nil {
				return fmt.Errorf("error creating order: %w", err)
			}

			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("error decrementing stock: %w", err)
			}

			if err := cartRepo.DeleteByProduct(ctx, account, item.ProductID); err != nil {
				return fmt.Errorf("error clearing cart line: %w", err)
			}
		}

		return nil
	})

	s.observeDuration(timeNow().Sub(start))

	if err != nil {
		if isCallerError(err) {
			s.observe(metrics.StatusRejected)
			return err
		}
		// Infrastructure failure: log the cause, surface a generic retryable
		// error without internal detail.
		s.logger.Error(ctx, "checkout rolled back", "account", account, "error", err.Error())
		s.observe(metrics.StatusFailed)
		return ErrCheckoutFailed
	}

	s.logger.Info(ctx, "checkout committed", "account", account, "lines", len(items))
	s.observe(metrics.StatusCommitted)
	return nil
}

func (s *CheckoutService) observe(status string) {
	if s.metrics != nil {
		s.metrics.Batches.WithLabelValues(status).Inc()
	}
}

func (s *CheckoutService) observeDuration(d time.Duration) {
	if s.metrics != nil {
		s.metrics.Duration.Observe(d.Seconds())
	}
}
