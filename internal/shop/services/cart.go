package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
)

// CartService mutates and reads the per-account cart.
type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CartService {
	return &CartService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "cart"),
	}
}

// AddItem creates a cart line for (account, productID) or merges quantity
// into an existing one. The merged total is checked against current stock;
// when it would exceed stock the whole call fails and the existing line is
// left unchanged. The read-merge-write runs in one transaction so two adds
// for the same pair cannot interleave.
func (s *CartService) AddItem(ctx context.Context, account, productID string, quantity int) error {

	if quantity < 1 {
		return &InvalidQuantityError{ProductID: productID}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		productRepo := s.repomanager.Products(tx)
		cartRepo := s.repomanager.CartLines(tx)

		p, err := productRepo.Get(ctx, productID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return &ProductNotFoundError{ProductID: productID}
			}
			return fmt.Errorf("error reading product: %w", err)
		}

		if p.Stock <= 0 {
			return &StockInsufficientError{ProductID: productID, Requested: quantity, Available: p.Stock}
		}

		line, err := cartRepo.FindByProduct(ctx, account, productID)
		switch {
		case err == nil:
			merged := line.Quantity + quantity
			if merged > p.Stock {
				return &StockInsufficientError{ProductID: productID, Requested: merged, Available: p.Stock}
			}
			if err := cartRepo.UpdateQuantity(ctx, line.ID, merged); err != nil {
				return fmt.Errorf("error updating cart line: %w", err)
			}

		case errors.Is(err, common.ErrorNotFound):
			if quantity > p.Stock {
				return &StockInsufficientError{ProductID: productID, Requested: quantity, Available: p.Stock}
			}
			newLine := &models.CartLine{Account: account, ProductID: productID, Quantity: quantity}
			if _, err := cartRepo.Create(ctx, newLine); err != nil {
				return fmt.Errorf("error creating cart line: %w", err)
			}

		default:
			return fmt.Errorf("error reading cart line: %w", err)
		}

		return nil
	})
}

// ListItems returns the account's cart joined with live product data.
func (s *CartService) ListItems(ctx context.Context, account string) ([]*models.CartLineView, error) {
	repo := s.repomanager.CartLines(s.db)
	result, err := repo.ListViews(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error listing cart: %w", err)
	}
	return result, nil
}

// RemoveItem deletes the line when owned by account. Removing a missing or
// non-owned line succeeds.
func (s *CartService) RemoveItem(ctx context.Context, account, cartLineID string) error {
	repo := s.repomanager.CartLines(s.db)
	if err := repo.Delete(ctx, account, cartLineID); err != nil {
		return fmt.Errorf("error removing cart line: %w", err)
	}
	return nil
}
