package products

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
)

type Repository interface {
	// List returns the full catalog snapshot, no filtering or pagination.
	List(ctx context.Context) ([]*models.Product, error)
	// Get returns common.ErrorNotFound when the product does not exist.
	Get(ctx context.Context, id string) (*models.Product, error)
	// GetForUpdate reads the product while taking a row lock, so a checkout
	// transaction can validate stock without racing other checkouts. Only
	// meaningful on a transactional handle.
	GetForUpdate(ctx context.Context, id string) (*models.Product, error)
	// MaxPrice returns the maximum unit price, or 0 for an empty catalog.
	MaxPrice(ctx context.Context) (float64, error)
	// DecrementStock subtracts qty from the product's stock.
	DecrementStock(ctx context.Context, id string, qty int) error
	// ResetStock unconditionally sets every product's stock to value.
	ResetStock(ctx context.Context, value int) error
}
