package orders

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
)

type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	// ListViews returns the account's orders newest first, with product
	// display data joined on.
	ListViews(ctx context.Context, account string) ([]*models.OrderView, error)
	// Delete removes the order if it exists and is owned by account;
	// otherwise it returns common.ErrorNotFound. Unlike cart-line deletion
	// this is not idempotent by contract.
	Delete(ctx context.Context, account, id string) error
}
