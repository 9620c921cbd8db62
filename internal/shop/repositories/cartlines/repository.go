package cartlines

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
)

type Repository interface {
	// FindByProduct returns the account's cart line for a product, or
	// common.ErrorNotFound when the pair has no line yet.
	FindByProduct(ctx context.Context, account, productID string) (*models.CartLine, error)
	Create(ctx context.Context, line *models.CartLine) (*models.CartLine, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// ListViews joins current product data onto the account's cart lines.
	ListViews(ctx context.Context, account string) ([]*models.CartLineView, error)
	// Delete removes the line if it exists and is owned by account. Deleting
	// a missing or non-owned line is a no-op, not an error.
	Delete(ctx context.Context, account, id string) error
	// DeleteByProduct removes the account's line for a product, if any.
	DeleteByProduct(ctx context.Context, account, productID string) error
}
