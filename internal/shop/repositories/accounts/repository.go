package accounts

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
)

type Repository interface {
	// Create inserts a new account. A duplicate identifier yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	// GetByIdentifier returns common.ErrorNotFound when no such account exists.
	GetByIdentifier(ctx context.Context, identifier string) (*models.Account, error)
}
