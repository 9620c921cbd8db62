// Package repomanager hands out repositories bound to a DB handle. Services
// pass either the pool (*sql.DB) or a transaction (*sql.Tx), so the same
// repository code runs inside and outside transactions.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/accounts"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/cartlines"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/orders"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/products"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Products(db dbx.DBTX) products.Repository
	CartLines(db dbx.DBTX) cartlines.Repository
	Orders(db dbx.DBTX) orders.Repository
}
