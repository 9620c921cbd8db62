package orders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO orders (id, account, product_id, quantity, price, checkout_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.Account, order.ProductID, order.Quantity, order.Price, order.CheckoutTime)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return order, nil
}

func (r *PostgresRepository) ListViews(ctx context.Context, account string) ([]*models.OrderView, error) {
	// o.price is the snapshot taken at checkout; the live p.price is never
	// used for historical totals.
	query :=
		`SELECT o.id, o.product_id, p.name, p.image, p.tier, o.quantity, o.price,
		        (o.quantity * o.price), o.checkout_time
		 FROM orders o
		 JOIN products p ON p.id = o.product_id
		 WHERE o.account = $1
		 ORDER BY o.checkout_time DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.OrderView
	for rows.Next() {
		v := &models.OrderView{}
		if err := rows.Scan(&v.OrderID, &v.ProductID, &v.Name, &v.Image, &v.Tier,
			&v.Quantity, &v.Price, &v.Total, &v.CheckoutTime); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, account, id string) error {
	query := `DELETE FROM orders WHERE id = $1 AND account = $2`

	res, err := r.db.ExecContext(ctx, query, id, account)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
