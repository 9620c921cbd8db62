package cartlines

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) FindByProduct(ctx context.Context, account, productID string) (*models.CartLine, error) {
	query :=
		`SELECT id, account, product_id, quantity, added_at FROM cart_lines
		 WHERE account = $1 AND product_id = $2
		 `

	line := &models.CartLine{}
	err := r.db.QueryRowContext(ctx, query, account, productID).Scan(
		&line.ID, &line.Account, &line.ProductID, &line.Quantity, &line.AddedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return line, nil
}

func (r *PostgresRepository) Create(ctx context.Context, line *models.CartLine) (*models.CartLine, error) {

	if line.ID == "" {
		line.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO cart_lines (id, account, product_id, quantity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING added_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		line.ID, line.Account, line.ProductID, line.Quantity).Scan(&line.AddedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return line, nil
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	query :=
		`UPDATE cart_lines SET quantity = $1, added_at = now()
		 WHERE id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, quantity, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListViews(ctx context.Context, account string) ([]*models.CartLineView, error) {
	query :=
		`SELECT c.id, c.product_id, p.name, p.image, p.tier, p.price, c.quantity,
		        (c.quantity * p.price), p.stock
		 FROM cart_lines c
		 JOIN products p ON p.id = c.product_id
		 WHERE c.account = $1
		 ORDER BY c.added_at
		 `

	rows, err := r.db.QueryContext(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CartLineView
	for rows.Next() {
		v := &models.CartLineView{}
		if err := rows.Scan(&v.CartLineID, &v.ProductID, &v.Name, &v.Image, &v.Tier,
			&v.Price, &v.Quantity, &v.Subtotal, &v.Stock); err != nil {
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
	query := `DELETE FROM cart_lines WHERE id = $1 AND account = $2`

	// Rows affected is intentionally not checked: removing an already-removed
	// line reports success.
	if _, err := r.db.ExecContext(ctx, query, id, account); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByProduct(ctx context.Context, account, productID string) error {
	query := `DELETE FROM cart_lines WHERE account = $1 AND product_id = $2`

	if _, err := r.db.ExecContext(ctx, query, account, productID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
