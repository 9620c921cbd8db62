package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, image, tier, category, description, price, stock`

func (r *PostgresRepository) scanProduct(row *sql.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Image, &p.Tier, &p.Category, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Tier, &p.Category, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) MaxPrice(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(MAX(price), 0) FROM products`

	var max float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return max, nil
}

func (r *PostgresRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	query :=
		`UPDATE products SET stock = stock - $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, qty, id)
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

func (r *PostgresRepository) ResetStock(ctx context.Context, value int) error {
	query := `UPDATE products SET stock = $1`

	if _, err := r.db.ExecContext(ctx, query, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
