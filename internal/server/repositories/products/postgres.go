package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/dbx"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

// selectProduct joins the owning category so reads come back hydrated.
const selectProduct = `
	SELECT p.id, p.name, p.description, p.quantity, p.price, p.healthy,
	       p.category_id, p.user_id,
	       c.id, c.name, c.description, c.photo
	FROM products p
	JOIN categories c ON c.id = p.category_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (name, description, quantity, price, healthy, category_id, user_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Quantity, product.Price,
		product.Healthy, product.CategoryID, nullableID(product.UserID)).Scan(&product.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := selectProduct + ` WHERE p.id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryList(ctx, selectProduct+` ORDER BY p.id`)
}

// FindByName is a case-insensitive substring match on the product name.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	query := selectProduct + ` WHERE p.name ILIKE '%' || $1 || '%' ORDER BY p.id`
	return r.queryList(ctx, query, name)
}

// FindHealthy returns products flagged healthy, in insertion order.
func (r *PostgresRepository) FindHealthy(ctx context.Context) ([]models.Product, error) {
	return r.queryList(ctx, selectProduct+` WHERE p.healthy ORDER BY p.id`)
}

func (r *PostgresRepository) queryList(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`UPDATE products
		 SET name = $1, description = $2, quantity = $3, price = $4, healthy = $5, category_id = $6
		 WHERE id = $7
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Quantity, product.Price,
		product.Healthy, product.CategoryID, product.ID).Scan(&product.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*models.Product, error) {
	p := &models.Product{Category: &models.Category{}}
	var userID sql.NullInt64
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.Healthy,
		&p.CategoryID, &userID,
		&p.Category.ID, &p.Category.Name, &p.Category.Description, &p.Category.Photo)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		p.UserID = userID.Int64
	}
	return p, nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
