package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/dbx"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	query :=
		`INSERT INTO categories (name, description, photo)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		category.Name, category.Description, category.Photo).Scan(&category.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query :=
		`SELECT id, name, description, photo FROM categories
		 WHERE id = $1
		 `

	category := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Description, &category.Photo)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query :=
		`SELECT id, name, description, photo FROM categories
		 ORDER BY id
		 `
	return r.queryList(ctx, query)
}

// FindByName is a case-insensitive substring match.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) ([]models.Category, error) {
	query :=
		`SELECT id, name, description, photo FROM categories
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY id
		 `
	return r.queryList(ctx, query, name)
}

func (r *PostgresRepository) queryList(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Photo); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	query :=
		`UPDATE categories SET name = $1, description = $2, photo = $3
		 WHERE id = $4
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		category.Name, category.Description, category.Photo, category.ID).Scan(&category.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

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
