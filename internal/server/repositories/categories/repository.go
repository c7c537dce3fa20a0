package categories

import (
	"context"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

// Repository is the persistence contract for product categories.
type Repository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	FindByName(ctx context.Context, name string) ([]models.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}
