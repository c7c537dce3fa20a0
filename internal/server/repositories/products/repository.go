package products

import (
	"context"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

// Repository is the persistence contract for products. Read operations
// hydrate the Category field.
type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindHealthy(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}
