package services

import (
	"context"
	"database/sql"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/repomanager"
)

// CategoryService provides CRUD over product categories.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	repo := s.repomanager.Categories(s.db)
	return repo.Create(ctx, category)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	repo := s.repomanager.Categories(s.db)
	return repo.GetByID(ctx, id)
}

func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	repo := s.repomanager.Categories(s.db)
	return repo.GetAll(ctx)
}

// FindByName matches case-insensitively on any part of the name.
func (s *CategoryService) FindByName(ctx context.Context, name string) ([]models.Category, error) {
	repo := s.repomanager.Categories(s.db)
	return repo.FindByName(ctx, name)
}

func (s *CategoryService) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	repo := s.repomanager.Categories(s.db)
	return repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Categories(s.db)
	return repo.Delete(ctx, id)
}
