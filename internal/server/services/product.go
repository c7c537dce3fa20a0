package services

import (
	"context"
	"database/sql"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/dbx"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/repomanager"
)

// ProductService provides CRUD over products plus the healthy-items listing.
// Writes verify that the referenced category exists before touching the row.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

// Create inserts a product. A dangling category reference yields
// common.ErrorCategoryDoesNotExist. The existence check and the insert run
// in one transaction so the reference cannot disappear in between.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created *models.Product
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkCategory(ctx, tx, product.CategoryID); err != nil {
			return err
		}
		var createErr error
		created, createErr = s.repomanager.Products(tx).Create(ctx, product)
		return createErr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.GetAll(ctx)
}

// FindByName matches case-insensitively on any part of the name.
func (s *ProductService) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.FindByName(ctx, name)
}

// FindHealthy lists products flagged healthy, oldest first.
func (s *ProductService) FindHealthy(ctx context.Context) ([]models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.FindHealthy(ctx)
}

// Update rewrites a product. An absent product yields common.ErrorNotFound;
// a dangling category reference yields common.ErrorCategoryDoesNotExist.
func (s *ProductService) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	var updated *models.Product
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkCategory(ctx, tx, product.CategoryID); err != nil {
			return err
		}
		var updErr error
		updated, updErr = s.repomanager.Products(tx).Update(ctx, product)
		return updErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Products(s.db)
	return repo.Delete(ctx, id)
}

func (s *ProductService) checkCategory(ctx context.Context, tx dbx.DBTX, categoryID int64) error {
	exists, err := s.repomanager.Categories(tx).Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrorCategoryDoesNotExist
	}
	return nil
}
