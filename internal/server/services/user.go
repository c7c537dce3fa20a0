// Package services contains server-side business logic. This file implements
// UserService: registration, login with JWT issuance, and account CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/dbx"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/auth"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/config"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Register: create users with bcrypt-hashed passwords
// - Login: verify credentials and mint a bearer token
// - Update/Delete/GetAll/GetByID: account maintenance
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	hasher      *auth.PasswordHasher
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
		hasher:      auth.NewPasswordHasher(cfg.BcryptCost),
	}
}

// Tokens exposes the token service for the HTTP auth filter.
func (s *UserService) Tokens() *auth.TokenService {
	return s.tokens
}

// Register creates a new user. The Password field carries the plaintext on
// entry and the bcrypt hash after the call. A taken login yields
// common.ErrorLoginAlreadyExists.
func (s *UserService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	user.Password = hash

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			return nil, common.ErrorLoginAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a session with a
// prefixed bearer token and a cleared password. An unknown login and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, login string, password string) (*models.UserSession, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidLoginPassword
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, common.ErrorInvalidLoginPassword
	}

	token, err := s.tokens.Issue(user.Login)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &models.UserSession{
		ID:    user.ID,
		Name:  user.Name,
		Login: user.Login,
		Photo: user.Photo,
		Token: "Bearer " + token,
	}, nil
}

// FindByLogin looks up a user account by its exact login.
func (s *UserService) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByLogin(ctx, login)
}

// GetByID returns a single account or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// GetAll lists every account.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetAll(ctx)
}

// Update rewrites an existing account inside a transaction. The incoming
// Password is always treated as plaintext and re-hashed, even when the client
// echoes back an unchanged value.
func (s *UserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	user.Password = hash

	var updated *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByID(ctx, user.ID); err != nil {
			return err
		}
		var updErr error
		updated, updErr = repo.Update(ctx, user)
		return updErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorLoginAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %v", err)
	}
	return updated, nil
}

// Delete removes an account or returns common.ErrorNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Users(s.db)
	return repo.Delete(ctx, id)
}
