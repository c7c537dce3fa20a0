package repomanager

import (
	"context"
	"database/sql"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/dbx"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/categories"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/products"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/users"
)

// RepositoryManager vends repository instances bound to a DBTX, so the
// same constructors serve both plain connections and transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Products(db dbx.DBTX) products.Repository
}
