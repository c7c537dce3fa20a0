package categories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(7))
	mock.ExpectQuery(`INSERT\s+INTO\s+categories`).
		WithArgs("Pizzas", "Stone-oven pizzas", "").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(),
		&models.Category{Name: "Pizzas", Description: "Stone-oven pizzas"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected category: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+categories\s+WHERE\s+id`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByName_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "photo"}).
		AddRow(int64(1), "Pizzas", "Stone-oven pizzas", "").
		AddRow(int64(3), "Vegan pizzas", "No animal products", "")
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+categories\s+WHERE\s+name\s+ILIKE`).
		WithArgs("pizza").
		WillReturnRows(rows)

	got, err := repo.FindByName(context.Background(), "pizza")
	if err != nil {
		t.Fatalf("FindByName error: %v", err)
	}
	if len(got) != 2 || got[1].Name != "Vegan pizzas" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 1)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !ok {
		t.Fatalf("want true")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+categories\s+SET`).
		WithArgs("Pizzas", "desc", "", int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(),
		&models.Category{ID: 99, Name: "Pizzas", Description: "desc"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+categories`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
