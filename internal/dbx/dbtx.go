// Package dbx holds the small database plumbing shared by every repository:
// the DBTX interface that lets one constructor serve both a connection pool
// and an open transaction, and WithTx for running multi-statement work
// atomically.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that repositories are allowed to touch.
// *sql.DB and *sql.Tx both satisfy it, so a repository bound to a DBTX works
// unchanged inside WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx opens a transaction, hands fn a transactional DBTX, and commits if
// fn returns nil. A non-nil error or a panic rolls the transaction back;
// panics are re-raised after the rollback.
//
// Used wherever a check must hold until the write lands, e.g. verifying a
// category exists before inserting a product that references it:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := m.Products(tx)
//	    ...
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
