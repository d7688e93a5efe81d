// Package database provides the PostgreSQL connection pool and the
// unit-of-work handle used by every repository. Repositories never open
// connections themselves; they receive a Querier so single-statement calls
// and multi-step transactions go through the same code path.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/matiscalella/lms/pkg/logger"
)

// Querier is the subset of database/sql used by repositories. Both *sql.DB
// (autocommit) and *sql.Tx (inside a unit-of-work) satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UnitOfWork is the transaction boundary handle. All writes of one workflow
// go through the same handle; it must not be shared across goroutines.
//
// Close is safe to defer unconditionally: it rolls back anything not yet
// committed and releases the underlying connection on every exit path.
type UnitOfWork interface {
	// Querier returns the handle repositories execute against.
	Querier() Querier
	// Tx exposes the underlying *sql.Tx for transaction-scoped collaborators
	// (e.g. the event bus publisher). Nil for non-SQL test doubles.
	Tx() *sql.Tx
	// Commit finalizes all writes made through this unit-of-work.
	Commit() error
	// Rollback undoes them. Best-effort: failures are logged, never returned,
	// so cleanup paths are not interrupted.
	Rollback()
	// Close rolls back if Commit has not run and releases the resource.
	Close()
}

// TxProvider hands out unit-of-work handles and autocommit access.
// Database implements it; tests substitute an in-memory fake.
type TxProvider interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Querier() Querier
}

// Database wraps the pgx-backed *sql.DB pool.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pgx-backed pool against url and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for infrastructure collaborators.
func (d *Database) DB() *sql.DB { return d.db }

// Querier returns the autocommit handle for single-statement operations.
func (d *Database) Querier() Querier { return d.db }

// Ping checks pool health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close releases the pool.
func (d *Database) Close() {
	_ = d.db.Close()
}

// Begin starts a unit-of-work on an exclusive connection with implicit
// autocommit disabled.
func (d *Database) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &sqlUnitOfWork{tx: tx, log: d.log}, nil
}

type sqlUnitOfWork struct {
	tx   *sql.Tx
	log  logger.Logger
	done bool
}

func (u *sqlUnitOfWork) Querier() Querier { return u.tx }

func (u *sqlUnitOfWork) Tx() *sql.Tx { return u.tx }

func (u *sqlUnitOfWork) Commit() error {
	if u.done {
		return sql.ErrTxDone
	}
	u.done = true
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (u *sqlUnitOfWork) Rollback() {
	if u.done {
		return
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil && u.log != nil {
		u.log.Error("rollback failed", "error", err)
	}
}

func (u *sqlUnitOfWork) Close() {
	u.Rollback()
}

// WithTx runs fn inside one unit-of-work with scoped acquisition: the handle
// is released on every exit path, a failing fn triggers rollback and the
// original error is surfaced, a successful fn is committed.
func WithTx(ctx context.Context, p TxProvider, fn func(uow UnitOfWork) error) error {
	uow, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Close()

	if err := fn(uow); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}
