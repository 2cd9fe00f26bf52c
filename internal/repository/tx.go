package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"promptcraft/backend/internal/logger"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFrom(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// conn returns the transaction carried by ctx, or the pool when there is none.
func conn(ctx context.Context, db *sql.DB) dbtx {
	if tx := txFrom(ctx); tx != nil {
		return tx
	}
	return db
}

// TxFn runs inside a transaction. Repositories called with the ctx it
// receives share that transaction.
type TxFn func(ctx context.Context) error

// TxManager runs a unit of work atomically.
type TxManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}

const (
	defaultTxAttempts = 5
	defaultTxDelay    = 50 * time.Millisecond
)

type txManager struct {
	db       *sql.DB
	attempts uint
	delay    time.Duration
}

func NewTxManager(db *sql.DB) TxManager {
	return &txManager{db: db, attempts: defaultTxAttempts, delay: defaultTxDelay}
}

// ExecTx runs fn in a transaction, committing when fn returns nil and rolling
// back otherwise. Busy and locked errors retry the whole unit of work; any
// other error is returned as-is. A ctx that already carries a transaction
// joins it instead of nesting.
func (m *txManager) ExecTx(ctx context.Context, fn TxFn) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	return retry.Do(
		func() error {
			return m.execOnce(ctx, fn)
		},
		retry.Context(ctx),
		retry.Attempts(m.attempts),
		retry.Delay(m.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(IsBusy),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("transaction retry", "module", "repository", "action", "retry", "resource", "tx", "result", "failed", "attempt", n+1, "error", err)
		}),
	)
}

func (m *txManager) execOnce(ctx context.Context, fn TxFn) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback after a successful commit is a no-op returning ErrTxDone.
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Warn("transaction rollback failed", "module", "repository", "action", "rollback", "resource", "tx", "result", "failed", "error", err)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsBusy reports whether err is a transient SQLITE_BUSY or SQLITE_LOCKED.
func IsBusy(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
