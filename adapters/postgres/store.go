package postgres

import (
	"context"
	"fmt"

	"mindwell/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens and pings a PostgreSQL connection pool
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

type txKey struct{}

// TxManager implements ports.Transactor for sqlx. The transaction travels
// in the context; repositories called inside fn join it transparently.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a transactor over the shared connection pool
func NewTxManager(db *sqlx.DB) ports.Transactor {
	return &TxManager{db: db}
}

// WithinTx runs fn inside one transaction, committing on nil and rolling
// back the whole unit on any error or panic.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// extFrom returns the ambient transaction when one is in flight,
// otherwise the pool itself
func extFrom(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
