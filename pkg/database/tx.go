package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TxManager opens one database transaction per use-case execution.
type TxManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction is closed by exactly one Commit or Rollback. Rollback after
// Commit is a no-op.
type Transaction interface {
	Commit() error
	Rollback() error
	// Context returns a context that routes PgxIface calls through the transaction.
	Context() context.Context
}

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

type pgxTxManager struct {
	db  PgxIface
	log *zap.Logger
}

func NewTxManager(db PgxIface, log *zap.Logger) TxManager {
	return &pgxTxManager{
		db:  db,
		log: log.With(zap.String("component", "tx_manager")),
	}
}

func (m *pgxTxManager) Begin(ctx context.Context) (Transaction, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		m.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return &pgxTransaction{
		tx:  tx,
		ctx: context.WithValue(ctx, txKey{}, tx),
	}, nil
}

type pgxTransaction struct {
	tx  pgx.Tx
	ctx context.Context
}

func (t *pgxTransaction) Commit() error {
	if err := t.tx.Commit(t.ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *pgxTransaction) Rollback() error {
	// must run even when the request context is already cancelled
	if err := t.tx.Rollback(context.WithoutCancel(t.ctx)); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return nil
		}
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

func (t *pgxTransaction) Context() context.Context {
	return t.ctx
}
