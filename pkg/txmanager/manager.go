package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/eatease/EatEase-BookingService/pkg/dbmetrics"
)

const (
	// maxRetries ограничивает число повторов при конфликтах сериализации
	maxRetries   = 3
	retryBackoff = 25 * time.Millisecond
)

var (
	// ErrRetryLimitExceeded возвращается, когда транзакция не прошла после всех повторов
	ErrRetryLimitExceeded = errors.New("txmanager: serialization retry limit exceeded")
)

// TxBeginner интерфейс для начала транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager запускает функции внутри транзакций с нужным уровнем изоляции.
// Транзакция передаётся вниз через context (dbmetrics.WithTx), поэтому репозитории
// не знают, выполняются они в транзакции или нет.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager on top of db
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
// Serialization failures and lock timeouts are retried a bounded number of
// times; after that the last error is wrapped with ErrRetryLimitExceeded so the
// caller can surface a retryable condition instead of blocking forever.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrRetryLimitExceeded, lastErr)
}

// DoReadOnly runs fn inside a read-only transaction
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

// IsRetryable reports whether err is a transient database error that a fresh
// transaction attempt may resolve: serialization_failure (40001), deadlock
// (40P01) or lock_not_available (55P03).
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}
