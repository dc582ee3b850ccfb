package repositories

import (
	"context"
	"time"

	"github.com/dimasfh/profitbot/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// All operations are scoped by chat ID; absent rows yield zero values, never errors.
type TransactionReader interface {
	// SumForDate returns the sum of amounts recorded on the given calendar date.
	SumForDate(ctx context.Context, chatID int64, date time.Time) (int64, error)

	// SumForRange returns the sum of amounts recorded between start and end dates, inclusive.
	SumForRange(ctx context.Context, chatID int64, start, end time.Time) (int64, error)

	// SumForMonth returns the sum of amounts recorded in the given month.
	SumForMonth(ctx context.Context, chatID int64, year int, month time.Month) (int64, error)

	// ListForDate retrieves up to limit transactions for the date, ascending by creation time.
	ListForDate(ctx context.Context, chatID int64, date time.Time, limit int) ([]domain.Transaction, error)

	// CountForDate returns the number of transactions recorded on the date.
	CountForDate(ctx context.Context, chatID int64, date time.Time) (int64, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns its store-assigned ID.
	// The creation timestamp is assigned by the store, not the caller.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// DeleteAllForChat irreversibly removes every transaction for the chat.
	// Deleting an already-empty chat succeeds silently.
	DeleteAllForChat(ctx context.Context, chatID int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
