package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/dimasfh/profitbot/internal/apperrors"
	"github.com/dimasfh/profitbot/internal/core/domain"
	portsrepo "github.com/dimasfh/profitbot/internal/core/ports/repositories"
	"github.com/dimasfh/profitbot/internal/models"
	"github.com/dimasfh/profitbot/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for chat ledger transactions.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction row. The creation timestamp comes
// from the database clock (column default), keeping ordering single-sourced
// across concurrent writers.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (chat_id, user_name, amount, note)
		VALUES ($1, $2, $3, $4)
		RETURNING transaction_id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query, txn.ChatID, txn.UserName, txn.Amount, txn.Note).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert transaction for chat "+formatChatID(txn.ChatID), err)
	}
	return id, nil
}

// SumForDate returns the sum of amounts recorded on the given calendar date, 0 when none.
func (r *PgxTransactionRepository) SumForDate(ctx context.Context, chatID int64, date time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE chat_id = $1 AND created_at::date = $2::date;
	`
	var total int64
	if err := r.pool.QueryRow(ctx, query, chatID, date).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum daily amounts for chat "+formatChatID(chatID), err)
	}
	return total, nil
}

// SumForRange returns the sum of amounts recorded between start and end dates inclusive.
func (r *PgxTransactionRepository) SumForRange(ctx context.Context, chatID int64, start, end time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE chat_id = $1 AND created_at::date >= $2::date AND created_at::date <= $3::date;
	`
	var total int64
	if err := r.pool.QueryRow(ctx, query, chatID, start, end).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum ranged amounts for chat "+formatChatID(chatID), err)
	}
	return total, nil
}

// SumForMonth returns the sum of amounts recorded within the given month.
func (r *PgxTransactionRepository) SumForMonth(ctx context.Context, chatID int64, year int, month time.Month) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE chat_id = $1
		  AND EXTRACT(YEAR FROM created_at) = $2
		  AND EXTRACT(MONTH FROM created_at) = $3;
	`
	var total int64
	if err := r.pool.QueryRow(ctx, query, chatID, year, int(month)).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum monthly amounts for chat "+formatChatID(chatID), err)
	}
	return total, nil
}

// ListForDate retrieves up to limit transactions for the date, oldest first.
func (r *PgxTransactionRepository) ListForDate(ctx context.Context, chatID int64, date time.Time, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT transaction_id, chat_id, user_name, amount, note, created_at
		FROM transactions
		WHERE chat_id = $1 AND created_at::date = $2::date
		ORDER BY created_at ASC
		LIMIT $3;
	`
	rows, err := r.pool.Query(ctx, query, chatID, date, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for chat "+formatChatID(chatID), err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.ChatID,
			&t.UserName,
			&t.Amount,
			&t.Note,
			&t.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for chat "+formatChatID(chatID), err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for chat "+formatChatID(chatID), err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// CountForDate returns the number of transactions recorded on the date.
func (r *PgxTransactionRepository) CountForDate(ctx context.Context, chatID int64, date time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE chat_id = $1 AND created_at::date = $2::date;
	`
	var count int64
	if err := r.pool.QueryRow(ctx, query, chatID, date).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions for chat "+formatChatID(chatID), err)
	}
	return count, nil
}

// DeleteAllForChat removes every transaction for the chat. Zero rows affected
// is not an error; reset is idempotent.
func (r *PgxTransactionRepository) DeleteAllForChat(ctx context.Context, chatID int64) error {
	query := `DELETE FROM transactions WHERE chat_id = $1;`
	if _, err := r.pool.Exec(ctx, query, chatID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transactions for chat "+formatChatID(chatID), err)
	}
	return nil
}

func formatChatID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
