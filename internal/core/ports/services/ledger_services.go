package services

import (
	"context"

	"github.com/dimasfh/profitbot/internal/dto"
)

// LedgerReaderSvc defines the report operations over a chat's ledger.
type LedgerReaderSvc interface {
	// Status summarises today's, this week's and this month's totals plus today's count.
	Status(ctx context.Context, chatID int64) (*dto.StatusReport, error)

	// DailyReport returns today's total.
	DailyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error)

	// WeeklyReport returns the total for the current week-of-month window.
	WeeklyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error)

	// MonthlyReport returns the total for the current month.
	MonthlyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error)

	// History lists up to limit of today's transactions in insertion order.
	History(ctx context.Context, chatID int64, limit int) (*dto.HistoryReport, error)
}

// LedgerWriterSvc defines the mutating operations over a chat's ledger.
type LedgerWriterSvc interface {
	// RecordTransaction persists a parsed amount and returns the refreshed aggregates.
	RecordTransaction(ctx context.Context, chatID int64, userName string, amount int64, note string) (*dto.RecordResult, error)

	// Reset wipes all transactions for the chat. Idempotent.
	Reset(ctx context.Context, chatID int64) error
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
