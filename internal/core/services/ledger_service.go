package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dimasfh/profitbot/internal/core/domain"
	portsrepo "github.com/dimasfh/profitbot/internal/core/ports/repositories"
	portssvc "github.com/dimasfh/profitbot/internal/core/ports/services"
	"github.com/dimasfh/profitbot/internal/dto"
	"github.com/dimasfh/profitbot/internal/utils/monthweek"
)

// LedgerService orchestrates recording and reporting over the transaction store.
// "Today" is always the host-local calendar date; the injectable clock exists
// for tests only.
type LedgerService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	now     func() time.Time
}

func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade) *LedgerService {
	return &LedgerService{txnRepo: txnRepo, now: time.Now}
}

// Ensure LedgerService implements portssvc.LedgerSvcFacade
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// RecordTransaction inserts the transaction and then recomputes the daily,
// weekly and monthly totals so the reply always reflects the insert.
func (s *LedgerService) RecordTransaction(ctx context.Context, chatID int64, userName string, amount int64, note string) (*dto.RecordResult, error) {
	txn := domain.Transaction{
		ChatID:   chatID,
		UserName: userName,
		Amount:   amount,
		Note:     note,
	}
	if _, err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	today := s.now()
	daily, weekly, monthly, err := s.periodTotals(ctx, chatID, today)
	if err != nil {
		return nil, err
	}

	return &dto.RecordResult{
		UserName:     userName,
		Amount:       amount,
		Note:         note,
		Date:         today,
		DailyTotal:   daily,
		WeeklyTotal:  weekly,
		MonthlyTotal: monthly,
	}, nil
}

func (s *LedgerService) Status(ctx context.Context, chatID int64) (*dto.StatusReport, error) {
	today := s.now()
	daily, weekly, monthly, err := s.periodTotals(ctx, chatID, today)
	if err != nil {
		return nil, err
	}
	count, err := s.txnRepo.CountForDate(ctx, chatID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's transactions: %w", err)
	}

	return &dto.StatusReport{
		Date:         today,
		WeekNumber:   monthweek.Number(today),
		DailyTotal:   daily,
		WeeklyTotal:  weekly,
		MonthlyTotal: monthly,
		TodayCount:   count,
	}, nil
}

func (s *LedgerService) DailyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error) {
	today := s.now()
	total, err := s.txnRepo.SumForDate(ctx, chatID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily total: %w", err)
	}
	return &dto.PeriodReport{Date: today, Total: total}, nil
}

func (s *LedgerService) WeeklyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error) {
	today := s.now()
	start, end := monthweek.Range(today)
	total, err := s.txnRepo.SumForRange(ctx, chatID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly total: %w", err)
	}
	return &dto.PeriodReport{Date: today, WeekNumber: monthweek.Number(today), Total: total}, nil
}

func (s *LedgerService) MonthlyReport(ctx context.Context, chatID int64) (*dto.PeriodReport, error) {
	today := s.now()
	total, err := s.txnRepo.SumForMonth(ctx, chatID, today.Year(), today.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly total: %w", err)
	}
	return &dto.PeriodReport{Date: today, Total: total}, nil
}

func (s *LedgerService) History(ctx context.Context, chatID int64, limit int) (*dto.HistoryReport, error) {
	today := s.now()
	txns, err := s.txnRepo.ListForDate(ctx, chatID, today, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's transactions: %w", err)
	}

	report := &dto.HistoryReport{Date: today, Entries: make([]dto.HistoryEntry, len(txns))}
	for i, txn := range txns {
		report.Entries[i] = dto.HistoryEntry{
			UserName:   txn.UserName,
			Amount:     txn.Amount,
			Note:       txn.Note,
			RecordedAt: txn.CreatedAt,
		}
	}
	if len(txns) == 0 {
		return report, nil
	}

	total, err := s.txnRepo.SumForDate(ctx, chatID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily total for history: %w", err)
	}
	report.DailyTotal = total
	return report, nil
}

func (s *LedgerService) Reset(ctx context.Context, chatID int64) error {
	if err := s.txnRepo.DeleteAllForChat(ctx, chatID); err != nil {
		return fmt.Errorf("failed to reset chat ledger: %w", err)
	}
	return nil
}

// periodTotals fetches the daily, week-of-month and monthly sums for the date.
func (s *LedgerService) periodTotals(ctx context.Context, chatID int64, today time.Time) (daily, weekly, monthly int64, err error) {
	daily, err = s.txnRepo.SumForDate(ctx, chatID, today)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to sum daily total: %w", err)
	}
	start, end := monthweek.Range(today)
	weekly, err = s.txnRepo.SumForRange(ctx, chatID, start, end)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to sum weekly total: %w", err)
	}
	monthly, err = s.txnRepo.SumForMonth(ctx, chatID, today.Year(), today.Month())
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to sum monthly total: %w", err)
	}
	return daily, weekly, monthly, nil
}
