package dto

import "time"

// RecordResult is returned after a transaction is recorded, carrying the
// aggregates recomputed on a store state that already includes the insert.
type RecordResult struct {
	UserName     string    `json:"userName"`
	Amount       int64     `json:"amount"`
	Note         string    `json:"note"`
	Date         time.Time `json:"date"`
	DailyTotal   int64     `json:"dailyTotal"`
	WeeklyTotal  int64     `json:"weeklyTotal"`
	MonthlyTotal int64     `json:"monthlyTotal"`
}

// StatusReport summarises a chat's ledger for today, this week-of-month and
// this month.
type StatusReport struct {
	Date         time.Time `json:"date"`
	WeekNumber   int       `json:"weekNumber"`
	DailyTotal   int64     `json:"dailyTotal"`
	WeeklyTotal  int64     `json:"weeklyTotal"`
	MonthlyTotal int64     `json:"monthlyTotal"`
	TodayCount   int64     `json:"todayCount"`
}

// PeriodReport is a single-period total (daily, weekly or monthly).
// WeekNumber is only set for weekly reports.
type PeriodReport struct {
	Date       time.Time `json:"date"`
	WeekNumber int       `json:"weekNumber,omitempty"`
	Total      int64     `json:"total"`
}

// HistoryEntry is one line of today's transaction history.
type HistoryEntry struct {
	UserName   string    `json:"userName"`
	Amount     int64     `json:"amount"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recordedAt"`
}

// HistoryReport lists today's transactions in insertion order with the daily total.
type HistoryReport struct {
	Date       time.Time      `json:"date"`
	Entries    []HistoryEntry `json:"entries"`
	DailyTotal int64          `json:"dailyTotal"`
}
