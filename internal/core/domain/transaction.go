package domain

import "time"

// Transaction represents one recorded amount in a chat group's ledger.
// Rows are immutable once written; the only delete path is a full chat reset.
type Transaction struct {
	TransactionID int64     `json:"transactionID"`
	ChatID        int64     `json:"chatID"`
	UserName      string    `json:"userName"`
	Amount        int64     `json:"amount"` // signed rupiah, credits positive
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"` // store-assigned, sole ordering key
}
