package models

import "time"

// Transaction is the database row for one recorded amount in a chat group.
// Amount is a signed integer in rupiah; credits are positive, debits negative.
type Transaction struct {
	TransactionID int64     `json:"transactionID"` // Primary Key (BIGSERIAL)
	ChatID        int64     `json:"chatID"`        // Telegram chat/group identifier (Not Null)
	UserName      string    `json:"userName"`      // Display name of the author (Not Null, not unique)
	Amount        int64     `json:"amount"`        // Signed rupiah amount (Not Null)
	Note          string    `json:"note"`          // Free-text keterangan, defaults to ""
	CreatedAt     time.Time `json:"createdAt"`     // Assigned by the database at insert time
}
