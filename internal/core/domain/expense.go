package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single dated, categorized spending record.
// Expenses are immutable once persisted: they are created and deleted,
// never updated in place.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Owning user (Not Null)
	Amount      decimal.Decimal `json:"amount"`    // Non-negative; precise decimal type
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"` // Calendar date; timezone-naive for aggregation
	AuditFields
}
