package domain

import (
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/shopspring/decimal"
)

// IncomeFrequency is how often an income stream pays out.
type IncomeFrequency string

const (
	FrequencyDaily   IncomeFrequency = "daily"
	FrequencyWeekly  IncomeFrequency = "weekly"
	FrequencyMonthly IncomeFrequency = "monthly"
	FrequencyAnnual  IncomeFrequency = "annual"
)

// ParseIncomeFrequency validates a raw string against the frequency enumeration.
func ParseIncomeFrequency(raw string) (IncomeFrequency, error) {
	switch f := IncomeFrequency(raw); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAnnual:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown income frequency %q", apperrors.ErrValidation, raw)
}

// IncomeStream is a recurring source of income. Monthly- and
// annual-equivalent figures are derived with fixed conversion factors and
// never stored.
type IncomeStream struct {
	StreamID  string          `json:"streamID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`   // Owning user (Not Null)
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"` // Positive
	Frequency IncomeFrequency `json:"frequency"`
	AuditFields
}
