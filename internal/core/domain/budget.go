package domain

import (
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the period a budget goal's target amount applies to.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodAnnual  BudgetPeriod = "annual"
)

// ParseBudgetPeriod validates a raw string against the period enumeration.
func ParseBudgetPeriod(raw string) (BudgetPeriod, error) {
	switch p := BudgetPeriod(raw); p {
	case PeriodMonthly, PeriodAnnual:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown budget period %q", apperrors.ErrValidation, raw)
}

// BudgetGoal is a user-defined spending ceiling for a category.
// The spent figure is derived at read time from the expense set and is
// never stored. Goals are not deduplicated per category; duplicates are
// evaluated independently.
type BudgetGoal struct {
	GoalID       string          `json:"goalID"` // Primary Key (UUID)
	UserID       string          `json:"userID"` // Owning user (Not Null)
	Category     Category        `json:"category"`
	TargetAmount decimal.Decimal `json:"targetAmount"` // Positive
	Period       BudgetPeriod    `json:"period"`
	AuditFields
}
