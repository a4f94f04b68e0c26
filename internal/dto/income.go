package dto

import (
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeStreamRequest defines the data needed to add an income stream.
type CreateIncomeStreamRequest struct {
	Source    string          `json:"source" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Frequency string          `json:"frequency" binding:"required,incomefrequency"`
}

// IncomeStreamResponse defines the data returned for an income stream,
// including its normalized equivalents.
type IncomeStreamResponse struct {
	StreamID          string          `json:"streamID"`
	Source            string          `json:"source"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
	AnnualEquivalent  decimal.Decimal `json:"annualEquivalent"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListIncomeStreamsResponse wraps the streams with the combined totals.
type ListIncomeStreamsResponse struct {
	Streams      []IncomeStreamResponse `json:"streams"`
	MonthlyTotal decimal.Decimal        `json:"monthlyTotal"`
	AnnualTotal  decimal.Decimal        `json:"annualTotal"`
}

// ToIncomeStreamResponse converts a domain.IncomeStream to IncomeStreamResponse DTO.
func ToIncomeStreamResponse(s *domain.IncomeStream, monthly, annual decimal.Decimal) IncomeStreamResponse {
	return IncomeStreamResponse{
		StreamID:          s.StreamID,
		Source:            s.Source,
		Amount:            s.Amount,
		Frequency:         string(s.Frequency),
		MonthlyEquivalent: monthly,
		AnnualEquivalent:  annual,
		CreatedAt:         s.CreatedAt,
	}
}
