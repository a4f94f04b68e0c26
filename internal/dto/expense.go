package dto

import (
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a new expense.
// All four fields are mandatory; a submission missing any of them is
// rejected outright.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required,expensecategory"`
	Date        time.Time       `json:"date" binding:"required"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Months    int    `form:"months"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    string(e.Category),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to ListExpensesResponse.
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{
		Expenses:  responses,
		NextToken: nextToken,
	}
}
