package dto

import (
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators wires the closed-enum validators into gin's binding
// engine. The category, period and frequency sets are deliberately closed;
// binding rejects anything outside them before a handler runs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin binding validator engine type %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("expensecategory", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register expensecategory validator: %w", err)
	}

	if err := v.RegisterValidation("budgetperiod", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseBudgetPeriod(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register budgetperiod validator: %w", err)
	}

	if err := v.RegisterValidation("incomefrequency", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseIncomeFrequency(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register incomefrequency validator: %w", err)
	}

	return nil
}
