package app

import (
	"strings"

	"github.com/Lersubem/foodstack/internal/domain"
)

const maxMealQuantity = 999

// ValidateRequest checks structural well-formedness of an order request and
// collects every violation instead of stopping at the first. An empty slice
// means the request is valid. No I/O happens here.
func ValidateRequest(req *domain.OrderRequest) []domain.ValidationError {
	var errs []domain.ValidationError

	if req == nil {
		return append(errs, domain.ValidationError{
			Code:    domain.CodeNullRequest,
			Message: "request body is required",
		})
	}

	if strings.TrimSpace(req.RequestID) == "" {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeMissingRequestID,
			Message: "requestID is required",
		})
	}

	nonZero := 0
	if len(req.Meals) == 0 {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeNoMeals,
			Message: "order must contain at least one meal",
		})
	} else {
		for _, item := range req.Meals {
			if strings.TrimSpace(item.MealID) == "" {
				errs = append(errs, domain.ValidationError{
					Code:    domain.CodeMissingMealID,
					Message: "meal id is required",
				})
			}
			if item.Quantity < 0 {
				errs = append(errs, domain.ValidationError{
					Code:    domain.CodeQuantityNegative,
					Message: "quantity cannot be negative",
					MealID:  item.MealID,
				})
			}
			if item.Quantity > maxMealQuantity {
				errs = append(errs, domain.ValidationError{
					Code:    domain.CodeQuantityTooHigh,
					Message: "quantity cannot be greater than 999",
					MealID:  item.MealID,
				})
			}
			if item.Quantity > 0 {
				nonZero++
			}
		}
	}

	// Only reached when every line passed its own checks.
	if len(errs) == 0 && nonZero == 0 {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeAllZeroQuantity,
			Message: "at least one meal must have quantity greater than zero",
		})
	}

	return errs
}
