package domain

// Validation error codes for order requests. Codes are stable identifiers
// clients can match on; messages are for display only.
const (
	CodeNullRequest      = "NullRequest"
	CodeMissingRequestID = "MissingRequestID"
	CodeNoMeals          = "NoMeals"
	CodeMissingMealID    = "MissingMealID"
	CodeQuantityNegative = "QuantityNegative"
	CodeQuantityTooHigh  = "QuantityTooHigh"
	CodeAllZeroQuantity  = "AllZeroQuantity"
)

// ValidationError describes one structural problem with an order request.
// MealID is set only for per-meal quantity errors.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	MealID  string `json:"mealID,omitempty"`
}

func (e ValidationError) Error() string {
	if e.MealID != "" {
		return e.Code + " (" + e.MealID + "): " + e.Message
	}
	return e.Code + ": " + e.Message
}
