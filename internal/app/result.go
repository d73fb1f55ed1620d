package app

import "github.com/Lersubem/foodstack/internal/domain"

// PlacementResult is the outcome of a placement attempt. Exactly one of the
// concrete types below is returned; callers switch exhaustively.
type PlacementResult interface {
	placementResult()
}

// PlacementAccepted carries the newly persisted order.
type PlacementAccepted struct {
	Order domain.Order
}

// PlacementInvalid rejects a structurally invalid request with the full list
// of collected validation errors.
type PlacementInvalid struct {
	Errors []domain.ValidationError
}

// PlacementDuplicate reports an already-accepted order for the same
// requestID. Conflict is false for a content-equivalent resubmission (the
// existing order is echoed) and true when the content differs.
type PlacementDuplicate struct {
	Existing domain.Order
	Conflict bool
}

// PlacementUnknownMeals rejects a request naming meals absent from the
// catalog snapshot, in first-seen order, deduplicated.
type PlacementUnknownMeals struct {
	MealIDs []string
}

func (PlacementAccepted) placementResult()     {}
func (PlacementInvalid) placementResult()      {}
func (PlacementDuplicate) placementResult()    {}
func (PlacementUnknownMeals) placementResult() {}

// DuplicationResult is the outcome of a standalone duplication check. A nil
// *DuplicationResult means no order exists for the requestID.
type DuplicationResult struct {
	Existing domain.Order
	Conflict bool
}
