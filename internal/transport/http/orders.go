package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Lersubem/foodstack/internal/app"
	"github.com/Lersubem/foodstack/internal/domain"
)

// Placement result discriminators, matched by clients on the "status" field.
const (
	statusSuccess        = "Success"
	statusInvalidRequest = "InvalidOrderRequest"
	statusExistingOrder  = "ExistingOrder"
	statusOrderConflict  = "OrderConflict"
	statusMealNotValid   = "MealNotValid"
)

// OrderPlacer is the minimal interface needed to place orders.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req *domain.OrderRequest) (app.PlacementResult, error)
}

// OrderGetter is the minimal interface needed to look up orders.
type OrderGetter interface {
	GetOrderByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrderByRequestID(ctx context.Context, requestID string) (*domain.Order, error)
}

// HandlePlaceOrder returns an HTTP handler for order placement. Undecodable
// payloads are rejected here; the engine never sees them.
func HandlePlaceOrder(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req orderRequestPayload
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		result, err := svc.PlaceOrder(r.Context(), req.toDomain())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		switch res := result.(type) {
		case app.PlacementAccepted:
			order := orderToResponse(res.Order)
			writeJSON(w, http.StatusCreated, placementResponse{
				Status:  statusSuccess,
				Message: "order placed successfully",
				Order:   &order,
			})
		case app.PlacementInvalid:
			writeJSON(w, http.StatusBadRequest, placementResponse{
				Status:  statusInvalidRequest,
				Message: "order request is invalid",
				Errors:  res.Errors,
			})
		case app.PlacementDuplicate:
			existing := orderToResponse(res.Existing)
			if res.Conflict {
				writeJSON(w, http.StatusConflict, placementResponse{
					Status:        statusOrderConflict,
					Message:       "an order with this requestID already exists with different content",
					ExistingOrder: &existing,
				})
			} else {
				writeJSON(w, http.StatusOK, placementResponse{
					Status:        statusExistingOrder,
					Message:       "existing order for this requestID",
					ExistingOrder: &existing,
				})
			}
		case app.PlacementUnknownMeals:
			writeJSON(w, http.StatusBadRequest, placementResponse{
				Status:       statusMealNotValid,
				Message:      "one or more requested meals do not exist",
				InvalidMeals: res.MealIDs,
			})
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
	}
}

// HandleGetOrder returns an HTTP handler for order lookups by orderID
// (/api/orders/{orderID}) or requestID (/api/orders/by-request/{requestID}).
func HandleGetOrder(svc OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, byRequestID, ok := parseOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		var (
			order *domain.Order
			err   error
		)
		if byRequestID {
			order, err = svc.GetOrderByRequestID(r.Context(), id)
		} else {
			order, err = svc.GetOrderByOrderID(r.Context(), id)
		}
		if err != nil {
			if err == domain.ErrInvalidID {
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, codeOrderNotFound, "order not found")
			return
		}

		writeJSON(w, http.StatusOK, orderToResponse(*order))
	}
}

func parseOrderPath(path string) (id string, byRequestID bool, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "api" || parts[1] != "orders" {
		return "", false, false
	}
	switch len(parts) {
	case 3:
		if parts[2] == "" || parts[2] == "by-request" {
			return "", false, false
		}
		return parts[2], false, true
	case 4:
		if parts[2] != "by-request" || parts[3] == "" {
			return "", false, false
		}
		return parts[3], true, true
	default:
		return "", false, false
	}
}

type orderRequestPayload struct {
	RequestID string             `json:"requestID"`
	Meals     []orderItemPayload `json:"meals"`
}

type orderItemPayload struct {
	MealID   string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (p orderRequestPayload) toDomain() *domain.OrderRequest {
	req := &domain.OrderRequest{RequestID: p.RequestID}
	for _, item := range p.Meals {
		req.Meals = append(req.Meals, domain.OrderRequestItem{
			MealID:   item.MealID,
			Quantity: item.Quantity,
		})
	}
	return req
}

type placementResponse struct {
	Status        string                   `json:"status"`
	Message       string                   `json:"message,omitempty"`
	Order         *orderResponse           `json:"order,omitempty"`
	ExistingOrder *orderResponse           `json:"existingOrder,omitempty"`
	Errors        []domain.ValidationError `json:"errors,omitempty"`
	InvalidMeals  []string                 `json:"invalidMeals,omitempty"`
}

type orderResponse struct {
	OrderID   string            `json:"orderID"`
	OrderTime time.Time         `json:"orderTime"`
	Request   orderRequestReply `json:"request"`
}

type orderRequestReply struct {
	RequestID string             `json:"requestID"`
	Meals     []orderItemPayload `json:"meals"`
}

func orderToResponse(order domain.Order) orderResponse {
	resp := orderResponse{
		OrderID:   order.OrderID,
		OrderTime: order.OrderTime,
		Request:   orderRequestReply{RequestID: order.Request.RequestID},
	}
	for _, item := range order.Request.Meals {
		resp.Request.Meals = append(resp.Request.Meals, orderItemPayload{
			MealID:   item.MealID,
			Quantity: item.Quantity,
		})
	}
	return resp
}
