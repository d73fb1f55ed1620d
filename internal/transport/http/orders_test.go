package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Lersubem/foodstack/internal/app"
	"github.com/Lersubem/foodstack/internal/domain"
)

func TestHandlePlaceOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	order := domain.Order{
		OrderID:   "order-1",
		OrderTime: now,
		Request: domain.OrderRequest{
			RequestID: "req-1",
			Meals:     []domain.OrderRequestItem{{MealID: "meal-1", Quantity: 1}},
		},
	}
	validBody := `{"requestID":"req-1","meals":[{"id":"meal-1","quantity":1}]}`

	tests := []struct {
		name           string
		method         string
		body           string
		result         app.PlacementResult
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "accepted",
			method:         http.MethodPost,
			body:           validBody,
			result:         app.PlacementAccepted{Order: order},
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"status":"Success"`,
		},
		{
			name:           "invalid request",
			method:         http.MethodPost,
			body:           `{"requestID":"","meals":[]}`,
			result:         app.PlacementInvalid{Errors: []domain.ValidationError{{Code: domain.CodeMissingRequestID}}},
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"status":"InvalidOrderRequest"`,
		},
		{
			name:           "duplicate echo",
			method:         http.MethodPost,
			body:           validBody,
			result:         app.PlacementDuplicate{Existing: order},
			expectedStatus: http.StatusOK,
			expectedSubstr: `"status":"ExistingOrder"`,
		},
		{
			name:           "duplicate conflict",
			method:         http.MethodPost,
			body:           validBody,
			result:         app.PlacementDuplicate{Existing: order, Conflict: true},
			expectedStatus: http.StatusConflict,
			expectedSubstr: `"status":"OrderConflict"`,
		},
		{
			name:           "unknown meals",
			method:         http.MethodPost,
			body:           `{"requestID":"req-1","meals":[{"id":"ghost","quantity":1}]}`,
			result:         app.PlacementUnknownMeals{MealIDs: []string{"ghost"}},
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"invalidMeals":["ghost"]`,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			body:           `{"requestID":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidRequestBody,
		},
		{
			name:           "unknown field rejected",
			method:         http.MethodPost,
			body:           `{"requestID":"req-1","surprise":true}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidRequestBody,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "storage error",
			method:         http.MethodPost,
			body:           validBody,
			serviceErr:     context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOrderPlacer{result: tt.result, err: tt.serviceErr}

			req := httptest.NewRequest(tt.method, "/api/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandlePlaceOrder(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleGetOrder(t *testing.T) {
	t.Parallel()

	order := domain.Order{
		OrderID: "order-1",
		Request: domain.OrderRequest{RequestID: "req-1"},
	}

	tests := []struct {
		name           string
		path           string
		order          *domain.Order
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "by order id",
			path:           "/api/orders/order-1",
			order:          &order,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"orderID":"order-1"`,
		},
		{
			name:           "by request id",
			path:           "/api/orders/by-request/req-1",
			order:          &order,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"requestID":"req-1"`,
		},
		{
			name:           "absent order",
			path:           "/api/orders/missing",
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeOrderNotFound,
		},
		{
			name:           "absent request id",
			path:           "/api/orders/by-request/missing",
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeOrderNotFound,
		},
		{
			name:           "invalid id",
			path:           "/api/orders/x",
			serviceErr:     domain.ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidID,
		},
		{
			name:           "bad path",
			path:           "/api/orders/by-request/",
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOrderGetter{order: tt.order, err: tt.serviceErr}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			HandleGetOrder(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleGetOrder_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/order-1", nil)
	rec := httptest.NewRecorder()

	HandleGetOrder(&stubOrderGetter{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

type stubOrderPlacer struct {
	result app.PlacementResult
	err    error
}

func (s *stubOrderPlacer) PlaceOrder(context.Context, *domain.OrderRequest) (app.PlacementResult, error) {
	return s.result, s.err
}

type stubOrderGetter struct {
	order *domain.Order
	err   error
}

func (s *stubOrderGetter) GetOrderByOrderID(context.Context, string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderGetter) GetOrderByRequestID(context.Context, string) (*domain.Order, error) {
	return s.order, s.err
}
