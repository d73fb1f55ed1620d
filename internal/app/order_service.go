package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Lersubem/foodstack/internal/clock"
	"github.com/Lersubem/foodstack/internal/domain"
	"github.com/Lersubem/foodstack/internal/metrics"
	"github.com/google/uuid"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindOrderByRequestID(ctx context.Context, requestID string) (*domain.Order, error)
	CreateOrder(ctx context.Context, order domain.Order) error
}

// MenuCatalog exposes the current orderable items. Placement reads a fresh
// snapshot on every call; nothing is cached across requests.
type MenuCatalog interface {
	GetAllMenus(ctx context.Context) ([]domain.Menu, error)
}

// OrderEventPublisher announces accepted orders to interested consumers.
type OrderEventPublisher interface {
	OrderPlaced(ctx context.Context, order domain.Order) error
}

type OrderService struct {
	repo    OrderRepository
	catalog MenuCatalog
	clock   clock.Clock
	events  OrderEventPublisher
	logger  *log.Logger
}

func NewOrderService(repo OrderRepository, catalog MenuCatalog, clk clock.Clock, events OrderEventPublisher, logger *log.Logger) *OrderService {
	if logger == nil {
		logger = log.Default()
	}
	return &OrderService{
		repo:    repo,
		catalog: catalog,
		clock:   clk,
		events:  events,
		logger:  logger,
	}
}

// ValidateRequest exposes structural validation to callers that want to
// pre-check a request without touching the store.
func (s *OrderService) ValidateRequest(req *domain.OrderRequest) []domain.ValidationError {
	return ValidateRequest(req)
}

// CheckDuplication looks up a previously accepted order for the request's
// requestID (case-insensitive) and classifies the resubmission. A nil result
// means no order exists. A nil request or blank requestID cannot collide with
// anything and also yields nil.
func (s *OrderService) CheckDuplication(ctx context.Context, req *domain.OrderRequest) (*DuplicationResult, error) {
	if req == nil || strings.TrimSpace(req.RequestID) == "" {
		return nil, nil
	}

	existing, err := s.repo.FindOrderByRequestID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	return &DuplicationResult{
		Existing: *existing,
		Conflict: !domain.EquivalentRequests(*req, existing.Request),
	}, nil
}

// PlaceOrder runs the full placement sequence: structural validation,
// duplication check, catalog check, durable write. Client-caused rejections
// come back as typed results; only storage and catalog failures surface as
// errors. The duplication-check-then-write sequence runs in one transaction
// so at most one order is ever accepted per requestID.
func (s *OrderService) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (PlacementResult, error) {
	if errs := ValidateRequest(req); len(errs) > 0 {
		metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return PlacementInvalid{Errors: errs}, nil
	}

	var result PlacementResult
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindOrderByRequestID(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = PlacementDuplicate{
				Existing: *existing,
				Conflict: !domain.EquivalentRequests(*req, existing.Request),
			}
			return nil
		}

		unknown, err := s.unknownMeals(txCtx, *req)
		if err != nil {
			return err
		}
		if len(unknown) > 0 {
			result = PlacementUnknownMeals{MealIDs: unknown}
			return nil
		}

		order := domain.Order{
			OrderID:   uuid.NewString(),
			OrderTime: s.clock.Now(),
			Request:   req.Filtered(),
		}

		if err := s.repo.CreateOrder(txCtx, order); err != nil {
			// A concurrent placement won the race for this requestID.
			// Re-read the winner and classify echo vs conflict.
			if errors.Is(err, domain.ErrRequestIDTaken) {
				existing, err := s.repo.FindOrderByRequestID(txCtx, req.RequestID)
				if err != nil {
					return err
				}
				if existing != nil {
					result = PlacementDuplicate{
						Existing: *existing,
						Conflict: !domain.EquivalentRequests(*req, existing.Request),
					}
					return nil
				}
			}
			return err
		}

		result = PlacementAccepted{Order: order}
		return nil
	})
	if err != nil {
		metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	switch res := result.(type) {
	case PlacementAccepted:
		metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeAccepted).Inc()
		if s.events != nil {
			// Best effort: the order is already durable.
			if err := s.events.OrderPlaced(ctx, res.Order); err != nil {
				s.logger.Printf("WARN: publish order placed orderID=%s: %v", res.Order.OrderID, err)
			}
		}
	case PlacementDuplicate:
		if res.Conflict {
			metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeConflict).Inc()
		} else {
			metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		}
	case PlacementUnknownMeals:
		metrics.OrdersPlaced.WithLabelValues(metrics.OutcomeUnknownMeal).Inc()
	}

	return result, nil
}

// GetOrderByOrderID returns the order or nil when absent.
func (s *OrderService) GetOrderByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.GetOrderByID(ctx, orderID)
}

// GetOrderByRequestID returns the order accepted under the requestID
// (case-insensitive) or nil when absent.
func (s *OrderService) GetOrderByRequestID(ctx context.Context, requestID string) (*domain.Order, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindOrderByRequestID(ctx, requestID)
}

// unknownMeals resolves every requested meal with quantity > 0 against a
// fresh catalog snapshot and returns the IDs that are not orderable,
// deduplicated in first-seen order.
func (s *OrderService) unknownMeals(ctx context.Context, req domain.OrderRequest) ([]string, error) {
	menus, err := s.catalog.GetAllMenus(ctx)
	if err != nil {
		return nil, err
	}

	// Flatten across menus; first occurrence wins on duplicate meal IDs.
	known := make(map[string]struct{})
	for _, menu := range menus {
		for _, meal := range menu.Meals {
			id := strings.ToLower(strings.TrimSpace(meal.ID))
			if id == "" {
				continue
			}
			if _, ok := known[id]; !ok {
				known[id] = struct{}{}
			}
		}
	}

	var unknown []string
	seen := make(map[string]struct{})
	for _, item := range req.Meals {
		if item.Quantity <= 0 {
			continue
		}
		key := strings.ToLower(item.MealID)
		if _, ok := known[key]; ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unknown = append(unknown, item.MealID)
	}
	return unknown, nil
}
