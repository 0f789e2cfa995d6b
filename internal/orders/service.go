// Package orders implements the admin order workflow: listing, status
// transitions, and deletion with its analytics cascade.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	"github.com/teruzahostel/minimarket-backend/pkg/pagination"
)

// Service defines the behavior needed by the admin order controller.
type Service interface {
	List(ctx context.Context, input ListOrdersInput) (*OrderPageDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResultDTO, error)
}

type service struct {
	repo      *Repository
	analytics *analytics.Repository
	dbClient  *db.Client
}

// NewService constructs an order service instance.
func NewService(repo *Repository, analyticsRepo *analytics.Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if analyticsRepo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, analytics: analyticsRepo, dbClient: dbClient}, nil
}

func (s *service) List(ctx context.Context, input ListOrdersInput) (*OrderPageDTO, error) {
	var status *enums.OrderStatus
	if raw := strings.TrimSpace(input.Status); raw != "" {
		parsed, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
		}
		status = &parsed
	}

	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(input.Limit)

	// Fetch one extra row to detect whether another page exists.
	orders, err := s.repo.List(ctx, status, cursor, pagination.LimitWithBuffer(input.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page := &OrderPageDTO{Orders: make([]OrderDTO, 0, len(orders))}
	if len(orders) > limit {
		orders = orders[:limit]
		last := orders[len(orders)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &next
	}
	for _, order := range orders {
		page.Orders = append(page.Orders, fromModel(order))
	}
	return page, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	dto := fromModel(*order)
	return &dto, nil
}

// UpdateStatus applies a transition from the status table. Terminal
// orders and skipped steps are rejected with a state conflict.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*OrderDTO, error) {
	target, err := enums.ParseOrderStatus(strings.TrimSpace(input.Status))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, target),
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	order.Status = target
	dto := fromModel(*order)
	return &dto, nil
}

// Delete removes the order together with its line items and analytics
// trail in one transaction and reports the cascade count.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (*DeleteResultDTO, error) {
	var deletedEvents int64
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		count, err := s.analytics.WithTx(tx).DeleteByOrderID(ctx, id)
		if err != nil {
			return err
		}
		deletedEvents = count
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete order")
	}
	return &DeleteResultDTO{DeletedAnalyticsCount: deletedEvents}, nil
}
