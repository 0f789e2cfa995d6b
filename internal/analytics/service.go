// Package analytics records storefront interaction events and serves
// the admin dashboard aggregates built from them.
package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

const popularCategoriesLimit = 5

// Service defines the behavior needed by the analytics controllers.
type Service interface {
	Track(ctx context.Context, lang enums.Language, input TrackInput) error
	Summary(ctx context.Context) (*SummaryDTO, error)
	Products(ctx context.Context) ([]ProductStatsDTO, error)
	Reset(ctx context.Context) (*ResetResultDTO, error)
}

type eventRepository interface {
	CountByEventType(ctx context.Context) (map[enums.AnalyticsEventType]int64, error)
	ProductStats(ctx context.Context) ([]productStatsRow, error)
	PopularCategories(ctx context.Context, limit int) ([]categoryCount, error)
	OrderStatusCounts(ctx context.Context) (map[enums.OrderStatus]int64, error)
	CompletedRevenue(ctx context.Context) (decimal.Decimal, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type productReader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo       eventRepository
	products   productReader
	dispatcher *Dispatcher
}

// ServiceParams bundles the dependencies required to build an analytics service.
type ServiceParams struct {
	Repo       eventRepository
	Products   productReader
	Dispatcher *Dispatcher
}

// NewService constructs an analytics service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("analytics repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product reader is required")
	}
	if params.Dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}
	return &service{
		repo:       params.Repo,
		products:   params.Products,
		dispatcher: params.Dispatcher,
	}, nil
}

// Track validates the guest event and hands it to the background
// dispatcher. A full queue is not an error: tracking loss is accepted.
func (s *service) Track(ctx context.Context, lang enums.Language, input TrackInput) error {
	eventType, err := enums.ParseAnalyticsEventType(input.EventType)
	if err != nil || !eventType.IsTrackable() {
		return pkgerrors.New(pkgerrors.CodeValidation, "event_type must be view or add_to_cart")
	}

	product, err := s.products.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	s.dispatcher.Enqueue(ctx, models.AnalyticsEvent{
		EventType:   eventType,
		ProductID:   product.ID,
		ProductName: product.NamePT,
		Quantity:    1,
		Language:    lang,
	})
	return nil
}

func (s *service) Summary(ctx context.Context) (*SummaryDTO, error) {
	eventCounts, err := s.repo.CountByEventType(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count events")
	}
	statusCounts, err := s.repo.OrderStatusCounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count orders")
	}
	revenue, err := s.repo.CompletedRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sum revenue")
	}
	categories, err := s.repo.PopularCategories(ctx, popularCategoriesLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rank categories")
	}

	var totalOrders int64
	for _, count := range statusCounts {
		totalOrders += count
	}
	popular := make([]CategoryPurchasesDTO, 0, len(categories))
	for _, row := range categories {
		popular = append(popular, CategoryPurchasesDTO{Category: row.Category, Purchases: row.Total})
	}

	return &SummaryDTO{
		TotalViews:        eventCounts[enums.AnalyticsEventView],
		TotalAddToCart:    eventCounts[enums.AnalyticsEventAddToCart],
		TotalPurchases:    eventCounts[enums.AnalyticsEventPurchase],
		TotalOrders:       totalOrders,
		PendingOrders:     statusCounts[enums.OrderStatusPending],
		CompletedOrders:   statusCounts[enums.OrderStatusCompleted],
		CompletedRevenue:  revenue,
		PopularCategories: popular,
	}, nil
}

func (s *service) Products(ctx context.Context) ([]ProductStatsDTO, error) {
	rows, err := s.repo.ProductStats(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate product stats")
	}

	byProduct := make(map[uuid.UUID]*ProductStatsDTO)
	ordered := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		stats, ok := byProduct[row.ProductID]
		if !ok {
			stats = &ProductStatsDTO{ProductID: row.ProductID, Name: row.ProductName}
			byProduct[row.ProductID] = stats
			ordered = append(ordered, row.ProductID)
		}
		switch row.EventType {
		case enums.AnalyticsEventView:
			stats.Views += row.Total
		case enums.AnalyticsEventAddToCart:
			stats.AddToCart += row.Total
		case enums.AnalyticsEventPurchase:
			stats.Purchases += row.Total
		}
	}

	out := make([]ProductStatsDTO, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, *byProduct[id])
	}
	return out, nil
}

func (s *service) Reset(ctx context.Context) (*ResetResultDTO, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reset analytics")
	}
	return &ResetResultDTO{DeletedCount: deleted}, nil
}
