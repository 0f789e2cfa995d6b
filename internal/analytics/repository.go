package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// Repository persists and aggregates analytics events.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a single event.
func (r *Repository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateBatch inserts the events in one statement.
func (r *Repository) CreateBatch(ctx context.Context, events []models.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

// DeleteByOrderID removes events tied to the order and reports how many
// rows were removed.
func (r *Repository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.AnalyticsEvent{})
	return result.RowsAffected, result.Error
}

// DeleteAll clears the event table and reports the deleted row count.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.AnalyticsEvent{})
	return result.RowsAffected, result.Error
}

type eventTypeCount struct {
	EventType enums.AnalyticsEventType
	Total     int64
}

// CountByEventType returns the event totals grouped by type.
func (r *Repository) CountByEventType(ctx context.Context) (map[enums.AnalyticsEventType]int64, error) {
	var rows []eventTypeCount
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("event_type, COUNT(*) AS total").
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[enums.AnalyticsEventType]int64, len(rows))
	for _, row := range rows {
		counts[row.EventType] = row.Total
	}
	return counts, nil
}

type productStatsRow struct {
	ProductID   uuid.UUID
	ProductName string
	EventType   enums.AnalyticsEventType
	Total       int64
}

// ProductStats returns per-product event totals grouped by type.
func (r *Repository) ProductStats(ctx context.Context) ([]productStatsRow, error) {
	var rows []productStatsRow
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("product_id, product_name, event_type, COUNT(*) AS total").
		Group("product_id").
		Group("product_name").
		Group("event_type").
		Scan(&rows).Error
	return rows, err
}

type statusCount struct {
	Status enums.OrderStatus
	Total  int64
}

// OrderStatusCounts returns order totals grouped by status.
func (r *Repository) OrderStatusCounts(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[enums.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// CompletedRevenue sums the totals of completed orders.
func (r *Repository) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("SUM(total)").
		Where("status = ?", enums.OrderStatusCompleted).
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}

type categoryCount struct {
	Category string
	Total    int64
}

// PopularCategories ranks product categories by purchase events.
func (r *Repository) PopularCategories(ctx context.Context, limit int) ([]categoryCount, error) {
	var rows []categoryCount
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("products.category AS category, COUNT(*) AS total").
		Joins("JOIN products ON products.id = analytics_events.product_id").
		Where("analytics_events.event_type = ?", enums.AnalyticsEventPurchase).
		Group("products.category").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
