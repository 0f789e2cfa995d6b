package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackInput is the public tracking payload.
type TrackInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	EventType string    `json:"event_type" validate:"required"`
}

// CategoryPurchasesDTO ranks a category by purchase events.
type CategoryPurchasesDTO struct {
	Category  string `json:"category"`
	Purchases int64  `json:"purchases"`
}

// SummaryDTO is the admin dashboard aggregate.
type SummaryDTO struct {
	TotalViews        int64                  `json:"total_views"`
	TotalAddToCart    int64                  `json:"total_add_to_cart"`
	TotalPurchases    int64                  `json:"total_purchases"`
	TotalOrders       int64                  `json:"total_orders"`
	PendingOrders     int64                  `json:"pending_orders"`
	CompletedOrders   int64                  `json:"completed_orders"`
	CompletedRevenue  decimal.Decimal        `json:"completed_revenue"`
	PopularCategories []CategoryPurchasesDTO `json:"popular_categories"`
}

// ProductStatsDTO aggregates events per product.
type ProductStatsDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Views     int64     `json:"views"`
	AddToCart int64     `json:"add_to_cart"`
	Purchases int64     `json:"purchases"`
}

// ResetResultDTO reports how many rows a reset removed.
type ResetResultDTO struct {
	DeletedCount int64 `json:"deleted_count"`
}
