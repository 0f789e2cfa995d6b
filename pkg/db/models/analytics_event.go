package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// AnalyticsEvent records a single storefront interaction. Purchase
// events carry the order they belong to so deleting an order can sweep
// its analytics trail in the same transaction.
type AnalyticsEvent struct {
	ID          uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	EventType   enums.AnalyticsEventType `gorm:"column:event_type;not null;index"`
	ProductID   uuid.UUID                `gorm:"column:product_id;type:uuid;not null;index"`
	ProductName string                   `gorm:"column:product_name;not null"`
	OrderID     *uuid.UUID               `gorm:"column:order_id;type:uuid;index"`
	Quantity    int                      `gorm:"column:quantity;not null;default:1"`
	Language    enums.Language           `gorm:"column:language;not null;default:'pt'"`
	CreatedAt   time.Time                `gorm:"column:created_at;autoCreateTime;index"`
}
