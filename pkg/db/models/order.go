package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// Order is a guest checkout captured at hand-off time. Monetary columns
// snapshot the cart at creation and never change afterwards.
type Order struct {
	ID                 uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	Status             enums.OrderStatus        `gorm:"column:status;not null;default:'pending'"`
	GuestName          string                   `gorm:"column:guest_name;not null"`
	RoomNumber         string                   `gorm:"column:room_number;not null"`
	Phone              string                   `gorm:"column:phone;not null"`
	DeliveryPreference enums.DeliveryPreference `gorm:"column:delivery_preference;not null"`
	Notes              string                   `gorm:"column:notes;not null;default:''"`
	Language           enums.Language           `gorm:"column:language;not null;default:'pt'"`
	Subtotal           decimal.Decimal          `gorm:"column:subtotal;type:numeric(10,2);not null"`
	DeliveryFee        decimal.Decimal          `gorm:"column:delivery_fee;type:numeric(10,2);not null"`
	Total              decimal.Decimal          `gorm:"column:total;type:numeric(10,2);not null"`
	Currency           string                   `gorm:"column:currency;not null;default:BRL"`
	Items              []OrderItem              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is a priced line snapshot. Product name and unit price are
// copied from the catalog so later catalog edits do not rewrite history.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Name      string          `gorm:"column:name;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
