package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// ItemDTO is a priced order line as returned to the back office.
type ItemDTO struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderDTO is the admin order payload.
type OrderDTO struct {
	ID                 uuid.UUID                `json:"id"`
	Status             enums.OrderStatus        `json:"status"`
	GuestName          string                   `json:"guest_name"`
	RoomNumber         string                   `json:"room_number"`
	Phone              string                   `json:"phone"`
	DeliveryPreference enums.DeliveryPreference `json:"delivery_preference"`
	Notes              string                   `json:"notes"`
	Language           enums.Language           `json:"language"`
	Subtotal           decimal.Decimal          `json:"subtotal"`
	DeliveryFee        decimal.Decimal          `json:"delivery_fee"`
	Total              decimal.Decimal          `json:"total"`
	Currency           string                   `json:"currency"`
	Items              []ItemDTO                `json:"items"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// ListOrdersInput narrows the admin order list.
type ListOrdersInput struct {
	Status string
	Limit  int
	Cursor string
}

// OrderPageDTO is one page of the admin order list.
type OrderPageDTO struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor *string    `json:"next_cursor,omitempty"`
}

// UpdateStatusInput carries the requested transition target.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// DeleteResultDTO reports the cascade effect of deleting an order.
type DeleteResultDTO struct {
	DeletedAnalyticsCount int64 `json:"deleted_analytics_count"`
}

func fromModel(order models.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return OrderDTO{
		ID:                 order.ID,
		Status:             order.Status,
		GuestName:          order.GuestName,
		RoomNumber:         order.RoomNumber,
		Phone:              order.Phone,
		DeliveryPreference: order.DeliveryPreference,
		Notes:              order.Notes,
		Language:           order.Language,
		Subtotal:           order.Subtotal,
		DeliveryFee:        order.DeliveryFee,
		Total:              order.Total,
		Currency:           order.Currency,
		Items:              items,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
