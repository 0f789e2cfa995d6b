package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// ItemDTO is one priced cart line, localized for the guest.
type ItemDTO struct {
	ProductID uuid.UUID         `json:"product_id"`
	Name      string            `json:"name"`
	Type      enums.ProductType `json:"type"`
	ImageURL  *string           `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Quantity  int               `json:"quantity"`
	LineTotal decimal.Decimal   `json:"line_total"`
}

// View is the computed cart the storefront renders.
type View struct {
	Items       []ItemDTO       `json:"items"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
}

func emptyView() *View {
	return &View{
		Items:       []ItemDTO{},
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Total:       decimal.Zero,
		Currency:    "BRL",
	}
}
