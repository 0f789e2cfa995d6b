package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/internal/cart"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// SubmitInput is the guest checkout form.
type SubmitInput struct {
	Name               string `json:"name" validate:"required"`
	Room               string `json:"room" validate:"required"`
	DDI                string `json:"ddi"`
	CustomDDI          string `json:"custom_ddi"`
	Phone              string `json:"phone" validate:"required"`
	DeliveryPreference string `json:"delivery_preference"`
	Notes              string `json:"notes"`
}

// OrderSummaryDTO is the slice of the stored order shown on the
// confirmation view.
type OrderSummaryDTO struct {
	ID                 uuid.UUID                `json:"id"`
	GuestName          string                   `json:"guest_name"`
	RoomNumber         string                   `json:"room_number"`
	Phone              string                   `json:"phone"`
	DeliveryPreference enums.DeliveryPreference `json:"delivery_preference"`
	Notes              string                   `json:"notes"`
	Items              []cart.ItemDTO           `json:"items"`
	Subtotal           decimal.Decimal          `json:"subtotal"`
	DeliveryFee        decimal.Decimal          `json:"delivery_fee"`
	Total              decimal.Decimal          `json:"total"`
	Currency           string                   `json:"currency"`
}

// ConfirmationDTO is the checkout hand-off: the stored order, the
// WhatsApp deep link, and the plain message for manual copying.
type ConfirmationDTO struct {
	Order       OrderSummaryDTO `json:"order"`
	WhatsAppURL string          `json:"whatsapp_url"`
	Message     string          `json:"message"`
}

// ComposeResultDTO carries the plain order message without persisting
// anything, backing the copy-order action.
type ComposeResultDTO struct {
	Message string `json:"message"`
}
