// Package checkout turns a guest cart into a stored order and hands
// the guest off to WhatsApp. The hand-off record lives in a single
// redis slot per session and is claimed exactly once by the
// confirmation view.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/internal/cart"
	"github.com/teruzahostel/minimarket-backend/internal/i18n"
	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/internal/settings"
	"github.com/teruzahostel/minimarket-backend/internal/whatsapp"
	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	pkgredis "github.com/teruzahostel/minimarket-backend/pkg/redis"
)

const defaultDDI = "+55"

// Service defines the behavior needed by the checkout controllers.
type Service interface {
	Submit(ctx context.Context, sessionID string, lang enums.Language, input SubmitInput) (*ConfirmationDTO, error)
	Compose(ctx context.Context, sessionID string, lang enums.Language, input SubmitInput) (*ComposeResultDTO, error)
	ClaimConfirmation(ctx context.Context, sessionID string) (*ConfirmationDTO, error)
}

type handoffStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	GetDel(ctx context.Context, key string) (string, error)
	HandoffKey(sessionID string) string
}

type service struct {
	carts      cart.Service
	orders     *orders.Repository
	analytics  *analytics.Repository
	settings   settings.Service
	dbClient   *db.Client
	handoff    handoffStore
	handoffTTL time.Duration
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	Carts      cart.Service
	Orders     *orders.Repository
	Analytics  *analytics.Repository
	Settings   settings.Service
	DBClient   *db.Client
	Handoff    handoffStore
	HandoffTTL time.Duration
}

// NewService constructs a checkout service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart service is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.Analytics == nil {
		return nil, fmt.Errorf("analytics repository is required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings service is required")
	}
	if params.DBClient == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if params.Handoff == nil {
		return nil, fmt.Errorf("handoff store is required")
	}
	if params.HandoffTTL <= 0 {
		return nil, fmt.Errorf("handoff ttl must be positive")
	}
	return &service{
		carts:      params.Carts,
		orders:     params.Orders,
		analytics:  params.Analytics,
		settings:   params.Settings,
		dbClient:   params.DBClient,
		handoff:    params.Handoff,
		handoffTTL: params.HandoffTTL,
	}, nil
}

// Submit validates the form, snapshots the cart into an order, records
// purchase events in the same transaction, and writes the hand-off
// slot. The cart is cleared later, when the hand-off is claimed.
func (s *service) Submit(ctx context.Context, sessionID string, lang enums.Language, input SubmitInput) (*ConfirmationDTO, error) {
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	form, err := validateForm(lang, input)
	if err != nil {
		return nil, err
	}

	view, err := s.loadCheckoutCart(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Status:             enums.OrderStatusPending,
		GuestName:          form.name,
		RoomNumber:         form.room,
		Phone:              form.phone,
		DeliveryPreference: form.preference,
		Notes:              form.notes,
		Language:           lang,
		Subtotal:           view.Subtotal,
		DeliveryFee:        view.DeliveryFee,
		Total:              view.Total,
		Currency:           view.Currency,
		Items:              orderItemsFromCart(view.Items),
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
			return err
		}
		return s.analytics.WithTx(tx).CreateBatch(ctx, purchaseEvents(order))
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	message, link, err := s.composeMessage(ctx, order)
	if err != nil {
		return nil, err
	}

	confirmation := &ConfirmationDTO{
		Order:       summaryFromOrder(order, view.Items),
		WhatsAppURL: link,
		Message:     message,
	}

	payload, err := json.Marshal(confirmation)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode handoff")
	}
	if err := s.handoff.Set(ctx, s.handoff.HandoffKey(sessionID), payload, s.handoffTTL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store handoff")
	}

	// The cart stays intact until the confirmation view claims the
	// hand-off, so a guest who never reaches it keeps their items.
	return confirmation, nil
}

// Compose renders the order message for the current cart without
// persisting anything. It backs the copy-order action on the form.
func (s *service) Compose(ctx context.Context, sessionID string, lang enums.Language, input SubmitInput) (*ComposeResultDTO, error) {
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	form, err := validateForm(lang, input)
	if err != nil {
		return nil, err
	}
	view, err := s.loadCheckoutCart(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		GuestName:          form.name,
		RoomNumber:         form.room,
		Phone:              form.phone,
		DeliveryPreference: form.preference,
		Notes:              form.notes,
		Language:           lang,
		Subtotal:           view.Subtotal,
		DeliveryFee:        view.DeliveryFee,
		Total:              view.Total,
		Currency:           view.Currency,
		Items:              orderItemsFromCart(view.Items),
	}
	return &ComposeResultDTO{Message: whatsapp.Compose(order, time.Now())}, nil
}

// ClaimConfirmation atomically consumes the hand-off slot. A second
// claim, an expired slot, or a corrupt record all read as not found.
func (s *service) ClaimConfirmation(ctx context.Context, sessionID string) (*ConfirmationDTO, error) {
	raw, err := s.handoff.GetDel(ctx, s.handoff.HandoffKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no confirmation pending")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim handoff")
	}

	var confirmation ConfirmationDTO
	if err := json.Unmarshal([]byte(raw), &confirmation); err != nil {
		// The slot was already consumed by the GETDEL; treat the
		// corrupt record as absent.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no confirmation pending")
	}

	// The claim consumed the hand-off; the confirmation is returned
	// even if clearing fails, and the cart key expires on its own TTL.
	_ = s.carts.Clear(ctx, sessionID)
	return &confirmation, nil
}

func (s *service) loadCheckoutCart(ctx context.Context, sessionID string, lang enums.Language) (*cart.View, error) {
	view, err := s.carts.Get(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, i18n.Lookup(lang, "emptyCart"))
	}
	return view, nil
}

func (s *service) composeMessage(ctx context.Context, order *models.Order) (message, link string, err error) {
	number, err := s.settings.WhatsAppNumber(ctx)
	if err != nil {
		return "", "", err
	}
	message = whatsapp.Compose(order, time.Now())
	return message, whatsapp.Link(number.WhatsAppNumber, message), nil
}

type checkoutForm struct {
	name       string
	room       string
	phone      string
	preference enums.DeliveryPreference
	notes      string
}

func validateForm(lang enums.Language, input SubmitInput) (*checkoutForm, error) {
	name := strings.TrimSpace(input.Name)
	room := strings.TrimSpace(input.Room)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || room == "" || phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, i18n.Lookup(lang, "fillAllFields"))
	}

	ddi := strings.TrimSpace(input.DDI)
	switch ddi {
	case "":
		ddi = defaultDDI
	case "OTHER":
		ddi = strings.TrimSpace(input.CustomDDI)
		if ddi == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, i18n.Lookup(lang, "fillAllFields"))
		}
	}

	preference := enums.DeliveryAtTheDoor
	if raw := strings.TrimSpace(input.DeliveryPreference); raw != "" {
		parsed, err := enums.ParseDeliveryPreference(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery_preference must be door or hand")
		}
		preference = parsed
	}

	return &checkoutForm{
		name:       name,
		room:       room,
		phone:      ddi + phone,
		preference: preference,
		notes:      strings.TrimSpace(input.Notes),
	}, nil
}

func orderItemsFromCart(items []cart.ItemDTO) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.LineTotal,
		})
	}
	return out
}

func purchaseEvents(order *models.Order) []models.AnalyticsEvent {
	events := make([]models.AnalyticsEvent, 0, len(order.Items))
	for _, item := range order.Items {
		events = append(events, models.AnalyticsEvent{
			EventType:   enums.AnalyticsEventPurchase,
			ProductID:   item.ProductID,
			ProductName: item.Name,
			OrderID:     &order.ID,
			Quantity:    item.Quantity,
			Language:    order.Language,
		})
	}
	return events
}

func summaryFromOrder(order *models.Order, items []cart.ItemDTO) OrderSummaryDTO {
	return OrderSummaryDTO{
		ID:                 order.ID,
		GuestName:          order.GuestName,
		RoomNumber:         order.RoomNumber,
		Phone:              order.Phone,
		DeliveryPreference: order.DeliveryPreference,
		Notes:              order.Notes,
		Items:              items,
		Subtotal:           order.Subtotal,
		DeliveryFee:        order.DeliveryFee,
		Total:              order.Total,
		Currency:           order.Currency,
	}
}
