package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/internal/cart"
	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/internal/settings"
	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	pkgredis "github.com/teruzahostel/minimarket-backend/pkg/redis"
)

type fakeCart struct {
	view    *cart.View
	cleared bool
}

func (f *fakeCart) Get(_ context.Context, _ string, _ enums.Language) (*cart.View, error) {
	if f.view == nil {
		return &cart.View{Items: []cart.ItemDTO{}, Currency: "BRL"}, nil
	}
	return f.view, nil
}

func (f *fakeCart) AddItem(_ context.Context, _ string, _ uuid.UUID, _ int, _ enums.Language) (*cart.View, error) {
	panic("not used")
}

func (f *fakeCart) UpdateQuantity(_ context.Context, _ string, _ uuid.UUID, _ int, _ enums.Language) (*cart.View, error) {
	panic("not used")
}

func (f *fakeCart) RemoveItem(_ context.Context, _ string, _ uuid.UUID, _ enums.Language) (*cart.View, error) {
	panic("not used")
}

func (f *fakeCart) Clear(_ context.Context, _ string) error {
	f.cleared = true
	f.view = nil
	return nil
}

func (f *fakeCart) Snapshot(ctx context.Context, sessionID string, lang enums.Language) ([]cart.ItemDTO, error) {
	view, err := f.Get(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}
	return view.Items, nil
}

type fakeSettings struct {
	number string
}

func (f *fakeSettings) WhatsAppNumber(_ context.Context) (*settings.WhatsAppNumberDTO, error) {
	return &settings.WhatsAppNumberDTO{WhatsAppNumber: f.number}, nil
}

func (f *fakeSettings) UpdateWhatsAppNumber(_ context.Context, input settings.UpdateWhatsAppNumberInput) (*settings.WhatsAppNumberDTO, error) {
	f.number = input.WhatsAppNumber
	return &settings.WhatsAppNumberDTO{WhatsAppNumber: f.number}, nil
}

type fakeHandoff struct {
	slots map[string]string
}

func newFakeHandoff() *fakeHandoff {
	return &fakeHandoff{slots: map[string]string{}}
}

func (f *fakeHandoff) Set(_ context.Context, key string, value any, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.slots[key] = string(v)
	case string:
		f.slots[key] = v
	}
	return nil
}

func (f *fakeHandoff) GetDel(_ context.Context, key string) (string, error) {
	value, ok := f.slots[key]
	if !ok {
		return "", pkgredis.ErrNotFound
	}
	delete(f.slots, key)
	return value, nil
}

func (f *fakeHandoff) HandoffKey(sessionID string) string {
	return "teruza:handoff:" + sessionID
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.AnalyticsEvent{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func filledCart() *cart.View {
	water := uuid.New()
	snack := uuid.New()
	return &cart.View{
		Items: []cart.ItemDTO{
			{
				ProductID: water,
				Name:      "Água Mineral",
				Type:      enums.ProductTypeProduct,
				UnitPrice: decimal.RequireFromString("7.50"),
				Quantity:  3,
				LineTotal: decimal.RequireFromString("22.50"),
			},
			{
				ProductID: snack,
				Name:      "Batata Chips",
				Type:      enums.ProductTypeProduct,
				UnitPrice: decimal.RequireFromString("12.00"),
				Quantity:  1,
				LineTotal: decimal.RequireFromString("12.00"),
			},
		},
		ItemCount:   4,
		Subtotal:    decimal.RequireFromString("34.50"),
		DeliveryFee: decimal.RequireFromString("5.00"),
		Total:       decimal.RequireFromString("39.50"),
		Currency:    "BRL",
	}
}

type harness struct {
	svc     Service
	conn    *gorm.DB
	carts   *fakeCart
	handoff *fakeHandoff
}

func buildTestService(t *testing.T) *harness {
	t.Helper()

	conn := openTestDB(t)
	carts := &fakeCart{view: filledCart()}
	handoff := newFakeHandoff()

	svc, err := NewService(ServiceParams{
		Carts:      carts,
		Orders:     orders.NewRepository(conn),
		Analytics:  analytics.NewRepository(conn),
		Settings:   &fakeSettings{number: "5521988760870"},
		DBClient:   db.FromGorm(conn),
		Handoff:    handoff,
		HandoffTTL: time.Hour,
	})
	require.NoError(t, err)
	return &harness{svc: svc, conn: conn, carts: carts, handoff: handoff}
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:               "Ana Souza",
		Room:               "12B",
		Phone:              "21999998888",
		DeliveryPreference: "door",
		Notes:              "sem gelo",
	}
}

func TestSubmitCreatesOrderAndHandoff(t *testing.T) {
	h := buildTestService(t)

	confirmation, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, validInput())
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", confirmation.Order.GuestName)
	assert.Equal(t, "+5521999998888", confirmation.Order.Phone)
	assert.Equal(t, enums.DeliveryAtTheDoor, confirmation.Order.DeliveryPreference)
	assert.True(t, confirmation.Order.Total.Equal(decimal.RequireFromString("39.50")))
	assert.Contains(t, confirmation.WhatsAppURL, "https://wa.me/5521988760870?text=")
	assert.Contains(t, confirmation.Message, "👤 Nome: Ana Souza")
	assert.Contains(t, confirmation.Message, "*Total: R$ 39.50*")

	var stored models.Order
	require.NoError(t, h.conn.Preload("Items").First(&stored, "id = ?", confirmation.Order.ID).Error)
	assert.Equal(t, enums.OrderStatusPending, stored.Status)
	assert.Len(t, stored.Items, 2)
	assert.True(t, stored.Subtotal.Equal(decimal.RequireFromString("34.50")))

	var events []models.AnalyticsEvent
	require.NoError(t, h.conn.Find(&events).Error)
	require.Len(t, events, 2)
	quantities := map[string]int{}
	for _, event := range events {
		assert.Equal(t, enums.AnalyticsEventPurchase, event.EventType)
		require.NotNil(t, event.OrderID)
		assert.Equal(t, stored.ID, *event.OrderID)
		quantities[event.ProductName] = event.Quantity
	}
	assert.Equal(t, 3, quantities["Água Mineral"])
	assert.Equal(t, 1, quantities["Batata Chips"])

	assert.False(t, h.carts.cleared)
	assert.Len(t, h.handoff.slots, 1)
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	h := buildTestService(t)

	input := validInput()
	input.Room = "  "
	_, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Contains(t, err.Error(), "preencha todos os campos")

	input = validInput()
	input.DDI = "OTHER"
	_, err = h.svc.Submit(context.Background(), "sess-1", enums.LanguageEN, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	input = validInput()
	input.DeliveryPreference = "drone"
	_, err = h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, h.conn.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitComposesCustomDDI(t *testing.T) {
	h := buildTestService(t)

	input := validInput()
	input.DDI = "OTHER"
	input.CustomDDI = "+999"
	input.Phone = "12345"
	confirmation, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, input)
	require.NoError(t, err)
	assert.Equal(t, "+99912345", confirmation.Order.Phone)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	h := buildTestService(t)
	h.carts.view = nil

	_, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, validInput())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestClaimConfirmationIsSingleUse(t *testing.T) {
	h := buildTestService(t)

	submitted, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, validInput())
	require.NoError(t, err)

	claimed, err := h.svc.ClaimConfirmation(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, submitted.Order.ID, claimed.Order.ID)
	assert.Equal(t, submitted.WhatsAppURL, claimed.WhatsAppURL)

	_, err = h.svc.ClaimConfirmation(context.Background(), "sess-1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCartClearedOnConfirmationClaimNotSubmit(t *testing.T) {
	h := buildTestService(t)

	_, err := h.svc.Submit(context.Background(), "sess-1", enums.LanguagePT, validInput())
	require.NoError(t, err)
	assert.False(t, h.carts.cleared, "cart should still hold items until the confirmation claims the hand-off")

	_, err = h.svc.ClaimConfirmation(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, h.carts.cleared)
}

func TestClaimConfirmationRejectsCorruptRecord(t *testing.T) {
	h := buildTestService(t)
	key := h.handoff.HandoffKey("sess-1")
	h.handoff.slots[key] = "{not json"

	_, err := h.svc.ClaimConfirmation(context.Background(), "sess-1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
	assert.Empty(t, h.handoff.slots)
	assert.False(t, h.carts.cleared)
}

func TestComposeDoesNotPersist(t *testing.T) {
	h := buildTestService(t)

	result, err := h.svc.Compose(context.Background(), "sess-1", enums.LanguageEN, validInput())
	require.NoError(t, err)
	assert.Contains(t, result.Message, "🚚 Entrega: At the door")
	assert.Contains(t, result.Message, "• 3x Água Mineral - R$ 22.50")

	var count int64
	require.NoError(t, h.conn.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, h.handoff.slots)
	assert.False(t, h.carts.cleared)
}
