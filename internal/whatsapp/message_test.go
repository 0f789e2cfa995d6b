package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

func sampleOrder(lang enums.Language, notes string) *models.Order {
	return &models.Order{
		GuestName:          "Ana Souza",
		RoomNumber:         "12B",
		Phone:              "+5521999998888",
		DeliveryPreference: enums.DeliveryAtTheDoor,
		Notes:              notes,
		Language:           lang,
		Subtotal:           decimal.RequireFromString("22.50"),
		DeliveryFee:        decimal.RequireFromString("5.00"),
		Total:              decimal.RequireFromString("27.50"),
		Items: []models.OrderItem{
			{Name: "Água Mineral", UnitPrice: decimal.RequireFromString("7.50"), Quantity: 3, Subtotal: decimal.RequireFromString("22.50")},
		},
	}
}

func TestComposePortuguese(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC)
	msg := Compose(sampleOrder(enums.LanguagePT, "sem gelo"), at)

	lines := strings.Split(msg, "\n")
	require.GreaterOrEqual(t, len(lines), 13)
	assert.Equal(t, "*Teruza Hostel Mini Mercado - Novo Pedido*", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "📅 Data: 05/03/2026, 14:30:09", lines[2])
	assert.Equal(t, "👤 Nome: Ana Souza", lines[3])
	assert.Equal(t, "🚪 Quarto: 12B", lines[4])
	assert.Equal(t, "📱 Telefone: +5521999998888", lines[5])
	assert.Equal(t, "🚚 Entrega: Na porta", lines[6])
	assert.Equal(t, "📝 Observações: sem gelo", lines[7])
	assert.Contains(t, msg, "*Itens:*\n• 3x Água Mineral - R$ 22.50")
	assert.Contains(t, msg, "💰 Subtotal: R$ 22.50")
	assert.Contains(t, msg, "🚚 Taxa de entrega: R$ 5.00")
	assert.True(t, strings.HasSuffix(msg, "*Total: R$ 27.50*"))
}

func TestComposeOmitsBlankNotes(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC)
	for _, lang := range []enums.Language{enums.LanguagePT, enums.LanguageEN, enums.LanguageES} {
		msg := Compose(sampleOrder(lang, ""), at)
		assert.NotContains(t, msg, "Observações", "language %s", lang)
		assert.NotContains(t, msg, "📝", "language %s", lang)
	}
}

func TestComposeLocalizesPreferenceAndDate(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC)

	en := sampleOrder(enums.LanguageEN, "")
	en.DeliveryPreference = enums.DeliveryHandToMe
	msg := Compose(en, at)
	assert.Contains(t, msg, "📅 Data: 3/5/2026, 2:30:09 PM")
	assert.Contains(t, msg, "🚚 Entrega: Hand to me")

	es := sampleOrder(enums.LanguageES, "")
	msg = Compose(es, at)
	assert.Contains(t, msg, "📅 Data: 05/03/2026, 14:30:09")
	assert.Contains(t, msg, "🚚 Entrega: En la puerta")
}

func TestComposeUnknownLanguageFallsBackToPortuguese(t *testing.T) {
	order := sampleOrder(enums.Language("fr"), "")
	msg := Compose(order, time.Now())
	assert.Contains(t, msg, "🚚 Entrega: Na porta")
}

func TestLink(t *testing.T) {
	link := Link("+55 (21) 98876-0870", "pedido: água & pão")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5521988760870?text="), link)
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
	assert.Contains(t, link, "%26")
}

func TestLinkTextDecodesBackToMessage(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC)
	order := sampleOrder(enums.LanguagePT, "50% água & pão + café\nsem gelo, por favor")
	message := Compose(order, at)

	parsed, err := url.Parse(Link("+55 (21) 98876-0870", message))
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5521988760870", parsed.Path)
	assert.Equal(t, message, parsed.Query().Get("text"))
}
