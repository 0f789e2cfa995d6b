// Package whatsapp renders checkout hand-off messages and wa.me deep
// links. The message format is part of the storefront contract: staff
// parse these messages by eye all day, so the layout stays stable.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/teruzahostel/minimarket-backend/internal/i18n"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

const messageHeader = "*Teruza Hostel Mini Mercado - Novo Pedido*"

// Compose renders the plain-text order message in the guest's language.
func Compose(order *models.Order, at time.Time) string {
	lang := order.Language
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}

	var b strings.Builder
	b.WriteString(messageHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "📅 Data: %s\n", formatTimestamp(at, lang))
	fmt.Fprintf(&b, "👤 Nome: %s\n", order.GuestName)
	fmt.Fprintf(&b, "🚪 Quarto: %s\n", order.RoomNumber)
	fmt.Fprintf(&b, "📱 Telefone: %s\n", order.Phone)
	fmt.Fprintf(&b, "🚚 Entrega: %s\n", i18n.Lookup(lang, order.DeliveryPreference.TranslationKey()))
	if order.Notes != "" {
		fmt.Fprintf(&b, "📝 Observações: %s\n", order.Notes)
	}
	b.WriteString("\n*Itens:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %dx %s - R$ %s\n", item.Quantity, item.Name, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n💰 Subtotal: R$ %s\n", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "🚚 Taxa de entrega: R$ %s\n", order.DeliveryFee.StringFixed(2))
	fmt.Fprintf(&b, "*Total: R$ %s*", order.Total.StringFixed(2))

	return b.String()
}

// Link builds the wa.me deep link for the destination number with the
// message URL-encoded into the text parameter.
func Link(number string, message string) string {
	// QueryEscape encodes spaces as "+", which WhatsApp renders
	// literally. Percent-encode them instead.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(number), text)
}

func formatTimestamp(at time.Time, lang enums.Language) string {
	switch lang {
	case enums.LanguageEN:
		return at.Format("1/2/2006, 3:04:05 PM")
	default:
		// pt-BR and es-ES share the day-first 24h layout.
		return at.Format("02/01/2006, 15:04:05")
	}
}

func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
