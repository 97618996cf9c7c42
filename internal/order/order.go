// Package order serializes a cart into the WhatsApp order message.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/aaravmahajanofficial/easymenu/internal/pricing"
)

const DefaultCountryCode = "55"

// RenderOrderMessage produces the order text. Lines keep cart order and the
// final total adds the business delivery fee to subtotal.
func RenderOrderMessage(b models.Business, c models.Cart, subtotal money.Cents) (string, error) {
	total, err := subtotal.Add(b.Settings.DeliveryFee)
	if err != nil {
		return "", err
	}

	items := make([]string, 0, len(c.Lines))
	for i, l := range c.Lines {
		lineTotal, err := pricing.LineTotal(l)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i, err)
		}

		variation := ""
		if l.SelectedVariation != nil {
			variation = " (" + l.SelectedVariation.Name + ")"
		}

		items = append(items, fmt.Sprintf("*%dx %s%s* - %s", l.Quantity, l.Name, variation, money.FormatBRL(lineTotal)))
	}

	delivery := "Entrega Grátis"
	if fee := b.Settings.DeliveryFee; fee > 0 {
		delivery = "Taxa de Entrega: " + money.FormatBRL(fee)
	}

	var sb strings.Builder
	sb.WriteString("🚀 *NOVO PEDIDO*\n\n")
	sb.WriteString(strings.Join(items, "\n"))
	sb.WriteString("\n\n---\n")
	sb.WriteString(delivery)
	sb.WriteString("\n*Total Final: ")
	sb.WriteString(money.FormatBRL(total))
	sb.WriteString("*")

	return sb.String(), nil
}

// PhoneDigits strips everything but ASCII digits.
func PhoneDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)
}

var componentUnescaper = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// EncodeComponent percent-encodes s as a URI component: spaces become %20 and
// the marks !'()* stay literal.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// WhatsAppLink builds the wa.me deep link that carries the message.
func WhatsAppLink(b models.Business, message, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	return "https://wa.me/" + countryCode + PhoneDigits(b.WhatsApp) + "?text=" + EncodeComponent(message)
}
