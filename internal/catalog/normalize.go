// Package catalog holds the structural rules of the catalog document:
// defaults, repair of stored content and the customer-facing view.
package catalog

import (
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
)

// Normalize repairs a decoded state in place so the engine can rely on its
// structural invariants. Missing fields fall back to defaults and negative
// amounts are clamped to zero.
func Normalize(state *models.CatalogState) {
	normalizeBusiness(&state.Business)

	if state.Categories == nil {
		state.Categories = []models.Category{}
	}

	if state.Products == nil {
		state.Products = []models.Product{}
	}

	for i := range state.Categories {
		if state.Categories[i].BusinessID == "" {
			state.Categories[i].BusinessID = state.Business.ID
		}
	}

	for i := range state.Products {
		NormalizeProduct(&state.Products[i])
	}
}

func normalizeBusiness(b *models.Business) {
	def := DefaultBusiness()

	if b.ID == "" {
		b.ID = def.ID
	}

	if b.Slug == "" {
		b.Slug = def.Slug
	}

	if b.Name == "" {
		b.Name = def.Name
	}

	if b.Settings.Currency == "" {
		b.Settings.Currency = def.Settings.Currency
	}

	b.Settings.DeliveryFee = nonNegative(b.Settings.DeliveryFee)
	b.Settings.MinOrderValue = nonNegative(b.Settings.MinOrderValue)

	if b.OperationalHours.IsZero() {
		b.OperationalHours = def.OperationalHours
	}
}

func NormalizeProduct(p *models.Product) {
	p.Price = nonNegative(p.Price)

	if p.Variations == nil {
		p.Variations = []models.Variation{}
	}

	if p.OptionGroups == nil {
		p.OptionGroups = []models.OptionGroup{}
	}

	for i := range p.Variations {
		p.Variations[i].Price = nonNegative(p.Variations[i].Price)
	}

	for i := range p.OptionGroups {
		g := &p.OptionGroups[i]

		if g.MinChoices < 0 {
			g.MinChoices = 0
		}

		if g.MaxChoices < 1 {
			g.MaxChoices = 1
		}

		if g.MinChoices > g.MaxChoices {
			g.MinChoices = g.MaxChoices
		}

		if g.Options == nil {
			g.Options = []models.Option{}
		}

		for j := range g.Options {
			g.Options[j].Price = nonNegative(g.Options[j].Price)
		}
	}
}

func nonNegative(c money.Cents) money.Cents {
	if c < 0 {
		return money.Zero
	}

	return c
}
