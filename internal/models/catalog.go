package models

import "github.com/aaravmahajanofficial/easymenu/internal/money"

type Category struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Name       string `json:"name" validate:"required"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

// Variation carries an absolute price that replaces the product base price.
type Variation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Price       money.Cents `json:"price" validate:"gte=0"`
	Description string      `json:"description,omitempty"`
}

// Option carries a price delta added on top of the base price.
type Option struct {
	ID    string      `json:"id"`
	Name  string      `json:"name" validate:"required"`
	Price money.Cents `json:"price" validate:"gte=0"`
}

type OptionGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" validate:"required"`
	MinChoices int      `json:"min_choices" validate:"gte=0"`
	MaxChoices int      `json:"max_choices" validate:"gte=1,gtefield=MinChoices"`
	Options    []Option `json:"options" validate:"dive"`
}

func (g OptionGroup) Option(id string) (Option, bool) {
	for _, o := range g.Options {
		if o.ID == id {
			return o, true
		}
	}

	return Option{}, false
}

type Product struct {
	ID           string        `json:"id"`
	CategoryID   string        `json:"category_id" validate:"required"`
	Name         string        `json:"name" validate:"required"`
	Description  string        `json:"description"`
	Price        money.Cents   `json:"price" validate:"gte=0"`
	ImageURL     string        `json:"image_url,omitempty"`
	IsAvailable  bool          `json:"is_available"`
	IsFeatured   bool          `json:"is_featured"`
	Variations   []Variation   `json:"variations" validate:"dive"`
	OptionGroups []OptionGroup `json:"option_groups" validate:"dive"`
}

func (p Product) Variation(id string) (Variation, bool) {
	for _, v := range p.Variations {
		if v.ID == id {
			return v, true
		}
	}

	return Variation{}, false
}

func (p Product) OptionGroup(id string) (OptionGroup, bool) {
	for _, g := range p.OptionGroups {
		if g.ID == id {
			return g, true
		}
	}

	return OptionGroup{}, false
}

// CatalogState is the whole persisted document.
type CatalogState struct {
	Business   Business   `json:"business"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}
