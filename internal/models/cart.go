package models

import "github.com/aaravmahajanofficial/easymenu/internal/money"

// CartLine snapshots the product as it was when the line was added.
type CartLine struct {
	ProductID         string           `json:"product_id" validate:"required"`
	CategoryID        string           `json:"category_id"`
	Name              string           `json:"name" validate:"required"`
	Description       string           `json:"description,omitempty"`
	Price             money.Cents      `json:"price" validate:"gte=0"`
	ImageURL          string           `json:"image_url,omitempty"`
	Quantity          int              `json:"quantity" validate:"gte=1,lte=9999"`
	SelectedVariation *Variation       `json:"selected_variation,omitempty"`
	SelectedOptions   []SelectedOption `json:"selected_options" validate:"dive"`
}

func (l CartLine) Selection() Selection {
	return Selection{Variation: l.SelectedVariation, Options: l.SelectedOptions}
}

// Product rebuilds the priced part of the product snapshot.
func (l CartLine) Product() Product {
	return Product{
		ID:          l.ProductID,
		CategoryID:  l.CategoryID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		ImageURL:    l.ImageURL,
		IsAvailable: true,
	}
}

func (l CartLine) Clone() CartLine {
	sel := l.Selection().Clone()
	l.SelectedVariation = sel.Variation
	l.SelectedOptions = sel.Options

	return l
}

type Cart struct {
	Lines []CartLine `json:"lines" validate:"dive"`
}

func (c Cart) Clone() Cart {
	out := Cart{Lines: make([]CartLine, len(c.Lines))}
	for i, l := range c.Lines {
		out.Lines[i] = l.Clone()
	}

	return out
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
