// Package pricing computes line, subtotal and grand total amounts in centavos.
package pricing

import (
	"fmt"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
)

// LineUnitPrice is the variation price (or the base price when no variation is
// selected) plus every selected option delta. Deltas come from the snapshot.
func LineUnitPrice(p models.Product, s models.Selection) money.Cents {
	unit := p.Price
	if s.Variation != nil {
		unit = s.Variation.Price
	}

	for _, o := range s.Options {
		unit += o.Price
	}

	return unit
}

// LineTotal fails with money.ErrOverflow when the quantity pushes the amount
// out of range.
func LineTotal(l models.CartLine) (money.Cents, error) {
	return LineUnitPrice(l.Product(), l.Selection()).Mul(l.Quantity)
}

func CartSubtotal(c models.Cart) (money.Cents, error) {
	var total money.Cents
	for i, l := range c.Lines {
		line, err := LineTotal(l)
		if err != nil {
			return money.Zero, fmt.Errorf("line %d: %w", i, err)
		}

		if total, err = total.Add(line); err != nil {
			return money.Zero, fmt.Errorf("line %d: %w", i, err)
		}
	}

	return total, nil
}

// CartGrandTotal adds the flat delivery fee. The fee applies even to an empty cart.
func CartGrandTotal(c models.Cart, deliveryFee money.Cents) (money.Cents, error) {
	subtotal, err := CartSubtotal(c)
	if err != nil {
		return money.Zero, err
	}

	return subtotal.Add(deliveryFee)
}
