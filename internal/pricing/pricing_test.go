package pricing_test

import (
	"math"
	"testing"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/aaravmahajanofficial/easymenu/internal/pricing"
	"github.com/aaravmahajanofficial/easymenu/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineUnitPrice(t *testing.T) {
	product := models.Product{
		ID:    "p1",
		Price: 3000,
		Variations: []models.Variation{
			{ID: "small", Price: 2500},
			{ID: "large", Price: 4000},
		},
	}

	tests := []struct {
		name     string
		sel      models.Selection
		expected money.Cents
	}{
		{
			name:     "Base price without variation",
			sel:      models.Selection{},
			expected: 3000,
		},
		{
			name:     "Variation replaces base price",
			sel:      models.Selection{Variation: &models.Variation{ID: "large", Price: 4000}},
			expected: 4000,
		},
		{
			name: "Options add on top",
			sel: models.Selection{
				Variation: &models.Variation{ID: "small", Price: 2500},
				Options:   []models.SelectedOption{{OptionID: "a", Price: 500}, {OptionID: "b", Price: 250}},
			},
			expected: 3250,
		},
		{
			name:     "Snapshot price wins over catalog",
			sel:      models.Selection{Variation: &models.Variation{ID: "large", Price: 3900}},
			expected: 3900,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pricing.LineUnitPrice(product, tc.sel))
		})
	}
}

func TestVariationWithRequiredGroup(t *testing.T) {
	product := models.Product{
		ID:          "p1",
		Price:       1000,
		IsAvailable: true,
		Variations:  []models.Variation{{ID: "large", Name: "Grande", Price: 1500}},
		OptionGroups: []models.OptionGroup{{
			ID: "g1", Name: "Molho", MinChoices: 1, MaxChoices: 2,
			Options: []models.Option{{ID: "a", Name: "A", Price: 0}, {ID: "b", Name: "B", Price: 200}},
		}},
	}

	t.Run("Both options on top of the variation", func(t *testing.T) {
		sel := selection.ChooseVariation(product, models.Selection{}, "large")
		sel = selection.Toggle(product, sel, "g1", "a")
		sel = selection.Toggle(product, sel, "g1", "b")

		require.True(t, selection.CanAddToCart(product, sel).OK)
		assert.Equal(t, money.Cents(1700), pricing.LineUnitPrice(product, sel))
		assert.Equal(t, "R$ 17,00", money.FormatBRL(pricing.LineUnitPrice(product, sel)))
	})

	t.Run("No option in a required group", func(t *testing.T) {
		sel := selection.ChooseVariation(product, models.Selection{}, "large")

		result := selection.CanAddToCart(product, sel)

		assert.False(t, result.OK)
		assert.Equal(t, models.ReasonBelowMinChoices, result.Reason)
	})
}

func TestCartTotals(t *testing.T) {
	cart := models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Price: 3000, Quantity: 2, SelectedVariation: &models.Variation{ID: "large", Price: 4000}},
		{ProductID: "p2", Price: 800, Quantity: 3, SelectedOptions: []models.SelectedOption{{OptionID: "ice", Price: 100}}},
	}}

	first, err := pricing.LineTotal(cart.Lines[0])
	require.NoError(t, err)
	assert.Equal(t, money.Cents(8000), first)

	second, err := pricing.LineTotal(cart.Lines[1])
	require.NoError(t, err)
	assert.Equal(t, money.Cents(2700), second)

	subtotal, err := pricing.CartSubtotal(cart)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(10700), subtotal)

	total, err := pricing.CartGrandTotal(cart, 500)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(11200), total)
}

func TestCartGrandTotal(t *testing.T) {
	cart := models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Price: 1000, Quantity: 2},
		{ProductID: "p2", Price: 2500, Quantity: 1},
	}}

	total, err := pricing.CartGrandTotal(cart, 500)

	require.NoError(t, err)
	assert.Equal(t, money.Cents(5000), total)
	assert.Equal(t, "R$ 50,00", money.FormatBRL(total))
}

func TestSubtotalIsLinearInQuantity(t *testing.T) {
	carts := []models.Cart{
		{Lines: []models.CartLine{{ProductID: "p1", Price: 1000, Quantity: 1}}},
		{Lines: []models.CartLine{
			{ProductID: "p1", Price: 3000, Quantity: 2, SelectedVariation: &models.Variation{ID: "large", Price: 4000}},
			{ProductID: "p2", Price: 800, Quantity: 3, SelectedOptions: []models.SelectedOption{{OptionID: "ice", Price: 100}}},
		}},
		{Lines: []models.CartLine{
			{ProductID: "p3", Price: 1, Quantity: 7},
			{ProductID: "p4", Price: 999, Quantity: 1, SelectedOptions: []models.SelectedOption{{Price: 1}, {Price: 33}}},
			{ProductID: "p5", Price: 0, Quantity: 4},
		}},
	}

	for i, c := range carts {
		base, err := pricing.CartSubtotal(c)
		require.NoError(t, err)

		doubled := c.Clone()
		for j := range doubled.Lines {
			doubled.Lines[j].Quantity *= 2
		}

		got, err := pricing.CartSubtotal(doubled)
		require.NoError(t, err)
		assert.Equal(t, 2*base, got, "cart %d", i)
	}
}

func TestTotalsOutOfRange(t *testing.T) {
	cart := models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Price: 100, Quantity: 92233720368547759},
	}}

	_, err := pricing.LineTotal(cart.Lines[0])
	assert.ErrorIs(t, err, money.ErrOverflow)

	_, err = pricing.CartSubtotal(cart)
	assert.ErrorIs(t, err, money.ErrOverflow)

	_, err = pricing.CartGrandTotal(cart, 500)
	assert.ErrorIs(t, err, money.ErrOverflow)

	full := models.Cart{Lines: []models.CartLine{{ProductID: "p1", Price: money.Cents(math.MaxInt64), Quantity: 1}}}
	_, err = pricing.CartGrandTotal(full, 1)
	assert.ErrorIs(t, err, money.ErrOverflow)
}

func TestEmptyCart(t *testing.T) {
	subtotal, err := pricing.CartSubtotal(models.Cart{})
	require.NoError(t, err)
	assert.Equal(t, money.Zero, subtotal)

	total, err := pricing.CartGrandTotal(models.Cart{}, 700)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(700), total)
}

func TestNoFloatDrift(t *testing.T) {
	// 0.10 + 0.20 summed ten thousand times stays exact.
	line := models.CartLine{ProductID: "p", Price: 10, Quantity: 1, SelectedOptions: []models.SelectedOption{{Price: 20}}}
	cart := models.Cart{}
	for i := 0; i < 10000; i++ {
		cart.Lines = append(cart.Lines, line)
	}

	subtotal, err := pricing.CartSubtotal(cart)

	require.NoError(t, err)
	assert.Equal(t, money.Cents(300000), subtotal)
	assert.Equal(t, "R$ 3.000,00", money.FormatBRL(subtotal))
}
