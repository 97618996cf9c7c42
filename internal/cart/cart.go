// Package cart implements the cart ledger. Every operation returns a new cart
// that shares no mutable memory with its input.
package cart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/selection"
)

// MaxQuantity caps the units a single line can hold.
const MaxQuantity = 9999

var (
	ErrLineNotFound     = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("quantity must not be negative")
	ErrQuantityTooLarge = errors.New("quantity exceeds line limit")
)

// MergePolicy decides what AddLine does with a line identical to an existing one.
type MergePolicy int

const (
	// MergeIdentical increments the quantity of the matching line.
	MergeIdentical MergePolicy = iota
	// AlwaysDistinct appends a new line every time.
	AlwaysDistinct
)

func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "merge":
		return MergeIdentical, nil
	case "distinct":
		return AlwaysDistinct, nil
	default:
		return MergeIdentical, fmt.Errorf("unknown cart merge policy %q", s)
	}
}

func (p MergePolicy) String() string {
	if p == AlwaysDistinct {
		return "distinct"
	}

	return "merge"
}

// LineKey identifies a line by product, variation and the set of selected options.
func LineKey(l models.CartLine) string {
	variation := ""
	if l.SelectedVariation != nil {
		variation = l.SelectedVariation.ID
	}

	options := make([]string, 0, len(l.SelectedOptions))
	for _, o := range l.SelectedOptions {
		options = append(options, o.GroupID+":"+o.OptionID)
	}
	slices.Sort(options)

	return l.ProductID + "|" + variation + "|" + strings.Join(options, ",")
}

// AddLine validates the selection and adds one unit of it.
func AddLine(c models.Cart, p models.Product, s models.Selection, policy MergePolicy) (models.Cart, error) {
	if err := selection.Check(p, s); err != nil {
		return c.Clone(), err
	}

	snap := s.Clone()
	line := models.CartLine{
		ProductID:         p.ID,
		CategoryID:        p.CategoryID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		ImageURL:          p.ImageURL,
		Quantity:          1,
		SelectedVariation: snap.Variation,
		SelectedOptions:   snap.Options,
	}

	out := c.Clone()

	if policy == MergeIdentical {
		key := LineKey(line)
		for i := range out.Lines {
			if LineKey(out.Lines[i]) == key {
				if out.Lines[i].Quantity >= MaxQuantity {
					return c.Clone(), fmt.Errorf("%w: %d", ErrQuantityTooLarge, MaxQuantity)
				}
				out.Lines[i].Quantity++
				return out, nil
			}
		}
	}

	out.Lines = append(out.Lines, line)

	return out, nil
}

// SetQuantity sets the quantity of line i. Zero removes the line and values
// above MaxQuantity are rejected.
func SetQuantity(c models.Cart, i, q int) (models.Cart, error) {
	if i < 0 || i >= len(c.Lines) {
		return c.Clone(), fmt.Errorf("%w: index %d", ErrLineNotFound, i)
	}

	if q < 0 {
		return c.Clone(), fmt.Errorf("%w: %d", ErrInvalidQuantity, q)
	}

	if q > MaxQuantity {
		return c.Clone(), fmt.Errorf("%w: %d", ErrQuantityTooLarge, q)
	}

	if q == 0 {
		return RemoveLine(c, i)
	}

	out := c.Clone()
	out.Lines[i].Quantity = q

	return out, nil
}

func RemoveLine(c models.Cart, i int) (models.Cart, error) {
	if i < 0 || i >= len(c.Lines) {
		return c.Clone(), fmt.Errorf("%w: index %d", ErrLineNotFound, i)
	}

	out := c.Clone()
	out.Lines = slices.Delete(out.Lines, i, i+1)

	return out, nil
}

func Increment(c models.Cart, i int) (models.Cart, error) {
	if i < 0 || i >= len(c.Lines) {
		return c.Clone(), fmt.Errorf("%w: index %d", ErrLineNotFound, i)
	}

	return SetQuantity(c, i, c.Lines[i].Quantity+1)
}

// Decrement lowers the quantity by one; a line at quantity 1 is removed.
func Decrement(c models.Cart, i int) (models.Cart, error) {
	if i < 0 || i >= len(c.Lines) {
		return c.Clone(), fmt.Errorf("%w: index %d", ErrLineNotFound, i)
	}

	return SetQuantity(c, i, max(c.Lines[i].Quantity-1, 0))
}

func ItemCount(c models.Cart) int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}

	return n
}
