// Package selection validates and edits a customer's choice of variation and options.
package selection

import (
	"fmt"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
)

// RejectedError wraps a negative verdict so it can travel as an error.
type RejectedError struct {
	Result models.SelectionResult
}

func (e *RejectedError) Error() string {
	if e.Result.GroupID != "" {
		return fmt.Sprintf("selection rejected: %s (group %s)", e.Result.Reason, e.Result.GroupID)
	}

	return fmt.Sprintf("selection rejected: %s", e.Result.Reason)
}

func reject(reason models.RejectReason, groupID string) models.SelectionResult {
	return models.SelectionResult{Reason: reason, GroupID: groupID}
}

// CanAddToCart checks a selection against the product definition. Selections
// built outside Toggle are rejected when they break a group's bounds, never
// truncated.
func CanAddToCart(p models.Product, s models.Selection) models.SelectionResult {
	if len(p.Variations) > 0 {
		if s.Variation == nil {
			return reject(models.ReasonMissingVariation, "")
		}

		if _, ok := p.Variation(s.Variation.ID); !ok {
			return reject(models.ReasonMissingVariation, "")
		}
	} else if s.Variation != nil {
		return reject(models.ReasonUnknownVariation, "")
	}

	counts := make(map[string]int, len(p.OptionGroups))
	seen := make(map[[2]string]struct{}, len(s.Options))

	for _, opt := range s.Options {
		g, ok := p.OptionGroup(opt.GroupID)
		if !ok {
			return reject(models.ReasonUnknownOption, opt.GroupID)
		}

		if _, ok := g.Option(opt.OptionID); !ok {
			return reject(models.ReasonUnknownOption, opt.GroupID)
		}

		key := [2]string{opt.GroupID, opt.OptionID}
		if _, dup := seen[key]; dup {
			return reject(models.ReasonUnknownOption, opt.GroupID)
		}
		seen[key] = struct{}{}

		counts[opt.GroupID]++
	}

	for _, g := range p.OptionGroups {
		n := counts[g.ID]

		if n < g.MinChoices {
			return reject(models.ReasonBelowMinChoices, g.ID)
		}

		if n > g.MaxChoices {
			return reject(models.ReasonAboveMaxChoices, g.ID)
		}
	}

	return models.SelectionResult{OK: true}
}

// Check is CanAddToCart reported as an error.
func Check(p models.Product, s models.Selection) error {
	if res := CanAddToCart(p, s); !res.OK {
		return &RejectedError{Result: res}
	}

	return nil
}

// Toggle flips one option. Deselecting always succeeds. Selecting into a full
// group is a no-op, except for single-choice groups where the new option
// replaces the old one. Unknown ids leave the selection unchanged.
func Toggle(p models.Product, s models.Selection, groupID, optionID string) models.Selection {
	out := s.Clone()

	g, ok := p.OptionGroup(groupID)
	if !ok {
		return out
	}

	opt, ok := g.Option(optionID)
	if !ok {
		return out
	}

	count := 0
	for i, so := range out.Options {
		if so.GroupID != groupID {
			continue
		}

		if so.OptionID == optionID {
			out.Options = append(out.Options[:i], out.Options[i+1:]...)
			return out
		}

		count++
	}

	if count >= g.MaxChoices {
		if g.MaxChoices != 1 {
			return out
		}

		kept := out.Options[:0]
		for _, so := range out.Options {
			if so.GroupID != groupID {
				kept = append(kept, so)
			}
		}
		out.Options = kept
	}

	out.Options = append(out.Options, models.SelectedOption{
		GroupID:    g.ID,
		GroupName:  g.Name,
		OptionID:   opt.ID,
		OptionName: opt.Name,
		Price:      opt.Price,
	})

	return out
}

// ChooseVariation sets the variation snapshot. Unknown ids leave the selection unchanged.
func ChooseVariation(p models.Product, s models.Selection, variationID string) models.Selection {
	out := s.Clone()

	v, ok := p.Variation(variationID)
	if !ok {
		return out
	}

	out.Variation = &v

	return out
}

// Resolve turns client-sent ids into a snapshot taken from the live product.
// Ids the product does not know are kept bare so that CanAddToCart rejects them.
func Resolve(p models.Product, in models.SelectionInput) models.Selection {
	out := models.Selection{Options: make([]models.SelectedOption, 0, len(in.Options))}

	if in.VariationID != "" {
		v, ok := p.Variation(in.VariationID)
		if !ok {
			v = models.Variation{ID: in.VariationID}
		}
		out.Variation = &v
	}

	for _, ref := range in.Options {
		so := models.SelectedOption{GroupID: ref.GroupID, OptionID: ref.OptionID}

		if g, ok := p.OptionGroup(ref.GroupID); ok {
			so.GroupName = g.Name
			if o, ok := g.Option(ref.OptionID); ok {
				so.OptionName = o.Name
				so.Price = o.Price
			}
		}

		out.Options = append(out.Options, so)
	}

	return out
}
