package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrInvalidSlug = errors.New("slug must contain only lowercase letters, digits and hyphens")
)

var (
	validate    = validator.New()
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// ValidateProduct checks the structural invariants of a product definition.
func ValidateProduct(p models.Product) error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(p.Variations))
	for _, v := range p.Variations {
		if _, ok := seen[v.ID]; ok {
			return fmt.Errorf("%w: variation %q", ErrDuplicateID, v.ID)
		}
		seen[v.ID] = struct{}{}
	}

	groups := make(map[string]struct{}, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		if _, ok := groups[g.ID]; ok {
			return fmt.Errorf("%w: option group %q", ErrDuplicateID, g.ID)
		}
		groups[g.ID] = struct{}{}

		options := make(map[string]struct{}, len(g.Options))
		for _, o := range g.Options {
			if _, ok := options[o.ID]; ok {
				return fmt.Errorf("%w: option %q in group %q", ErrDuplicateID, o.ID, g.ID)
			}
			options[o.ID] = struct{}{}
		}
	}

	return nil
}

func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	return nil
}
