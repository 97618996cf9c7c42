package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/availability"
	"github.com/aaravmahajanofficial/easymenu/internal/cart"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
)

// MenuOptions carries the menu settings shared by the customer and operator services.
type MenuOptions struct {
	BaseURL     string
	CountryCode string
	Location    *time.Location
	MergePolicy cart.MergePolicy
	Now         func() time.Time
}

func NewMenuOptions(cfg config.Menu) (MenuOptions, error) {
	loc, err := cfg.Location()
	if err != nil {
		return MenuOptions{}, err
	}

	policy, err := cart.ParseMergePolicy(cfg.CartMergePolicy)
	if err != nil {
		return MenuOptions{}, fmt.Errorf("invalid menu config: %w", err)
	}

	return MenuOptions{
		BaseURL:     cfg.PublicBaseURL,
		CountryCode: cfg.CountryCode,
		Location:    loc,
		MergePolicy: policy,
		Now:         time.Now,
	}, nil
}

// now is the wall clock in the business time zone.
func (o MenuOptions) now() time.Time {
	clock := o.Now
	if clock == nil {
		clock = time.Now
	}

	if o.Location == nil {
		return clock()
	}

	return clock().In(o.Location)
}

func (o MenuOptions) isOpen(b models.Business) bool {
	return availability.IsOpen(b, o.now())
}

func (o MenuOptions) menuURL(slug string) string {
	return catalog.MenuURL(o.BaseURL, slug)
}

// loadMenu returns the catalog when slug names the store.
func loadMenu(ctx context.Context, s store.CatalogStore, slug string) (models.CatalogState, error) {
	state := s.Load(ctx)
	if state.Business.Slug != slug {
		return models.CatalogState{}, errors.NotFoundError("Menu not found").WithDetail(slug)
	}

	return state, nil
}
