package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/aaravmahajanofficial/easymenu/internal/pricing"
	"github.com/aaravmahajanofficial/easymenu/internal/selection"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
)

type MenuService interface {
	GetMenu(ctx context.Context, slug string) (*models.MenuView, error)
	ValidateSelection(ctx context.Context, slug string, req *models.SelectionRequest) (*models.SelectionResponse, error)
	ToggleOption(ctx context.Context, slug string, req *models.ToggleOptionRequest) (*models.SelectionResponse, error)
}

type menuService struct {
	store store.CatalogStore
	opts  MenuOptions
}

func NewMenuService(s store.CatalogStore, opts MenuOptions) MenuService {
	return &menuService{store: s, opts: opts}
}

func (s *menuService) GetMenu(ctx context.Context, slug string) (*models.MenuView, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	return &models.MenuView{
		Business: state.Business,
		IsOpen:   s.opts.isOpen(state.Business),
		MenuURL:  s.opts.menuURL(state.Business.Slug),
		Sections: catalog.BuildSections(state),
	}, nil
}

// ValidateSelection reports whether the selection may enter the cart and what one unit would cost.
func (s *menuService) ValidateSelection(ctx context.Context, slug string, req *models.SelectionRequest) (*models.SelectionResponse, error) {
	product, err := s.visibleProduct(ctx, slug, req.ProductID)
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, product, selection.Resolve(product, req.Selection)), nil
}

func (s *menuService) ToggleOption(ctx context.Context, slug string, req *models.ToggleOptionRequest) (*models.SelectionResponse, error) {
	product, err := s.visibleProduct(ctx, slug, req.ProductID)
	if err != nil {
		return nil, err
	}

	current := selection.Resolve(product, req.Selection)
	next := selection.Toggle(product, current, req.GroupID, req.OptionID)

	return s.describe(ctx, product, next), nil
}

func (s *menuService) visibleProduct(ctx context.Context, slug, productID string) (models.Product, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return models.Product{}, err
	}

	product, ok := catalog.FindProduct(state, productID)
	if !ok {
		return models.Product{}, errors.NotFoundError("Product not found").WithDetail(productID)
	}

	if !catalog.IsOrderable(state, product) {
		return models.Product{}, errors.ProductUnavailableError("Product is not available")
	}

	return product, nil
}

func (s *menuService) describe(ctx context.Context, product models.Product, sel models.Selection) *models.SelectionResponse {
	result := selection.CanAddToCart(product, sel)
	if !result.OK {
		middleware.LoggerFromContext(ctx).Debug("Selection incomplete",
			slog.String("productId", product.ID),
			slog.String("reason", string(result.Reason)),
			slog.String("groupId", result.GroupID))
	}

	unit := pricing.LineUnitPrice(product, sel)

	return &models.SelectionResponse{
		Selection:          sel,
		Result:             result,
		UnitPrice:          unit,
		UnitPriceFormatted: money.FormatBRL(unit),
	}
}
