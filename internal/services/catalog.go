package service

import (
	"context"
	stdErrors "errors"
	"html"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	GetState(ctx context.Context) (*models.CatalogState, error)
	Overview(ctx context.Context) (*models.Overview, error)

	UpdateBusiness(ctx context.Context, req *models.UpdateBusinessRequest) (*models.Business, error)
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Business, error)
	UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.Business, error)

	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ToggleCategory(ctx context.Context, id string) (*models.Category, error)

	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ToggleProductAvailability(ctx context.Context, id string) (*models.Product, error)
}

type catalogService struct {
	// serializes load-modify-save cycles
	mu       sync.Mutex
	store    store.CatalogStore
	opts     MenuOptions
	sanitize *bluemonday.Policy
	newID    func() string
}

func NewCatalogService(s store.CatalogStore, opts MenuOptions) CatalogService {
	return &catalogService{
		store:    s,
		opts:     opts,
		sanitize: bluemonday.StrictPolicy(),
		newID:    uuid.NewString,
	}
}

// clean strips markup from operator text. The policy escapes entities, which
// are turned back into plain characters since the value is never rendered as HTML here.
func (s *catalogService) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitize.Sanitize(text)))
}

// mutate runs fn on the current state and saves the result when fn succeeds.
func (s *catalogService) mutate(ctx context.Context, fn func(state *models.CatalogState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.Load(ctx)
	if err := fn(&state); err != nil {
		return err
	}

	s.store.Save(ctx, state)

	return nil
}

func (s *catalogService) GetState(ctx context.Context) (*models.CatalogState, error) {
	state := s.store.Load(ctx)
	return &state, nil
}

func (s *catalogService) Overview(ctx context.Context) (*models.Overview, error) {
	state := s.store.Load(ctx)

	overview := &models.Overview{
		ProductCount:  len(state.Products),
		CategoryCount: len(state.Categories),
		IsOpen:        s.opts.isOpen(state.Business),
		MenuURL:       s.opts.menuURL(state.Business.Slug),
	}

	for _, p := range state.Products {
		if p.IsAvailable {
			overview.AvailableProductCount++
		}
	}

	for _, c := range state.Categories {
		if c.IsActive {
			overview.ActiveCategoryCount++
		}
	}

	return overview, nil
}

func (s *catalogService) UpdateBusiness(ctx context.Context, req *models.UpdateBusinessRequest) (*models.Business, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if err := catalog.ValidateSlug(slug); err != nil {
		return nil, errors.AddValidationError("slug", "must contain only lowercase letters, digits and hyphens").WithError(err)
	}

	var updated models.Business
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		b := &state.Business
		b.Name = s.clean(req.Name)
		b.Slug = slug
		b.WhatsApp = strings.TrimSpace(req.WhatsApp)
		b.Description = s.clean(req.Description)
		b.LogoURL = strings.TrimSpace(req.LogoURL)
		b.BannerURL = strings.TrimSpace(req.BannerURL)

		updated = *b
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Business profile updated", slog.String("slug", slug))

	return &updated, nil
}

func (s *catalogService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Business, error) {
	var updated models.Business
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		settings := &state.Business.Settings
		if currency := strings.TrimSpace(req.Currency); currency != "" {
			settings.Currency = currency
		}
		settings.DeliveryFee = req.DeliveryFee
		settings.MinOrderValue = req.MinOrderValue
		settings.ServiceTax = req.ServiceTax
		settings.IsAutomaticOpen = req.IsAutomaticOpen

		updated = state.Business
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *catalogService) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.Business, error) {
	days := make(map[models.Weekday]models.DayHours, len(req.Days))
	for key, hours := range req.Days {
		day, ok := models.ParseWeekday(key)
		if !ok {
			return nil, errors.AddValidationError("days", "unknown weekday "+key)
		}
		days[day] = hours
	}

	var updated models.Business
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		for day, hours := range days {
			state.Business.OperationalHours[day] = hours
		}

		updated = state.Business
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	var created models.Category
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		created = models.Category{
			ID:         s.newID(),
			BusinessID: state.Business.ID,
			Name:       s.clean(req.Name),
			Order:      len(state.Categories),
			IsActive:   true,
		}
		if req.Order != nil {
			created.Order = *req.Order
		}
		if req.IsActive != nil {
			created.IsActive = *req.IsActive
		}

		state.Categories = append(state.Categories, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Category created", slog.String("categoryId", created.ID))

	return &created, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error) {
	var updated models.Category
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		c, err := categoryAt(state, id)
		if err != nil {
			return err
		}

		c.Name = s.clean(req.Name)
		if req.Order != nil {
			c.Order = *req.Order
		}
		if req.IsActive != nil {
			c.IsActive = *req.IsActive
		}

		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCategory removes the category only; its products stay and drop out of the menu.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, func(state *models.CatalogState) error {
		n := len(state.Categories)
		state.Categories = slices.DeleteFunc(state.Categories, func(c models.Category) bool { return c.ID == id })
		if len(state.Categories) == n {
			return errors.NotFoundError("Category not found").WithDetail(id)
		}

		return nil
	})
}

func (s *catalogService) ToggleCategory(ctx context.Context, id string) (*models.Category, error) {
	var updated models.Category
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		c, err := categoryAt(state, id)
		if err != nil {
			return err
		}

		c.IsActive = !c.IsActive
		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return catalog.SearchProducts(s.store.Load(ctx), filter), nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	var created models.Product
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		if len(state.Categories) == 0 {
			return errors.BadRequestError("Crie uma categoria primeiro!")
		}

		product, err := s.buildProduct(state, s.newID(), req, true)
		if err != nil {
			return err
		}

		state.Products = append(state.Products, product)
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("productId", created.ID))

	return &created, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req *models.ProductRequest) (*models.Product, error) {
	var updated models.Product
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		i := slices.IndexFunc(state.Products, func(p models.Product) bool { return p.ID == id })
		if i < 0 {
			return errors.NotFoundError("Product not found").WithDetail(id)
		}

		product, err := s.buildProduct(state, id, req, state.Products[i].IsAvailable)
		if err != nil {
			return err
		}

		state.Products[i] = product
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.mutate(ctx, func(state *models.CatalogState) error {
		n := len(state.Products)
		state.Products = slices.DeleteFunc(state.Products, func(p models.Product) bool { return p.ID == id })
		if len(state.Products) == n {
			return errors.NotFoundError("Product not found").WithDetail(id)
		}

		return nil
	})
}

func (s *catalogService) ToggleProductAvailability(ctx context.Context, id string) (*models.Product, error) {
	var updated models.Product
	err := s.mutate(ctx, func(state *models.CatalogState) error {
		i := slices.IndexFunc(state.Products, func(p models.Product) bool { return p.ID == id })
		if i < 0 {
			return errors.NotFoundError("Product not found").WithDetail(id)
		}

		state.Products[i].IsAvailable = !state.Products[i].IsAvailable
		updated = state.Products[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// buildProduct turns the request into a product, assigning ids to new
// variations, groups and options. available is used when the request leaves it unset.
func (s *catalogService) buildProduct(state *models.CatalogState, id string, req *models.ProductRequest, available bool) (models.Product, error) {
	if _, ok := catalog.FindCategory(*state, req.CategoryID); !ok {
		return models.Product{}, errors.AddValidationError("category_id", "category does not exist")
	}

	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	p := models.Product{
		ID:           id,
		CategoryID:   req.CategoryID,
		Name:         s.clean(req.Name),
		Description:  s.clean(req.Description),
		Price:        req.Price,
		ImageURL:     strings.TrimSpace(req.ImageURL),
		IsAvailable:  available,
		IsFeatured:   req.IsFeatured,
		Variations:   make([]models.Variation, len(req.Variations)),
		OptionGroups: make([]models.OptionGroup, len(req.OptionGroups)),
	}

	for i, v := range req.Variations {
		v.Name = s.clean(v.Name)
		v.Description = s.clean(v.Description)
		if v.ID == "" {
			v.ID = s.newID()
		}
		p.Variations[i] = v
	}

	for i, g := range req.OptionGroups {
		g.Name = s.clean(g.Name)
		if g.ID == "" {
			g.ID = s.newID()
		}

		options := make([]models.Option, len(g.Options))
		for j, o := range g.Options {
			o.Name = s.clean(o.Name)
			if o.ID == "" {
				o.ID = s.newID()
			}
			options[j] = o
		}
		g.Options = options

		p.OptionGroups[i] = g
	}

	if err := catalog.ValidateProduct(p); err != nil {
		return models.Product{}, productValidationError(err)
	}

	return p, nil
}

func productValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if stdErrors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return errors.AddValidationError(first.Namespace(), first.Tag()).WithError(err)
	}

	if stdErrors.Is(err, catalog.ErrDuplicateID) {
		return errors.ValidationError("Duplicate id in product definition").WithDetail(err.Error()).WithError(err)
	}

	return errors.ValidationError("Invalid product").WithError(err)
}

func categoryAt(state *models.CatalogState, id string) (*models.Category, error) {
	i := slices.IndexFunc(state.Categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		return nil, errors.NotFoundError("Category not found").WithDetail(id)
	}

	return &state.Categories[i], nil
}
