package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
)

// ActiveCategories returns active categories in ascending order, ties keeping stored order.
func ActiveCategories(state models.CatalogState) []models.Category {
	out := make([]models.Category, 0, len(state.Categories))
	for _, c := range state.Categories {
		if c.IsActive {
			out = append(out, c)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Category) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return out
}

func VisibleProducts(state models.CatalogState, categoryID string) []models.Product {
	var out []models.Product
	for _, p := range state.Products {
		if p.CategoryID == categoryID && p.IsAvailable {
			out = append(out, p)
		}
	}

	return out
}

// StartingPrice is the lowest variation price, or the base price when there are none.
func StartingPrice(p models.Product) (money.Cents, bool) {
	if len(p.Variations) == 0 {
		return p.Price, false
	}

	lowest := p.Variations[0].Price
	for _, v := range p.Variations[1:] {
		lowest = min(lowest, v.Price)
	}

	return lowest, true
}

func BuildSections(state models.CatalogState) []models.MenuSection {
	categories := ActiveCategories(state)
	sections := make([]models.MenuSection, 0, len(categories))

	for _, c := range categories {
		products := VisibleProducts(state, c.ID)
		section := models.MenuSection{Category: c, Products: make([]models.MenuProduct, 0, len(products))}

		for _, p := range products {
			price, startsAt := StartingPrice(p)
			section.Products = append(section.Products, models.MenuProduct{
				Product:               p,
				DisplayPrice:          price,
				DisplayPriceFormatted: money.FormatBRL(price),
				StartsAt:              startsAt,
			})
		}

		sections = append(sections, section)
	}

	return sections
}

func FindProduct(state models.CatalogState, id string) (models.Product, bool) {
	i := slices.IndexFunc(state.Products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return models.Product{}, false
	}

	return state.Products[i], true
}

func FindCategory(state models.CatalogState, id string) (models.Category, bool) {
	i := slices.IndexFunc(state.Categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		return models.Category{}, false
	}

	return state.Categories[i], true
}

// IsOrderable reports whether a customer may select p: the product must be
// available and its category must exist and be active.
func IsOrderable(state models.CatalogState, p models.Product) bool {
	if !p.IsAvailable {
		return false
	}

	category, ok := FindCategory(state, p.CategoryID)

	return ok && category.IsActive
}

// SearchProducts filters by case-insensitive name substring and, optionally, category.
func SearchProducts(state models.CatalogState, filter models.ProductFilter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]models.Product, 0, len(state.Products))

	for _, p := range state.Products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}

		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}

		out = append(out, p)
	}

	return out
}

func MenuURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/#/m/" + slug
}
