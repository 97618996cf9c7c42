package catalog

import "github.com/aaravmahajanofficial/easymenu/internal/models"

const (
	DefaultBusinessID  = "b1"
	DefaultSlug        = "meu-cardapio"
	DefaultName        = "Nova Loja"
	DefaultDescription = "Bem-vindo!"
	DefaultCurrency    = "R$"
)

func DefaultHours() models.OperationalHours {
	weekday := models.DayHours{Open: "09:00", Close: "18:00"}

	return models.OperationalHours{
		models.Monday:    weekday,
		models.Tuesday:   weekday,
		models.Wednesday: weekday,
		models.Thursday:  weekday,
		models.Friday:    weekday,
		models.Saturday:  {Open: "09:00", Close: "22:00"},
		models.Sunday:    {Open: "09:00", Close: "18:00", Closed: true},
	}
}

func DefaultBusiness() models.Business {
	return models.Business{
		ID:          DefaultBusinessID,
		Slug:        DefaultSlug,
		Name:        DefaultName,
		Description: DefaultDescription,
		Settings: models.Settings{
			Currency:        DefaultCurrency,
			IsAutomaticOpen: true,
		},
		OperationalHours: DefaultHours(),
	}
}

// DefaultState is what a fresh store starts with.
func DefaultState() models.CatalogState {
	return models.CatalogState{
		Business:   DefaultBusiness(),
		Categories: []models.Category{},
		Products:   []models.Product{},
	}
}
