package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/cart"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/store/mocks"
	"github.com/stretchr/testify/mock"
)

const slug = "pizzaria-bella"

var saoPaulo = mustLocation("America/Sao_Paulo")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Monday 12:00 in São Paulo
var lunchTime = time.Date(2026, 3, 2, 12, 0, 0, 0, saoPaulo)

func testOptions(now time.Time) service.MenuOptions {
	return service.MenuOptions{
		BaseURL:     "https://cardapio.example.com/",
		CountryCode: "55",
		Location:    saoPaulo,
		MergePolicy: cart.MergeIdentical,
		Now:         func() time.Time { return now },
	}
}

func fixtureState() models.CatalogState {
	b := catalog.DefaultBusiness()
	b.Slug = slug
	b.Name = "Pizzaria Bella"
	b.WhatsApp = "(11) 98765-4321"
	b.Settings.DeliveryFee = 500

	return models.CatalogState{
		Business: b,
		Categories: []models.Category{
			{ID: "c1", BusinessID: b.ID, Name: "Pizzas", Order: 1, IsActive: true},
			{ID: "c2", BusinessID: b.ID, Name: "Bebidas", Order: 0, IsActive: true},
			{ID: "c3", BusinessID: b.ID, Name: "Sobremesas", Order: 2, IsActive: false},
		},
		Products: []models.Product{
			{
				ID: "p1", CategoryID: "c1", Name: "Pizza Margherita", IsAvailable: true,
				Variations: []models.Variation{
					{ID: "v1", Name: "Média", Price: 4000},
					{ID: "v2", Name: "Grande", Price: 5500},
				},
				OptionGroups: []models.OptionGroup{
					{ID: "g1", Name: "Borda", MinChoices: 0, MaxChoices: 1, Options: []models.Option{
						{ID: "o1", Name: "Catupiry", Price: 800},
						{ID: "o2", Name: "Cheddar", Price: 700},
					}},
					{ID: "g2", Name: "Adicionais", MinChoices: 0, MaxChoices: 2, Options: []models.Option{
						{ID: "o3", Name: "Bacon", Price: 500},
						{ID: "o4", Name: "Azeitona", Price: 300},
						{ID: "o5", Name: "Milho", Price: 200},
					}},
				},
			},
			{ID: "p2", CategoryID: "c2", Name: "Coca-Cola 2L", Price: 1200, IsAvailable: true, Variations: []models.Variation{}, OptionGroups: []models.OptionGroup{}},
			{ID: "p3", CategoryID: "c3", Name: "Pudim", Price: 900, IsAvailable: true, Variations: []models.Variation{}, OptionGroups: []models.OptionGroup{}},
			{ID: "p4", CategoryID: "c2", Name: "Suco de Laranja", Price: 800, IsAvailable: false, Variations: []models.Variation{}, OptionGroups: []models.OptionGroup{}},
		},
	}
}

// closedState has automatic hours with every day closed.
func closedState() models.CatalogState {
	state := fixtureState()
	for d := range state.Business.OperationalHours {
		state.Business.OperationalHours[d].Closed = true
	}
	return state
}

func newStore(t *testing.T, state func() models.CatalogState) *mocks.CatalogStore {
	t.Helper()

	m := mocks.NewCatalogStore(t)
	m.On("Load", mock.Anything).Return(func(context.Context) models.CatalogState { return state() }).Maybe()

	return m
}
