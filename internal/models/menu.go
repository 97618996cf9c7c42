package models

import (
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/shopspring/decimal"
)

// customer menu

type MenuProduct struct {
	Product
	DisplayPrice          money.Cents `json:"display_price"`
	DisplayPriceFormatted string      `json:"display_price_formatted"`
	StartsAt              bool        `json:"starts_at"`
}

type MenuSection struct {
	Category Category      `json:"category"`
	Products []MenuProduct `json:"products"`
}

type MenuView struct {
	Business Business      `json:"business"`
	IsOpen   bool          `json:"is_open"`
	MenuURL  string        `json:"menu_url"`
	Sections []MenuSection `json:"sections"`
}

type SelectionRequest struct {
	ProductID string         `json:"product_id" validate:"required"`
	Selection SelectionInput `json:"selection"`
}

type ToggleOptionRequest struct {
	ProductID string         `json:"product_id" validate:"required"`
	Selection SelectionInput `json:"selection"`
	GroupID   string         `json:"group_id" validate:"required"`
	OptionID  string         `json:"option_id" validate:"required"`
}

type SelectionResponse struct {
	Selection          Selection       `json:"selection"`
	Result             SelectionResult `json:"result"`
	UnitPrice          money.Cents     `json:"unit_price"`
	UnitPriceFormatted string          `json:"unit_price_formatted"`
}

// cart

type AddLineRequest struct {
	Cart      Cart           `json:"cart"`
	ProductID string         `json:"product_id" validate:"required"`
	Selection SelectionInput `json:"selection"`
}

type UpdateLineRequest struct {
	Cart     Cart `json:"cart"`
	Quantity *int `json:"quantity" validate:"required"`
}

type CartRequest struct {
	Cart Cart `json:"cart"`
}

type LineQuote struct {
	Index              int         `json:"index"`
	UnitPrice          money.Cents `json:"unit_price"`
	LineTotal          money.Cents `json:"line_total"`
	LineTotalFormatted string      `json:"line_total_formatted"`
}

type CartQuote struct {
	Cart                 Cart        `json:"cart"`
	Lines                []LineQuote `json:"lines"`
	ItemCount            int         `json:"item_count"`
	Subtotal             money.Cents `json:"subtotal"`
	DeliveryFee          money.Cents `json:"delivery_fee"`
	Total                money.Cents `json:"total"`
	SubtotalFormatted    string      `json:"subtotal_formatted"`
	DeliveryFeeFormatted string      `json:"delivery_fee_formatted"`
	TotalFormatted       string      `json:"total_formatted"`
}

type CheckoutResponse struct {
	Message        string      `json:"message"`
	WhatsAppURL    string      `json:"whatsapp_url"`
	Subtotal       money.Cents `json:"subtotal"`
	DeliveryFee    money.Cents `json:"delivery_fee"`
	Total          money.Cents `json:"total"`
	TotalFormatted string      `json:"total_formatted"`
}

// operator dashboard

type UpdateBusinessRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Slug        string `json:"slug" validate:"required,max=80"`
	WhatsApp    string `json:"whatsapp" validate:"max=32"`
	Description string `json:"description" validate:"max=500"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	BannerURL   string `json:"banner_url" validate:"omitempty,url"`
}

type UpdateSettingsRequest struct {
	Currency        string          `json:"currency" validate:"omitempty,max=8"`
	DeliveryFee     money.Cents     `json:"delivery_fee" validate:"gte=0"`
	MinOrderValue   money.Cents     `json:"min_order_value" validate:"gte=0"`
	ServiceTax      decimal.Decimal `json:"service_tax"`
	IsAutomaticOpen bool            `json:"is_automatic_open"`
}

// UpdateHoursRequest replaces only the weekdays it names.
type UpdateHoursRequest struct {
	Days map[string]DayHours `json:"days" validate:"required,min=1,dive,keys,oneof=segunda terca quarta quinta sexta sabado domingo,endkeys"`
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive *bool  `json:"is_active"`
	Order    *int   `json:"order" validate:"omitempty,gte=0"`
}

type ProductRequest struct {
	CategoryID   string        `json:"category_id" validate:"required"`
	Name         string        `json:"name" validate:"required,max=120"`
	Description  string        `json:"description" validate:"max=1000"`
	Price        money.Cents   `json:"price" validate:"gte=0"`
	ImageURL     string        `json:"image_url" validate:"omitempty,url"`
	IsAvailable  *bool         `json:"is_available"`
	IsFeatured   bool          `json:"is_featured"`
	Variations   []Variation   `json:"variations" validate:"dive"`
	OptionGroups []OptionGroup `json:"option_groups" validate:"dive"`
}

type ProductFilter struct {
	Query      string
	CategoryID string
}

type Overview struct {
	ProductCount          int    `json:"product_count"`
	AvailableProductCount int    `json:"available_product_count"`
	CategoryCount         int    `json:"category_count"`
	ActiveCategoryCount   int    `json:"active_category_count"`
	IsOpen                bool   `json:"is_open"`
	MenuURL               string `json:"menu_url"`
}
