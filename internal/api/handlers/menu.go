package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/utils"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type MenuHandler struct {
	menuService service.MenuService
	validator   *validator.Validate
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService, validator: validator.New()}
}

// GetMenu godoc
//	@Summary		Get the public menu
//	@Description	Returns the business profile, whether the store is open right now and the active categories with their available products.
//	@Tags			Menu
//	@Produce		json
//	@Param			slug	path		string					true	"Menu slug"
//	@Success		200		{object}	models.MenuView			"Menu"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Failure		429		{object}	response.ErrorResponse	"Too many requests"
//	@Router			/menu/{slug} [get]
func (h *MenuHandler) GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		slug := r.PathValue("slug")

		menu, err := h.menuService.GetMenu(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to load menu", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, menu)
	}
}

// ValidateSelection godoc
//	@Summary		Validate a product selection
//	@Description	Resolves the chosen variation and options against the live product and reports whether it may be added to the cart, together with the unit price.
//	@Tags			Menu
//	@Accept			json
//	@Produce		json
//	@Param			slug		path		string						true	"Menu slug"
//	@Param			selection	body		models.SelectionRequest		true	"Product and selection"
//	@Success		200			{object}	models.SelectionResponse	"Verdict and unit price"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid request body"
//	@Failure		404			{object}	response.ErrorResponse		"Menu or product not found"
//	@Failure		409			{object}	response.ErrorResponse		"Product unavailable"
//	@Router			/menu/{slug}/selection/validate [post]
func (h *MenuHandler) ValidateSelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SelectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid selection input")
			return
		}

		resp, err := h.menuService.ValidateSelection(r.Context(), r.PathValue("slug"), &req)
		if err != nil {
			logger.Warn("Selection validation failed", slog.String("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// ToggleOption godoc
//	@Summary		Toggle an option in a selection
//	@Description	Selects or deselects one option. Selecting into a group that is already full is ignored.
//	@Tags			Menu
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string						true	"Menu slug"
//	@Param			toggle	body		models.ToggleOptionRequest	true	"Current selection and the option to toggle"
//	@Success		200		{object}	models.SelectionResponse	"Next selection"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid request body"
//	@Failure		404		{object}	response.ErrorResponse		"Menu or product not found"
//	@Router			/menu/{slug}/selection/toggle [post]
func (h *MenuHandler) ToggleOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ToggleOptionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid toggle input")
			return
		}

		resp, err := h.menuService.ToggleOption(r.Context(), r.PathValue("slug"), &req)
		if err != nil {
			logger.Warn("Option toggle failed", slog.String("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}
