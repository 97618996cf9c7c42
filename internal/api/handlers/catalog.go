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

// CatalogHandler serves the operator dashboard. Every route sits behind the auth middleware.
type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// GetCatalog godoc
//	@Summary		Get the whole catalog
//	@Description	Returns the business, every category and every product, including inactive and unavailable ones.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.CatalogState		"Catalog"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/catalog [get]
func (h *CatalogHandler) GetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, err := h.catalogService.GetState(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// Overview godoc
//	@Summary		Dashboard overview
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.Overview			"Counters, open state and menu link"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/overview [get]
func (h *CatalogHandler) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		overview, err := h.catalogService.Overview(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, overview)
	}
}

// UpdateBusiness godoc
//	@Summary		Update the business profile
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			business	body		models.UpdateBusinessRequest	true	"Profile"
//	@Success		200			{object}	models.Business					"Updated business"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/business [put]
func (h *CatalogHandler) UpdateBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateBusinessRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid business input")
			return
		}

		business, err := h.catalogService.UpdateBusiness(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to update business", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, business)
	}
}

// UpdateSettings godoc
//	@Summary		Update the business settings
//	@Description	Delivery fee, minimum order, service tax and automatic opening.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			settings	body		models.UpdateSettingsRequest	true	"Settings"
//	@Success		200			{object}	models.Business					"Updated business"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/business/settings [put]
func (h *CatalogHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid settings input")
			return
		}

		business, err := h.catalogService.UpdateSettings(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, business)
	}
}

// UpdateHours godoc
//	@Summary		Update opening hours
//	@Description	Replaces the hours of the weekdays named in the body (segunda .. domingo).
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			hours	body		models.UpdateHoursRequest	true	"Hours per weekday"
//	@Success		200		{object}	models.Business				"Updated business"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/business/hours [put]
func (h *CatalogHandler) UpdateHours() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateHoursRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid hours input")
			return
		}

		business, err := h.catalogService.UpdateHours(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, business)
	}
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Description	New categories are active and go last unless an order is given.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CategoryRequest	true	"Category"
//	@Success		201			{object}	models.Category			"Created category"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/categories [post]
func (h *CatalogHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid category input")
			return
		}

		category, err := h.catalogService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//	@Summary		Update a category
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string					true	"Category ID"
//	@Param			category	body		models.CategoryRequest	true	"Category"
//	@Success		200			{object}	models.Category			"Updated category"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Category not found"
//	@Security		BearerAuth
//	@Router			/admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid category input", slog.String("categoryId", id))
			return
		}

		category, err := h.catalogService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update category", slog.String("categoryId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//	@Summary		Delete a category
//	@Description	Products of the category are kept but no longer appear on the menu.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Category ID"
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Category not found"
//	@Security		BearerAuth
//	@Router			/admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
			logger.Warn("Failed to delete category", slog.String("categoryId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category deleted", slog.String("categoryId", id))
		response.Success(w, http.StatusOK, nil)
	}
}

// ToggleCategory godoc
//	@Summary		Toggle a category on or off
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Category ID"
//	@Success		200	{object}	models.Category			"Updated category"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Category not found"
//	@Security		BearerAuth
//	@Router			/admin/categories/{id}/active [patch]
func (h *CatalogHandler) ToggleCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		category, err := h.catalogService.ToggleCategory(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Case-insensitive name search, optionally limited to one category.
//	@Tags			Admin
//	@Produce		json
//	@Param			q			query		string					false	"Name contains"
//	@Param			category_id	query		string					false	"Category ID"
//	@Success		200			{array}		models.Product			"Products"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()
		filter := models.ProductFilter{
			Query:      query.Get("q"),
			CategoryID: query.Get("category_id"),
		}

		products, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Ids are assigned to the product and to any variation, option group or option sent without one. Requires at least one category.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.ProductRequest	true	"Product"
//	@Success		201		{object}	models.Product			"Created product"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or no categories"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			product	body		models.ProductRequest	true	"Product"
//	@Success		200		{object}	models.Product			"Updated product"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input", slog.String("productId", id))
			return
		}

		product, err := h.catalogService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update product", slog.String("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary		Delete a product
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
			logger.Warn("Failed to delete product", slog.String("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id))
		response.Success(w, http.StatusOK, nil)
	}
}

// ToggleProductAvailability godoc
//	@Summary		Toggle product availability
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Updated product"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id}/availability [patch]
func (h *CatalogHandler) ToggleProductAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.ToggleProductAvailability(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
