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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// AddLine godoc
//	@Summary		Add an item to the cart
//	@Description	Adds one unit of the selected product to the cart sent by the client. An identical line is merged unless the store is configured otherwise.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string					true	"Menu slug"
//	@Param			line	body		models.AddLineRequest	true	"Current cart, product and selection"
//	@Success		200		{object}	models.CartQuote		"Next cart with prices"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid request body"
//	@Failure		404		{object}	response.ErrorResponse	"Menu or product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Store closed or product unavailable"
//	@Failure		422		{object}	response.ErrorResponse	"Selection is not complete"
//	@Router			/menu/{slug}/cart/lines [post]
func (h *CartHandler) AddLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddLineRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add line input")
			return
		}

		logger = logger.With(slog.String("productId", req.ProductID))

		quote, err := h.cartService.AddLine(r.Context(), r.PathValue("slug"), &req)
		if err != nil {
			logger.Warn("Failed to add cart line", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Cart line added", slog.Int("lines", len(quote.Cart.Lines)))
		response.Success(w, http.StatusOK, quote)
	}
}

// UpdateLine godoc
//	@Summary		Set the quantity of a cart line
//	@Description	A quantity of zero removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string						true	"Menu slug"
//	@Param			index	path		int							true	"Line index"
//	@Param			line	body		models.UpdateLineRequest	true	"Current cart and the new quantity"
//	@Success		200		{object}	models.CartQuote			"Next cart with prices"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid index or quantity"
//	@Failure		404		{object}	response.ErrorResponse		"Menu not found"
//	@Router			/menu/{slug}/cart/lines/{index} [patch]
func (h *CartHandler) UpdateLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		index, err := utils.ParseIndex(r, "index")
		if err != nil {
			logger.Warn("Invalid cart line index", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.UpdateLineRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update line input")
			return
		}

		quote, err := h.cartService.UpdateLine(r.Context(), r.PathValue("slug"), index, &req)
		if err != nil {
			logger.Warn("Failed to update cart line", slog.Int("index", index), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}

// RemoveLine godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string					true	"Menu slug"
//	@Param			index	path		int						true	"Line index"
//	@Param			cart	body		models.CartRequest		true	"Current cart"
//	@Success		200		{object}	models.CartQuote		"Next cart with prices"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid index"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Router			/menu/{slug}/cart/lines/{index} [delete]
func (h *CartHandler) RemoveLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		index, err := utils.ParseIndex(r, "index")
		if err != nil {
			logger.Warn("Invalid cart line index", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.CartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid remove line input")
			return
		}

		quote, err := h.cartService.RemoveLine(r.Context(), r.PathValue("slug"), index, &req)
		if err != nil {
			logger.Warn("Failed to remove cart line", slog.Int("index", index), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}

// Quote godoc
//	@Summary		Price a cart
//	@Description	Prices every line from its own snapshot and adds the delivery fee.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string					true	"Menu slug"
//	@Param			cart	body		models.CartRequest		true	"Current cart"
//	@Success		200		{object}	models.CartQuote		"Cart with prices"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid request body"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Router			/menu/{slug}/cart/quote [post]
func (h *CartHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote input")
			return
		}

		quote, err := h.cartService.Quote(r.Context(), r.PathValue("slug"), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}
