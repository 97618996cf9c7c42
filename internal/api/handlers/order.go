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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Check out the cart
//	@Description	Renders the order message and returns the WhatsApp deep link that carries it to the store. Nothing is stored.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string					true	"Menu slug"
//	@Param			cart	body		models.CartRequest		true	"Cart to check out"
//	@Success		200		{object}	models.CheckoutResponse	"Order message and link"
//	@Failure		400		{object}	response.ErrorResponse	"Empty cart or invalid body"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Failure		409		{object}	response.ErrorResponse	"Store closed"
//	@Router			/menu/{slug}/checkout [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		resp, err := h.orderService.Checkout(r.Context(), r.PathValue("slug"), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("total", resp.TotalFormatted))
		response.Success(w, http.StatusOK, resp)
	}
}
