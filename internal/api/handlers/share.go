package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
)

type ShareHandler struct {
	shareService service.ShareService
}

func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// QRCode godoc
//	@Summary		Menu QR code
//	@Description	PNG QR code that opens the public menu. The size is clamped to 64..1024 pixels.
//	@Tags			Share
//	@Produce		png
//	@Param			slug	path		string	true	"Menu slug"
//	@Param			size	query		int		false	"Side in pixels"	default(300)
//	@Success		200		{file}		binary	"QR code"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid size"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Router			/menu/{slug}/qrcode [get]
func (h *ShareHandler) QRCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		size := 0
		if raw := r.URL.Query().Get("size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid size").WithDetail(raw))
				return
			}
			size = parsed
		}

		png, err := h.shareService.QRCode(r.Context(), r.PathValue("slug"), size)
		if err != nil {
			logger.Warn("Failed to render QR code", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Binary(w, "image/png", "", png)
	}
}

// TableCard godoc
//	@Summary		Printable table card
//	@Description	A6 PDF with the store name, the menu QR code and the menu link.
//	@Tags			Share
//	@Produce		application/pdf
//	@Param			slug	path		string	true	"Menu slug"
//	@Success		200		{file}		binary	"Table card"
//	@Failure		404		{object}	response.ErrorResponse	"Menu not found"
//	@Router			/menu/{slug}/tablecard [get]
func (h *ShareHandler) TableCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		slug := r.PathValue("slug")

		pdf, err := h.shareService.TableCard(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to render table card", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Binary(w, "application/pdf", slug+"-mesa.pdf", pdf)
	}
}
