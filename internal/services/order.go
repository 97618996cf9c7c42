package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/metrics"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/aaravmahajanofficial/easymenu/internal/order"
	"github.com/aaravmahajanofficial/easymenu/internal/pricing"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
)

type OrderService interface {
	Checkout(ctx context.Context, slug string, req *models.CartRequest) (*models.CheckoutResponse, error)
}

type orderService struct {
	store store.CatalogStore
	opts  MenuOptions
}

func NewOrderService(s store.CatalogStore, opts MenuOptions) OrderService {
	return &orderService{store: s, opts: opts}
}

// Checkout renders the order message and the WhatsApp link that carries it.
// Cart lines are priced from their own snapshots.
func (s *orderService) Checkout(ctx context.Context, slug string, req *models.CartRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	if req.Cart.IsEmpty() {
		return nil, errors.EmptyCartError("Cart is empty")
	}

	if !s.opts.isOpen(state.Business) {
		return nil, errors.StoreClosedError("The store is closed right now")
	}

	b := state.Business
	subtotal, err := pricing.CartSubtotal(req.Cart)
	if err != nil {
		return nil, priceError(err)
	}

	total, err := pricing.CartGrandTotal(req.Cart, b.Settings.DeliveryFee)
	if err != nil {
		return nil, priceError(err)
	}

	message, err := order.RenderOrderMessage(b, req.Cart, subtotal)
	if err != nil {
		return nil, priceError(err)
	}

	metrics.RecordOrderRendered()
	logger.Info("Order rendered", slog.Int("lines", len(req.Cart.Lines)), slog.String("total", total.String()))

	return &models.CheckoutResponse{
		Message:        message,
		WhatsAppURL:    order.WhatsAppLink(b, message, s.opts.CountryCode),
		Subtotal:       subtotal,
		DeliveryFee:    b.Settings.DeliveryFee,
		Total:          total,
		TotalFormatted: money.FormatBRL(total),
	}, nil
}
