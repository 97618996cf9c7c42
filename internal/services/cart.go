package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/cart"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/metrics"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/aaravmahajanofficial/easymenu/internal/pricing"
	"github.com/aaravmahajanofficial/easymenu/internal/selection"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
)

// CartService applies ledger operations to the cart the client sends and
// returns the next cart together with its prices. Carts are never stored.
type CartService interface {
	AddLine(ctx context.Context, slug string, req *models.AddLineRequest) (*models.CartQuote, error)
	UpdateLine(ctx context.Context, slug string, index int, req *models.UpdateLineRequest) (*models.CartQuote, error)
	RemoveLine(ctx context.Context, slug string, index int, req *models.CartRequest) (*models.CartQuote, error)
	Quote(ctx context.Context, slug string, req *models.CartRequest) (*models.CartQuote, error)
}

type cartService struct {
	store store.CatalogStore
	opts  MenuOptions
}

func NewCartService(s store.CatalogStore, opts MenuOptions) CartService {
	return &cartService{store: s, opts: opts}
}

func (s *cartService) AddLine(ctx context.Context, slug string, req *models.AddLineRequest) (*models.CartQuote, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("productId", req.ProductID))

	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	if !s.opts.isOpen(state.Business) {
		return nil, errors.StoreClosedError("The store is closed right now")
	}

	product, ok := catalog.FindProduct(state, req.ProductID)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail(req.ProductID)
	}

	if !catalog.IsOrderable(state, product) {
		logger.Info("Unavailable product requested")
		return nil, errors.ProductUnavailableError("Product is not available")
	}

	next, err := cart.AddLine(req.Cart, product, selection.Resolve(product, req.Selection), s.opts.MergePolicy)
	if err != nil {
		var rejected *selection.RejectedError
		if stdErrors.As(err, &rejected) {
			metrics.RecordSelectionRejection(string(rejected.Result.Reason))
			logger.Info("Selection rejected", slog.String("reason", string(rejected.Result.Reason)))
			return nil, errors.SelectionError(string(rejected.Result.Reason), "Selection is not complete").
				WithDetail(rejected.Result.GroupID).WithError(err)
		}

		if stdErrors.Is(err, cart.ErrQuantityTooLarge) {
			return nil, ledgerError(err)
		}

		return nil, errors.InternalError("Failed to add item").WithError(err)
	}

	metrics.RecordCartOperation("add")

	return quote(state.Business, next)
}

func (s *cartService) UpdateLine(ctx context.Context, slug string, index int, req *models.UpdateLineRequest) (*models.CartQuote, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	next, err := cart.SetQuantity(req.Cart, index, *req.Quantity)
	if err != nil {
		return nil, ledgerError(err)
	}

	metrics.RecordCartOperation("set_quantity")

	return quote(state.Business, next)
}

func (s *cartService) RemoveLine(ctx context.Context, slug string, index int, req *models.CartRequest) (*models.CartQuote, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	next, err := cart.RemoveLine(req.Cart, index)
	if err != nil {
		return nil, ledgerError(err)
	}

	metrics.RecordCartOperation("remove")

	return quote(state.Business, next)
}

func (s *cartService) Quote(ctx context.Context, slug string, req *models.CartRequest) (*models.CartQuote, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	return quote(state.Business, req.Cart.Clone())
}

func ledgerError(err error) error {
	switch {
	case stdErrors.Is(err, cart.ErrLineNotFound):
		return errors.BadRequestError("Cart line not found").WithError(err)
	case stdErrors.Is(err, cart.ErrInvalidQuantity):
		return errors.BadRequestError("Quantity must not be negative").WithError(err)
	case stdErrors.Is(err, cart.ErrQuantityTooLarge):
		return errors.BadRequestError(fmt.Sprintf("Quantity must not exceed %d", cart.MaxQuantity)).WithError(err)
	default:
		return errors.InternalError("Failed to update cart").WithError(err)
	}
}

// priceError maps a total that left the money range to a client error.
func priceError(err error) error {
	if stdErrors.Is(err, money.ErrOverflow) {
		return errors.BadRequestError("Cart total is out of range").WithError(err)
	}

	return errors.InternalError("Failed to price cart").WithError(err)
}

func quote(b models.Business, c models.Cart) (*models.CartQuote, error) {
	lines := make([]models.LineQuote, len(c.Lines))
	for i, l := range c.Lines {
		total, err := pricing.LineTotal(l)
		if err != nil {
			return nil, priceError(err)
		}

		lines[i] = models.LineQuote{
			Index:              i,
			UnitPrice:          pricing.LineUnitPrice(l.Product(), l.Selection()),
			LineTotal:          total,
			LineTotalFormatted: money.FormatBRL(total),
		}
	}

	if c.Lines == nil {
		c.Lines = []models.CartLine{}
	}

	subtotal, err := pricing.CartSubtotal(c)
	if err != nil {
		return nil, priceError(err)
	}

	fee := b.Settings.DeliveryFee
	total, err := pricing.CartGrandTotal(c, fee)
	if err != nil {
		return nil, priceError(err)
	}

	return &models.CartQuote{
		Cart:                 c,
		Lines:                lines,
		ItemCount:            cart.ItemCount(c),
		Subtotal:             subtotal,
		DeliveryFee:          fee,
		Total:                total,
		SubtotalFormatted:    money.FormatBRL(subtotal),
		DeliveryFeeFormatted: money.FormatBRL(fee),
		TotalFormatted:       money.FormatBRL(total),
	}, nil
}
