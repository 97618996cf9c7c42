package service

import (
	"context"

	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
	"github.com/aaravmahajanofficial/easymenu/pkg/qrcode"
	"github.com/aaravmahajanofficial/easymenu/pkg/tablecard"
)

// ShareService renders the assets that point customers at the public menu.
type ShareService interface {
	QRCode(ctx context.Context, slug string, size int) ([]byte, error)
	TableCard(ctx context.Context, slug string) ([]byte, error)
}

type shareService struct {
	store store.CatalogStore
	opts  MenuOptions
}

func NewShareService(s store.CatalogStore, opts MenuOptions) ShareService {
	return &shareService{store: s, opts: opts}
}

func (s *shareService) QRCode(ctx context.Context, slug string, size int) ([]byte, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.MenuPNG(s.opts.menuURL(state.Business.Slug), size)
	if err != nil {
		return nil, errors.InternalError("Failed to generate QR code").WithError(err)
	}

	return png, nil
}

func (s *shareService) TableCard(ctx context.Context, slug string) ([]byte, error) {
	state, err := loadMenu(ctx, s.store, slug)
	if err != nil {
		return nil, err
	}

	pdf, err := tablecard.Render(state.Business, s.opts.menuURL(state.Business.Slug))
	if err != nil {
		return nil, errors.InternalError("Failed to generate table card").WithError(err)
	}

	return pdf, nil
}
