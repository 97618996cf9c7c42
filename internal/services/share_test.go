package service_test

import (
	"bytes"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/easymenu/internal/errors"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService(t *testing.T) {
	ctx := t.Context()
	shareService := service.NewShareService(newStore(t, fixtureState), testOptions(lunchTime))

	t.Run("QR code", func(t *testing.T) {
		png, err := shareService.QRCode(ctx, slug, 256)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("Table card", func(t *testing.T) {
		pdf, err := shareService.TableCard(ctx, slug)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	})

	t.Run("Unknown menu", func(t *testing.T) {
		_, err := shareService.QRCode(ctx, "outra-loja", 256)
		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)

		_, err = shareService.TableCard(ctx, "outra-loja")
		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)
	})
}
