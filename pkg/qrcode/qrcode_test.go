package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aaravmahajanofficial/easymenu/pkg/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuPNG(t *testing.T) {
	t.Run("Encodes the menu url as a png of the requested size", func(t *testing.T) {
		data, err := qrcode.MenuPNG("https://cardapio.example.com/#/m/meu-cardapio", 256)

		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("Empty content", func(t *testing.T) {
		_, err := qrcode.MenuPNG("", 256)

		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, qrcode.DefaultSize},
		{10, qrcode.MinSize},
		{-5, qrcode.MinSize},
		{500, 500},
		{5000, qrcode.MaxSize},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, qrcode.ClampSize(tt.in), "size %d", tt.in)
	}
}
