// Package qrcode renders the public menu link as a PNG QR code.
package qrcode

import (
	"errors"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 300
	MinSize     = 64
	MaxSize     = 1024
)

var ErrEmptyContent = errors.New("qr code content is empty")

// MenuPNG encodes url as a square PNG of size pixels. A size of zero uses
// DefaultSize; other sizes are clamped to [MinSize, MaxSize].
func MenuPNG(url string, size int) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyContent
	}

	png, err := goqrcode.Encode(url, goqrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return png, nil
}

func ClampSize(size int) int {
	if size == 0 {
		return DefaultSize
	}

	return min(max(size, MinSize), MaxSize)
}
