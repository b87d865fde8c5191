// Package imaging decodes client-supplied image payloads and re-encodes
// them for transport. Payloads arrive as base64 strings, optionally wrapped
// in a data URI ("data:image/png;base64,....").
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodePayload strips an optional data-URI prefix (everything through the
// first comma) and base64-decodes the remainder.
func DecodePayload(payload string) ([]byte, error) {
	if _, after, ok := strings.Cut(payload, ","); ok {
		payload = after
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, nil
}

// Decode decodes raw bytes into an image. The format is whatever the
// registered decoders recognize (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	return img, nil
}

// Bounds returns the pixel dimensions of an encoded image without decoding
// the pixel data.
func Bounds(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("cannot decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// EncodePNGDataURI re-encodes an image as PNG and wraps it in a data URI.
func EncodePNGDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("png encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
