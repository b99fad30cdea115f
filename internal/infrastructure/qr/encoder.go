// Package qr renders QR code PNG images for patient records.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder produces PNG QR images with high error correction, so codes stay
// scannable when printed on wristbands or partially damaged.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders content into a size×size PNG.
func (e *Encoder) Encode(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
