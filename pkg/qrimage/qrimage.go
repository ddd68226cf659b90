// Package qrimage генерирует QR-коды в виде data URL с PNG внутри.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Generator кодирует произвольный текст в PNG QR-код
type Generator struct {
	size int
}

// NewGenerator создает генератор QR-кодов с размером изображения в пикселях.
// При size <= 0 используется размер по умолчанию.
func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = defaultSize
	}
	return &Generator{size: size}
}

// Generate возвращает data URL вида "data:image/png;base64,..." с QR-кодом содержимого
func (g *Generator) Generate(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, g.size)
	if err != nil {
		return "", fmt.Errorf("qrimage: encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
