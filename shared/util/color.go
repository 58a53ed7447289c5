package util

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA é uma cor de 8 bits por canal, independente do backend gráfico.
type RGBA struct {
	R, G, B, A uint8
}

// ParseHexColor converte "#rrggbb" (ou "rrggbb") em RGBA opaco.
func ParseHexColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGBA{}, fmt.Errorf("cor inválida %q: esperado #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("cor inválida %q: %w", s, err)
	}
	return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustParseHexColor é ParseHexColor para tabelas estáticas; entra em pânico se a cor for inválida.
func MustParseHexColor(s string) RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex retorna a cor no formato "#rrggbb".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
