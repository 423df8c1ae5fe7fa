package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func ConverToint(str string) (int, error) {
	portInt, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("error al convertir a entero: %w", err)
	}
	return portInt, nil
}

// ToInt64 parses an integer cell. Numeric cells read from a workbook can
// arrive as "100.0", so a float fallback is applied.
func ToInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("valor entero no reconocido %q: %w", s, err)
	}
	return int64(f), nil
}

func ToDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto no reconocido %q: %w", s, err)
	}
	return d, nil
}

// layouts aceptados para la columna fecha; el último cubre el formato corto
// por defecto de celdas de fecha en xlsx (m-d-yy)
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"01-02-06",
}

// ToDate parses a date cell and truncates it to midnight UTC so the same
// calendar date always compares equal.
func ToDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}
