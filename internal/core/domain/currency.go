package domain

import (
	"fmt"
	"strings"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
)

// CurrencyPair is an ordered (from, to) pair of 3-letter uppercase currency codes.
type CurrencyPair struct {
	From string `json:"fromCurrency"`
	To   string `json:"toCurrency"`
}

// IsValidCurrencyCode reports whether code is exactly three ASCII letters.
// Case is not checked here; NewCurrencyPair normalizes to uppercase.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// NewCurrencyPair normalizes both codes to uppercase and validates their shape.
// Identical from/to codes are rejected; a bookmark on such a pair would be
// meaningless. Rate resolution accepts identity pairs and bypasses this type.
func NewCurrencyPair(from, to string) (CurrencyPair, error) {
	if !IsValidCurrencyCode(from) || !IsValidCurrencyCode(to) {
		return CurrencyPair{}, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrInvalidCurrencyPair)
	}
	pair := CurrencyPair{
		From: strings.ToUpper(from),
		To:   strings.ToUpper(to),
	}
	if pair.From == pair.To {
		return CurrencyPair{}, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrInvalidCurrencyPair)
	}
	return pair, nil
}

// Reverse returns the pair with from and to swapped.
func (p CurrencyPair) Reverse() CurrencyPair {
	return CurrencyPair{From: p.To, To: p.From}
}

func (p CurrencyPair) String() string {
	return p.From + "-" + p.To
}
