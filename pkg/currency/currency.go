// Package currency bounds and formats decimal amounts. Amounts are kept as
// decimals everywhere else; only presentation goes through go-money.
package currency

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders amounts in a single ISO 4217 currency.
type Formatter struct {
	currency *money.Currency
}

// NewFormatter returns a Formatter for code, e.g. "EUR".
func NewFormatter(code string) (*Formatter, error) {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &Formatter{currency: c}, nil
}

// Code returns the ISO code of the formatter's currency.
func (f *Formatter) Code() string {
	return f.currency.Code
}

// Format rounds amount to the currency's minor unit and renders it with the
// currency's symbol and separators.
func (f *Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, f.currency.Code).Display()
}

// FractionDigits is the number of decimal places an amount may carry.
const FractionDigits = 2

// maxIntegerDigits bounds amounts below 10^12.
const maxIntegerDigits = 12

// MaxAmount is the exclusive upper bound on an amount.
var MaxAmount = decimal.New(1, maxIntegerDigits)

var (
	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooLarge is returned for amounts of MaxAmount or more.
	ErrAmountTooLarge = fmt.Errorf("amount must be less than %s", MaxAmount.String())
	// ErrAmountPrecision is returned for amounts with more than FractionDigits decimals.
	ErrAmountPrecision = fmt.Errorf("amount must have at most %d decimal places", FractionDigits)
)

// CheckAmount reports whether d is a storable amount: non-negative, below
// MaxAmount and with at most FractionDigits decimals. It only inspects the
// coefficient and exponent, so a value like 1e2000000000 is rejected without
// being expanded.
func CheckAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	if d.IsZero() {
		return nil
	}
	exp := int64(d.Exponent())
	digits := int64(d.NumDigits())
	if digits+exp > maxIntegerDigits {
		return ErrAmountTooLarge
	}
	if exp < -FractionDigits {
		// Extra decimals are fine only when they are trailing zeros.
		drop := -FractionDigits - exp
		if drop >= digits {
			return ErrAmountPrecision
		}
		coef := d.Coefficient()
		if new(big.Int).Mod(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(drop), nil)).Sign() != 0 {
			return ErrAmountPrecision
		}
	}
	return nil
}
