// Package core provides money parsing and formatting utilities.
//
// Amounts are carried as decimals so sums stay exact; formatting goes
// through go-money with a fixed USD currency.
package core

import (
	"math"
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency used for every displayed total.
const Currency = money.USD

// MaxAmount is the largest magnitude ParseAmount accepts.
var MaxAmount = decimal.New(1, 15)

// maxExponent bounds the decimal exponent of parsed input. Inputs such as
// "1e100000000" are cheap to parse but expand to millions of digits once
// rounded or printed.
const maxExponent = 32

// ParseAmount converts user input into a decimal amount.
//
// Non-numeric input (including the empty string, NaN and Infinity) and
// magnitudes above MaxAmount yield zero. The value is not clamped
// otherwise: the sign rules live in Entry.Type.
//
// Examples:
//   ParseAmount("12.34") -> 12.34
//   ParseAmount(" 75 ")  -> 75
//   ParseAmount("abc")   -> 0
//   ParseAmount("1e20")  -> 0
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders an amount the way a number input holds it.
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

var maxCents = big.NewInt(math.MaxInt64)

// Cents rounds d to whole cents, half away from zero. ok is false when
// the magnitude does not fit in an int64.
func Cents(d decimal.Decimal) (cents int64, ok bool) {
	c := d.Round(2).Shift(2).BigInt()
	if c.CmpAbs(maxCents) > 0 {
		return 0, false
	}
	return c.Int64(), true
}

// FormatUSD formats d as en-US dollars, e.g. "$1,234.50" or "-$60.00".
func FormatUSD(d decimal.Decimal) string {
	if cents, ok := Cents(d); ok {
		return money.New(cents, Currency).Display()
	}
	return formatLarge(d, money.GetCurrency(Currency))
}

// formatLarge lays out amounts beyond int64 cents with the currency's
// own symbols and separators.
func formatLarge(d decimal.Decimal, cur *money.Currency) string {
	r := d.Round(int32(cur.Fraction))
	whole, frac, _ := strings.Cut(r.Abs().StringFixed(int32(cur.Fraction)), ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(frac)
	}

	out := strings.Replace(cur.Template, "$", cur.Grapheme, 1)
	out = strings.Replace(out, "1", b.String(), 1)
	if r.Sign() < 0 {
		out = "-" + out
	}
	return out
}
