package utils

import (
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders amount with the currency symbol and separators.
// Example: 1234.5 with USD returns "$1,234.50"; -5 returns "-$5.00".
func FormatMoney(amount decimal.Decimal, currency domain.Currency) string {
	if currency.Code == "" && currency.Symbol == "" {
		currency = domain.DefaultCurrency
	}
	precision := currency.Precision
	if precision < 0 {
		precision = domain.DefaultCurrency.Precision
	}
	thousand := currency.ThousandSeparator
	dec := currency.DecimalSeparator
	if dec == "" {
		dec = "."
	}

	raw := FormatWithPrecision(amount.Abs(), precision)
	intPart, fracPart, _ := strings.Cut(raw, ".")

	var b strings.Builder
	if amount.Round(int32(precision)).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(currency.Symbol)
	b.WriteString(groupThousands(intPart, thousand))
	if fracPart != "" {
		b.WriteString(dec)
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// MoneyFormatter formats amounts in one fixed currency.
type MoneyFormatter struct {
	Currency domain.Currency
}

// FormatMoney implements the formatter used by the line item editor.
func (f MoneyFormatter) FormatMoney(amount decimal.Decimal) string {
	return FormatMoney(amount, f.Currency)
}

// Precision returns the currency precision.
func (f MoneyFormatter) Precision() int {
	return f.Currency.Precision
}
