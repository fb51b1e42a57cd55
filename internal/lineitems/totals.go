package lineitems

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Recalculate fills line_total, tax_amount and gross_line_total of item,
// rounded to precision decimals.
//
// line_total is cost x quantity (x billable_time on resource rows when set)
// less the discount, which is an amount or a percentage depending on
// is_amount_discount.
func Recalculate(item *domain.LineItem, precision int) {
	p := int32(precision)
	if p < 0 {
		p = fallbackPrecision
	}

	total := item.Cost.Mul(item.Quantity)
	if item.TypeID == domain.ItemTypeResource && !item.BillableTime.IsZero() {
		total = total.Mul(item.BillableTime)
	}
	if !item.Discount.IsZero() {
		if item.IsAmountDiscount {
			total = total.Sub(item.Discount)
		} else {
			total = total.Sub(total.Mul(item.Discount).Div(hundred))
		}
	}
	total = total.Round(p)

	rates := item.TaxRate1.Add(item.TaxRate2).Add(item.TaxRate3)
	tax := total.Mul(rates).Div(hundred).Round(p)

	item.LineTotal = total
	item.TaxAmount = tax
	item.GrossLineTotal = total.Add(tax)
}

// DocumentTotals sums the computed columns of every row.
type DocumentTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxTotal decimal.Decimal `json:"tax_total"`
	Total    decimal.Decimal `json:"total"`
}

// Sum adds up the already computed line totals.
func Sum(items []domain.LineItem) DocumentTotals {
	var t DocumentTotals
	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(item.LineTotal)
		t.TaxTotal = t.TaxTotal.Add(item.TaxAmount)
		t.Total = t.Total.Add(item.GrossLineTotal)
	}
	return t
}
