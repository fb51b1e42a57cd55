package lineitems_test

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name                string
		item                domain.LineItem
		lineTotal, tax, sum string
	}{
		{
			name:      "product with percent discount and tax",
			item:      domain.LineItem{TypeID: domain.ItemTypeProduct, Cost: dec("10"), Quantity: dec("3"), Discount: dec("10"), TaxRate1: dec("20")},
			lineTotal: "27", tax: "5.4", sum: "32.4",
		},
		{
			name:      "amount discount",
			item:      domain.LineItem{TypeID: domain.ItemTypeProduct, Cost: dec("10"), Quantity: dec("2"), Discount: dec("5"), IsAmountDiscount: true},
			lineTotal: "15", tax: "0", sum: "15",
		},
		{
			name:      "resource multiplies billable time",
			item:      domain.LineItem{TypeID: domain.ItemTypeResource, Cost: dec("50"), Quantity: dec("1"), BillableTime: dec("7.5"), TaxRate1: dec("5"), TaxRate2: dec("2.5")},
			lineTotal: "375", tax: "28.13", sum: "403.13",
		},
		{
			name:      "rounds to precision",
			item:      domain.LineItem{TypeID: domain.ItemTypeProduct, Cost: dec("0.333"), Quantity: dec("1")},
			lineTotal: "0.33", tax: "0", sum: "0.33",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			lineitems.Recalculate(&item, 2)

			assert.True(t, dec(tt.lineTotal).Equal(item.LineTotal), "line_total %s", item.LineTotal)
			assert.True(t, dec(tt.tax).Equal(item.TaxAmount), "tax_amount %s", item.TaxAmount)
			assert.True(t, dec(tt.sum).Equal(item.GrossLineTotal), "gross_line_total %s", item.GrossLineTotal)
		})
	}
}

func TestSum(t *testing.T) {
	items := []domain.LineItem{
		{LineTotal: dec("10"), TaxAmount: dec("1"), GrossLineTotal: dec("11")},
		{LineTotal: dec("5.5"), TaxAmount: dec("0"), GrossLineTotal: dec("5.5")},
	}

	got := lineitems.Sum(items)

	assert.True(t, dec("15.5").Equal(got.Subtotal))
	assert.True(t, dec("1").Equal(got.TaxTotal))
	assert.True(t, dec("16.5").Equal(got.Total))
}

func TestApplyProductTaxPolicy(t *testing.T) {
	full := domain.Product{
		TaxName1: "A", TaxRate1: dec("1"),
		TaxName2: "B", TaxRate2: dec("2"),
		TaxName3: "C", TaxRate3: dec("3"),
	}

	p := full
	lineitems.ApplyProductTaxPolicy(&p, 0)
	assert.Equal(t, "", p.TaxName1)
	assert.True(t, p.TaxRate3.IsZero())

	p = full
	lineitems.ApplyProductTaxPolicy(&p, 1)
	assert.Equal(t, "A", p.TaxName1)
	assert.Equal(t, "", p.TaxName2)

	p = full
	lineitems.ApplyProductTaxPolicy(&p, 2)
	assert.Equal(t, "B", p.TaxName2)
	assert.Equal(t, "", p.TaxName3)

	p = full
	lineitems.ApplyProductTaxPolicy(&p, 3)
	assert.Equal(t, full, p)
}

func TestTaxRateCombo(t *testing.T) {
	item := domain.LineItem{TaxName2: "GST", TaxRate2: dec("10")}

	value := lineitems.TaxRateComboValue(item, 2)
	assert.Equal(t, "GST||10", value)
	assert.Equal(t, "", lineitems.TaxRateComboValue(item, 1))

	rate, ok := lineitems.ParseTaxRateCombo(value)
	assert.True(t, ok)
	assert.Equal(t, "GST", rate.Name)
	assert.True(t, dec("10").Equal(rate.Rate))

	_, ok = lineitems.ParseTaxRateCombo("garbage")
	assert.False(t, ok)
}
