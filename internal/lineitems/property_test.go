package lineitems_test

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProperty(t *testing.T) {
	tests := map[string]string{
		"product.item":        "product_key",
		"product.description": "notes",
		"product.unit_cost":   "cost",
		"resource.rate":       "cost",
		"resource.hours":      "quantity",
		"product.tax_rate":    "tax_rate1",
		"product.line_total":  "line_total",
		"product.product1":    "product1",
		"quantity":            "quantity",
		"hours":               "quantity",
		"custom":              "custom",
	}
	for column, want := range tests {
		assert.Equal(t, want, lineitems.ResolveProperty(column), column)
	}
}

func TestSetAndGet(t *testing.T) {
	var item domain.LineItem

	require.NoError(t, lineitems.Set(&item, "cost", 12.5))
	require.NoError(t, lineitems.Set(&item, "quantity", "3"))
	require.NoError(t, lineitems.Set(&item, "discount", "not a number"))
	require.NoError(t, lineitems.Set(&item, "notes", "hello"))
	require.NoError(t, lineitems.Set(&item, "resource_id", "abc"))
	require.NoError(t, lineitems.Set(&item, "is_amount_discount", true))

	assert.True(t, decimal.RequireFromString("12.5").Equal(item.Cost))
	assert.True(t, decimal.NewFromInt(3).Equal(item.Quantity))
	assert.True(t, item.Discount.IsZero())
	assert.Equal(t, "hello", lineitems.GetString(item, "notes"))
	assert.Equal(t, "abc", lineitems.GetString(item, "resource_id"))
	assert.Equal(t, "", lineitems.GetString(item, "billable_time"))
	assert.True(t, item.IsAmountDiscount)

	require.NoError(t, lineitems.Set(&item, "resource_id", ""))
	assert.Nil(t, item.ResourceID)

	err := lineitems.Set(&item, "nope", "x")
	assert.ErrorIs(t, err, lineitems.ErrUnknownProperty)

	err = lineitems.Set(&item, "notes", 5)
	assert.ErrorIs(t, err, lineitems.ErrInvalidValue)
}
