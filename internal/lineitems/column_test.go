package lineitems_test

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverFor(itemType domain.ItemType, company *domain.Company) *lineitems.ColumnResolver {
	return lineitems.NewColumnResolver(lineitems.Context{
		Type:       itemType,
		Company:    company,
		Currency:   domain.DefaultCurrency,
		Path:       "/invoices/abc/edit",
		Money:      usd,
		Translator: i18n.English(),
	})
}

func TestResolve_ResourceUnit(t *testing.T) {
	r := resolverFor(domain.ItemTypeResource, nil)

	unlinked := []domain.LineItem{{TypeID: domain.ItemTypeResource, Unit: "hour"}}
	w := r.Resolve("unit", unlinked, 0, nil)
	assert.Equal(t, lineitems.WidgetReadOnly, w.Kind)
	assert.True(t, w.ReadOnly)
	assert.Equal(t, "hour", w.Display)

	linked := []domain.LineItem{{
		TypeID:     domain.ItemTypeResource,
		ResourceID: domain.StringPtr("res-1"),
		Unit:       "$400.00 per day",
	}}
	w = r.Resolve("unit", linked, 0, map[int]*domain.Resource{0: testResource()})
	assert.Equal(t, lineitems.WidgetUnitSelect, w.Kind)
	assert.Equal(t, "day", w.Value)
	assert.Equal(t, "res-1", w.ResourceID)
	require.Len(t, w.Options, 4)
	assert.Equal(t, "$400.00 per day", w.Options[1].Label)

	w = r.Resolve("unit", linked, 0, nil)
	assert.Equal(t, "day", w.Options[1].Label, "without a picked resource labels carry no rate")
}

func TestResolve_ProductUnitDefaultsToHour(t *testing.T) {
	r := resolverFor(domain.ItemTypeProduct, nil)

	w := r.Resolve("unit", []domain.LineItem{{TypeID: domain.ItemTypeProduct}}, 0, nil)

	assert.Equal(t, lineitems.WidgetUnitSelect, w.Kind)
	assert.Equal(t, "hour", w.Value)
	assert.Equal(t, "hour", w.Options[0].Label)
}

func TestResolve_ProductKey(t *testing.T) {
	w := resolverFor(domain.ItemTypeResource, nil).Resolve("product_key", nil, 0, nil)
	assert.Equal(t, lineitems.WidgetResourceSelector, w.Kind)
	require.NotNil(t, w.Selector)
	assert.Equal(t, lineitems.ResourceSearchEndpoint, w.Selector.Endpoint)
	assert.Equal(t, []string{"name", "description"}, w.Selector.SearchFields)
	assert.Equal(t, "name|asc", w.Selector.Sort)
	assert.True(t, w.Selector.ClearButton)

	w = resolverFor(domain.ItemTypeProduct, nil).Resolve("product.item", nil, 0, nil)
	assert.Equal(t, lineitems.WidgetProductSelector, w.Kind)
	assert.True(t, w.Selector.DisplayStock)

	po := lineitems.NewColumnResolver(lineitems.Context{Type: domain.ItemTypeProduct, Path: "/purchase_orders/1/edit"})
	w = po.Resolve("product_key", nil, 0, nil)
	assert.False(t, w.Selector.DisplayStock)
}

func TestResolve_NumbersAndMoney(t *testing.T) {
	items := []domain.LineItem{{
		TypeID:    domain.ItemTypeResource,
		Cost:      decimal.NewFromInt(1250),
		LineTotal: decimal.RequireFromString("99.5"),
	}}
	r := resolverFor(domain.ItemTypeResource, nil)

	w := r.Resolve("quantity", items, 0, nil)
	assert.Equal(t, lineitems.WidgetNumber, w.Kind)
	assert.Equal(t, 6, w.Precision)

	w = r.Resolve("discount", items, 0, nil)
	assert.Equal(t, 2, w.Precision)

	w = r.Resolve("cost", items, 0, nil)
	assert.Equal(t, lineitems.WidgetMoney, w.Kind)
	assert.True(t, w.ReadOnly)
	assert.Equal(t, "$1,250.00", w.Display)

	w = r.Resolve("line_total", items, 0, nil)
	assert.Equal(t, "$99.50", w.Display)

	w = resolverFor(domain.ItemTypeProduct, nil).Resolve("rate", items, 0, nil)
	assert.Equal(t, lineitems.WidgetNumber, w.Kind)
	assert.Equal(t, "cost", w.Property)
}

func TestNumberPrecision(t *testing.T) {
	assert.Equal(t, 6, lineitems.NumberPrecision("billable_time", lineitems.Preferences{NumberPrecision: 3}, 2))
	assert.Equal(t, 3, lineitems.NumberPrecision("cost", lineitems.Preferences{NumberPrecision: 3}, 2))
	assert.Equal(t, 4, lineitems.NumberPrecision("cost", lineitems.Preferences{NumberPrecision: 101}, 4))
	assert.Equal(t, 2, lineitems.NumberPrecision("cost", lineitems.Preferences{}, 0))
}

func TestResolve_Notes(t *testing.T) {
	r := lineitems.NewColumnResolver(lineitems.Context{
		Type:        domain.ItemTypeProduct,
		Preferences: lineitems.Preferences{AutoExpandProductTableNotes: true},
	})
	w := r.Resolve("product.description", []domain.LineItem{{Notes: "n"}}, 0, nil)

	assert.Equal(t, lineitems.WidgetTextarea, w.Kind)
	assert.Equal(t, 1, w.Rows)
	assert.Equal(t, "n", w.Value)
}

func TestResolve_TaxDispatch(t *testing.T) {
	taxed := &domain.Company{CalculateTaxes: true}
	item := domain.LineItem{TaxName1: "VAT", TaxRate1: decimal.NewFromInt(20)}

	w := resolverFor(domain.ItemTypeProduct, nil).Resolve("tax_rate1", []domain.LineItem{item}, 0, nil)
	assert.Equal(t, lineitems.WidgetTaxRateSelector, w.Kind)
	assert.Equal(t, "VAT||20", w.Value)
	assert.False(t, w.CategoryToggle)

	w = resolverFor(domain.ItemTypeProduct, taxed).Resolve("tax_rate1", []domain.LineItem{item}, 0, nil)
	assert.Equal(t, lineitems.WidgetTaxRateSelector, w.Kind)
	assert.True(t, w.CategoryToggle)

	item.TaxID = domain.TaxIDOverride
	w = resolverFor(domain.ItemTypeProduct, taxed).Resolve("tax_rate2", []domain.LineItem{item}, 0, nil)
	assert.Equal(t, lineitems.WidgetTaxRateSelector, w.Kind)
	assert.False(t, w.CategoryToggle)

	item.TaxID = "2"
	w = resolverFor(domain.ItemTypeProduct, taxed).Resolve("tax_rate1", []domain.LineItem{item}, 0, nil)
	assert.Equal(t, lineitems.WidgetTaxCategory, w.Kind)
	assert.Equal(t, "tax_id", w.Field)
	assert.Equal(t, "2", w.Value)
	for _, c := range w.Categories {
		assert.NotEqual(t, domain.TaxIDOverride, c.Value)
	}

	w = resolverFor(domain.ItemTypeProduct, taxed).Resolve("tax_rate2", []domain.LineItem{item}, 0, nil)
	assert.Equal(t, lineitems.WidgetNone, w.Kind)
}

func TestResolve_CustomFields(t *testing.T) {
	company := &domain.Company{CustomFields: map[string]string{"product1": "Color|red,green"}}
	items := []domain.LineItem{{CustomValue1: "red", CustomValue2: "x"}}
	r := resolverFor(domain.ItemTypeProduct, company)

	w := r.Resolve("product1", items, 0, nil)
	assert.Equal(t, lineitems.WidgetCustomField, w.Kind)
	assert.Equal(t, "custom_value1", w.Field)
	assert.Equal(t, "red", w.Value)
	assert.Equal(t, "Color|red,green", w.CustomFieldDefinition)

	w = r.Resolve("product2", items, 0, nil)
	assert.Equal(t, lineitems.WidgetText, w.Kind)
	assert.Equal(t, "custom_value2", w.Field)

	w = r.Resolve("resource1", items, 0, nil)
	assert.Equal(t, lineitems.WidgetText, w.Kind, "resource1 has no definition")
}

func TestResolve_OutOfRangeRowDoesNotPanic(t *testing.T) {
	r := resolverFor(domain.ItemTypeResource, &domain.Company{CalculateTaxes: true})

	for _, column := range []string{"unit", "product_key", "notes", "cost", "quantity", "tax_rate1", "product1", "whatever"} {
		assert.NotPanics(t, func() {
			w := r.Resolve(column, nil, 7, nil)
			assert.NotEmpty(t, w.Kind)
		}, column)
	}
	assert.Equal(t, "No product selected", r.Tooltip("product_key", nil, -1))
}

func TestTooltip(t *testing.T) {
	r := resolverFor(domain.ItemTypeResource, nil)
	items := []domain.LineItem{{
		ProductKey: "Design",
		RateLabel:  "$50.00 per hour",
		Unit:       "hour",
		Cost:       decimal.NewFromInt(50),
		Discount:   decimal.NewFromInt(10),
		TaxRate1:   decimal.NewFromInt(7),
	}}

	assert.Equal(t, "Design", r.Tooltip("product_key", items, 0))
	assert.Equal(t, "$50.00 per hour", r.Tooltip("unit", items, 0))
	assert.Equal(t, "$50.00", r.Tooltip("cost", items, 0))
	assert.Equal(t, "10%", r.Tooltip("discount", items, 0))
	assert.Equal(t, "7%", r.Tooltip("tax_rate1", items, 0))
	assert.Equal(t, "No description", r.Tooltip("notes", items, 0))
	assert.Equal(t, "No quantity", r.Tooltip("quantity", items, 0))
	assert.Equal(t, "No value", r.Tooltip("custom_value3", items, 0))
}
