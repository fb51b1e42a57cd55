package lineitems

import (
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/shopspring/decimal"
)

// WidgetKind names the editor a cell renders.
type WidgetKind string

const (
	WidgetText             WidgetKind = "text"
	WidgetTextarea         WidgetKind = "textarea"
	WidgetNumber           WidgetKind = "number"
	WidgetMoney            WidgetKind = "money"
	WidgetReadOnly         WidgetKind = "read_only"
	WidgetUnitSelect       WidgetKind = "unit_select"
	WidgetResourceSelector WidgetKind = "resource_selector"
	WidgetProductSelector  WidgetKind = "product_selector"
	WidgetTaxRateSelector  WidgetKind = "tax_rate_selector"
	WidgetTaxCategory      WidgetKind = "tax_category_selector"
	WidgetCustomField      WidgetKind = "custom_field"
	WidgetNone             WidgetKind = "none"
)

// ResourceSearchEndpoint is queried by the resource selector.
const ResourceSearchEndpoint = "/api/v1/resources?per_page=800&status=active"

// Selector configures a searchable catalog picker.
type Selector struct {
	Endpoint     string   `json:"endpoint,omitempty"`
	SearchFields []string `json:"search_fields,omitempty"`
	Sort         string   `json:"sort,omitempty"`
	ClearButton  bool     `json:"clear_button"`
	DisplayStock bool     `json:"display_stock"`
}

// Widget describes the editor of one cell. Rendering is left to the caller.
type Widget struct {
	Kind     WidgetKind `json:"kind"`
	Property string     `json:"property"`
	// Field is the line item field a change is written to.
	Field     string `json:"field,omitempty"`
	Value     string `json:"value"`
	Display   string `json:"display,omitempty"`
	ReadOnly  bool   `json:"read_only"`
	Precision int    `json:"precision,omitempty"`
	Rows      int    `json:"rows,omitempty"`

	Options    []UnitOption `json:"options,omitempty"`
	ResourceID string       `json:"resource_id,omitempty"`
	Selector   *Selector    `json:"selector,omitempty"`

	TaxSlot        int           `json:"tax_slot,omitempty"`
	CategoryToggle bool          `json:"category_toggle,omitempty"`
	Categories     []TaxCategory `json:"categories,omitempty"`

	CustomFieldDefinition string `json:"custom_field_definition,omitempty"`
}

// Context is the environment cells are resolved in.
type Context struct {
	Type        domain.ItemType
	Company     *domain.Company
	Preferences Preferences
	Currency    domain.Currency
	// Path is the current route, e.g. "/invoices/1/edit".
	Path       string
	Money      MoneyFormatter
	Translator i18n.Translator
}

// ColumnResolver maps table columns onto widgets for one row type.
type ColumnResolver struct {
	ctx Context
}

// NewColumnResolver returns a resolver bound to ctx.
func NewColumnResolver(ctx Context) *ColumnResolver {
	if ctx.Translator == nil {
		ctx.Translator = i18n.English()
	}
	if ctx.Money == nil {
		ctx.Money = utils.MoneyFormatter{Currency: ctx.Currency}
	}
	return &ColumnResolver{ctx: ctx}
}

var numberInputs = map[string]bool{
	"discount":      true,
	"cost":          true,
	"quantity":      true,
	"billable_time": true,
}

// Resolve returns the widget for column on the row at index. resources holds
// the catalog entries last picked per row. Out of range rows resolve against
// a zero row.
func (r *ColumnResolver) Resolve(column string, items []domain.LineItem, index int, resources map[int]*domain.Resource) Widget {
	property := ResolveProperty(column)
	item := rowAt(items, index)
	w := Widget{Property: property, Field: property, Value: GetString(item, property)}

	switch {
	case property == "unit":
		return r.unitWidget(w, item, resources[index])
	case property == "product_key":
		return r.productKeyWidget(w)
	case property == "notes":
		w.Kind = WidgetTextarea
		w.Rows = NotesRows(r.ctx.Preferences)
		return w
	case numberInputs[property]:
		if property == "cost" && r.ctx.Type == domain.ItemTypeResource {
			return r.moneyWidget(w, item.Cost)
		}
		w.Kind = WidgetNumber
		w.Precision = NumberPrecision(property, r.ctx.Preferences, r.ctx.Currency.Precision)
		return w
	case property == "gross_line_total":
		return r.moneyWidget(w, item.GrossLineTotal)
	case property == "tax_amount":
		return r.moneyWidget(w, item.TaxAmount)
	case property == "line_total":
		return r.moneyWidget(w, item.LineTotal)
	case TaxSlot(property) > 0:
		return r.taxWidget(w, item)
	case isCustomSlot(property):
		return r.customFieldWidget(w, item)
	}

	w.Kind = WidgetText
	return w
}

func (r *ColumnResolver) unitWidget(w Widget, item domain.LineItem, res *domain.Resource) Widget {
	t := r.ctx.Translator
	if r.ctx.Type != domain.ItemTypeResource {
		w.Kind = WidgetUnitSelect
		if w.Value == "" {
			w.Value = string(DefaultUnit)
		}
		w.Options = UnitOptions(nil, r.ctx.Money, t)
		return w
	}

	if !item.HasResource() {
		w.Kind = WidgetReadOnly
		w.ReadOnly = true
		w.Display = item.RateLabel
		if w.Display == "" {
			w.Display = item.Unit
		}
		return w
	}

	w.Kind = WidgetUnitSelect
	w.Value = string(CurrentUnit(item, t))
	w.Display = item.RateLabel
	w.ResourceID = item.ResourceIDValue()
	w.Options = UnitOptions(res, r.ctx.Money, t)
	return w
}

func (r *ColumnResolver) productKeyWidget(w Widget) Widget {
	if r.ctx.Type == domain.ItemTypeResource {
		w.Kind = WidgetResourceSelector
		w.Selector = &Selector{
			Endpoint:     ResourceSearchEndpoint,
			SearchFields: []string{"name", "description"},
			Sort:         "name|asc",
			ClearButton:  true,
		}
		return w
	}
	w.Kind = WidgetProductSelector
	w.Selector = &Selector{
		ClearButton:  true,
		DisplayStock: strings.HasPrefix(r.ctx.Path, "/invoices"),
	}
	return w
}

func (r *ColumnResolver) moneyWidget(w Widget, amount decimal.Decimal) Widget {
	w.Kind = WidgetMoney
	w.ReadOnly = true
	w.Display = r.ctx.Money.FormatMoney(amount)
	return w
}

func (r *ColumnResolver) taxWidget(w Widget, item domain.LineItem) Widget {
	slot := TaxSlot(w.Property)
	w.TaxSlot = slot

	rateSelector := func() Widget {
		w.Kind = WidgetTaxRateSelector
		w.Value = TaxRateComboValue(item, slot)
		return w
	}

	if r.ctx.Company == nil || !r.ctx.Company.CalculateTaxes {
		return rateSelector()
	}
	if item.TaxID == domain.TaxIDOverride || item.TaxID == "" {
		w = rateSelector()
		w.CategoryToggle = slot == 1
		return w
	}
	if slot == 1 && isSelectableCategory(item.TaxID) {
		w.Kind = WidgetTaxCategory
		w.Field = "tax_id"
		w.Value = item.TaxID
		w.Categories = selectableCategories()
		return w
	}
	w.Kind = WidgetNone
	return w
}

func selectableCategories() []TaxCategory {
	out := make([]TaxCategory, 0, len(TaxCategories)-1)
	for _, c := range TaxCategories {
		if c.Value != domain.TaxIDOverride {
			out = append(out, c)
		}
	}
	return out
}

// customSlotField maps product1..4 and resource1..4 onto custom_value1..4.
func customSlotField(property string) string {
	for _, prefix := range []string{"product", "resource"} {
		if n, ok := strings.CutPrefix(property, prefix); ok && len(n) == 1 && n >= "1" && n <= "4" {
			return "custom_value" + n
		}
	}
	return ""
}

func isCustomSlot(property string) bool {
	return customSlotField(property) != ""
}

func (r *ColumnResolver) customFieldWidget(w Widget, item domain.LineItem) Widget {
	field := customSlotField(w.Property)
	w.Field = field
	w.Value = GetString(item, field)
	if def, ok := r.ctx.Company.CustomField(w.Property); ok {
		w.Kind = WidgetCustomField
		w.CustomFieldDefinition = def
		return w
	}
	w.Kind = WidgetText
	return w
}

// Tooltip is the hover text of a cell.
func (r *ColumnResolver) Tooltip(column string, items []domain.LineItem, index int) string {
	t := r.ctx.Translator
	item := rowAt(items, index)
	property := ResolveProperty(column)

	or := func(v, fallbackKey string) string {
		if v != "" {
			return v
		}
		return t.T(fallbackKey)
	}
	money := func(d decimal.Decimal, fallbackKey string) string {
		if d.IsZero() {
			return t.T(fallbackKey)
		}
		return r.ctx.Money.FormatMoney(d)
	}
	percent := func(d decimal.Decimal, fallbackKey string) string {
		if d.IsZero() {
			return t.T(fallbackKey)
		}
		return d.String() + "%"
	}

	switch property {
	case "product_key":
		return or(item.ProductKey, "no_product_selected")
	case "notes":
		return or(item.Notes, "no_description")
	case "unit":
		if item.RateLabel != "" {
			return item.RateLabel
		}
		return or(item.Unit, "no_unit")
	case "cost":
		return money(item.Cost, "no_cost")
	case "quantity":
		return or(GetString(item, "quantity"), "no_quantity")
	case "billable_time":
		return or(GetString(item, "billable_time"), "no_billable_time")
	case "line_total":
		return money(item.LineTotal, "no_total")
	case "discount":
		if item.IsAmountDiscount {
			return money(item.Discount, "no_discount")
		}
		return percent(item.Discount, "no_discount")
	case "tax_rate1":
		return percent(item.TaxRate1, "no_tax")
	}
	if field := customSlotField(property); field != "" {
		property = field
	}
	return or(GetString(item, property), "no_value")
}

func rowAt(items []domain.LineItem, index int) domain.LineItem {
	if index < 0 || index >= len(items) {
		return domain.LineItem{}
	}
	return items[index]
}
