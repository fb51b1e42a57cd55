package domain

import "github.com/shopspring/decimal"

// ItemType discriminates line item rows of a document.
type ItemType string

const (
	ItemTypeProduct  ItemType = "1"
	ItemTypeResource ItemType = "7"
)

// TaxIDOverride is the tax category that lets the user pick explicit tax rates.
const TaxIDOverride = "7"

// LineItem is one row of an invoice, recurring invoice or purchase order.
// ID is a client side identity and never persisted meaning.
type LineItem struct {
	ID               string          `json:"_id"`
	TypeID           ItemType        `json:"type_id"`
	ProductKey       string          `json:"product_key"`
	Notes            string          `json:"notes"`
	Unit             string          `json:"unit"`
	RateLabel        string          `json:"rate_label"`
	Cost             decimal.Decimal `json:"cost"`
	Quantity         decimal.Decimal `json:"quantity"`
	BillableTime     decimal.Decimal `json:"billable_time"`
	Discount         decimal.Decimal `json:"discount"`
	IsAmountDiscount bool            `json:"is_amount_discount"`
	ResourceID       *string         `json:"resource_id"`
	TaxID            string          `json:"tax_id"`
	TaxName1         string          `json:"tax_name1"`
	TaxRate1         decimal.Decimal `json:"tax_rate1"`
	TaxName2         string          `json:"tax_name2"`
	TaxRate2         decimal.Decimal `json:"tax_rate2"`
	TaxName3         string          `json:"tax_name3"`
	TaxRate3         decimal.Decimal `json:"tax_rate3"`
	LineTotal        decimal.Decimal `json:"line_total"`
	GrossLineTotal   decimal.Decimal `json:"gross_line_total"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	CustomValue1     string          `json:"custom_value1"`
	CustomValue2     string          `json:"custom_value2"`
	CustomValue3     string          `json:"custom_value3"`
	CustomValue4     string          `json:"custom_value4"`
}

// HasResource reports whether the row is linked to a catalog resource.
func (li LineItem) HasResource() bool {
	return li.ResourceID != nil && *li.ResourceID != ""
}

// ResourceIDValue returns the linked resource id or "".
func (li LineItem) ResourceIDValue() string {
	if li.ResourceID == nil {
		return ""
	}
	return *li.ResourceID
}
