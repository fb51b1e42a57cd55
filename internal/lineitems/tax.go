package lineitems

import (
	"fmt"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxCategory is an entry of the tax category selector. Category "7" lets the
// user override the category with explicit rates.
type TaxCategory struct {
	Value string
	Label string
}

// TaxCategories lists the categories offered by the category selector.
var TaxCategories = []TaxCategory{
	{Value: "1", Label: "physical_goods"},
	{Value: "2", Label: "services"},
	{Value: "3", Label: "digital_products"},
	{Value: "4", Label: "shipping"},
	{Value: "5", Label: "tax_exempt"},
	{Value: "6", Label: "reduced_tax"},
	{Value: domain.TaxIDOverride, Label: "override_tax"},
	{Value: "8", Label: "zero_rated"},
	{Value: "9", Label: "reverse_tax"},
}

// DefaultTaxCategory is what the "switch to category" toggle selects.
const DefaultTaxCategory = "1"

func isSelectableCategory(taxID string) bool {
	if taxID == domain.TaxIDOverride {
		return false
	}
	for _, c := range TaxCategories {
		if c.Value == taxID {
			return true
		}
	}
	return false
}

// TaxRate is a named tax rate picked in a tax rate selector.
type TaxRate struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// TaxSlot returns the 1-based slot of a tax rate property, or 0.
func TaxSlot(property string) int {
	switch property {
	case "tax_rate1":
		return 1
	case "tax_rate2":
		return 2
	case "tax_rate3":
		return 3
	}
	return 0
}

// TaxRateComboValue is the selector value of a tax slot: "<name>||<rate>",
// or "" when the slot has no name.
func TaxRateComboValue(item domain.LineItem, slot int) string {
	name, rate := taxSlot(&item, slot)
	if name == nil || *name == "" {
		return ""
	}
	return fmt.Sprintf("%s||%s", *name, rate.String())
}

// ParseTaxRateCombo is the inverse of TaxRateComboValue.
func ParseTaxRateCombo(value string) (TaxRate, bool) {
	name, rawRate, ok := strings.Cut(value, "||")
	if !ok || name == "" {
		return TaxRate{}, false
	}
	rate, err := decimal.NewFromString(rawRate)
	if err != nil {
		return TaxRate{}, false
	}
	return TaxRate{Name: name, Rate: rate}, true
}

// ApplyTaxRate writes rate into the slot. A nil rate clears it.
func ApplyTaxRate(item *domain.LineItem, slot int, rate *TaxRate) error {
	name, value := taxSlot(item, slot)
	if name == nil {
		return fmt.Errorf("tax slot %d: %w", slot, ErrUnknownProperty)
	}
	if rate == nil {
		*name, *value = "", decimal.Zero
		return nil
	}
	*name, *value = rate.Name, rate.Rate
	return nil
}

// ApplyProductTaxPolicy clears the tax slots a company has not enabled.
// enabledRates is the company's enabled_item_tax_rates (0 to 3).
func ApplyProductTaxPolicy(product *domain.Product, enabledRates int) {
	if enabledRates < 1 {
		product.TaxName1, product.TaxRate1 = "", decimal.Zero
	}
	if enabledRates < 2 {
		product.TaxName2, product.TaxRate2 = "", decimal.Zero
	}
	if enabledRates < 3 {
		product.TaxName3, product.TaxRate3 = "", decimal.Zero
	}
}

func taxSlot(item *domain.LineItem, slot int) (*string, *decimal.Decimal) {
	switch slot {
	case 1:
		return &item.TaxName1, &item.TaxRate1
	case 2:
		return &item.TaxName2, &item.TaxRate2
	case 3:
		return &item.TaxName3, &item.TaxRate3
	}
	return nil, nil
}
