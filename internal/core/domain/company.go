package domain

// Currency describes how money is displayed for a company.
type Currency struct {
	Code              string `json:"code"`
	Symbol            string `json:"symbol"`
	Precision         int    `json:"precision"`
	ThousandSeparator string `json:"thousand_separator"`
	DecimalSeparator  string `json:"decimal_separator"`
}

// DefaultCurrency is used when a company has no currency configured.
var DefaultCurrency = Currency{
	Code:              "USD",
	Symbol:            "$",
	Precision:         2,
	ThousandSeparator: ",",
	DecimalSeparator:  ".",
}

// CompanySettings holds display settings of a company.
type CompanySettings struct {
	Currency Currency `json:"currency"`
	Locale   string   `json:"locale"`
}

// Company is the tenant every resource and employee belongs to.
type Company struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	CalculateTaxes      bool              `json:"calculate_taxes"`
	EnabledItemTaxRates int               `json:"enabled_item_tax_rates"`
	CustomFields        map[string]string `json:"custom_fields"`
	Settings            CompanySettings   `json:"settings"`
}

// CustomField returns the definition of a custom field slot such as "product1".
func (c *Company) CustomField(slot string) (string, bool) {
	if c == nil || c.CustomFields == nil {
		return "", false
	}
	def, ok := c.CustomFields[slot]
	return def, ok && def != ""
}
