package models

// CompanyCurrency is stored inside the settings JSONB column.
type CompanyCurrency struct {
	Code              string `json:"code"`
	Symbol            string `json:"symbol"`
	Precision         int    `json:"precision"`
	ThousandSeparator string `json:"thousand_separator"`
	DecimalSeparator  string `json:"decimal_separator"`
}

// CompanySettings is the settings JSONB column.
type CompanySettings struct {
	Currency *CompanyCurrency `json:"currency,omitempty"`
	Locale   string           `json:"locale"`
}

// Company is a row of the companies table.
type Company struct {
	ID                  string            `db:"id"`
	Name                string            `db:"name"`
	CalculateTaxes      bool              `db:"calculate_taxes"`
	EnabledItemTaxRates int               `db:"enabled_item_tax_rates"`
	CustomFields        map[string]string `db:"custom_fields"` // JSONB
	Settings            CompanySettings   `db:"settings"`      // JSONB
}
