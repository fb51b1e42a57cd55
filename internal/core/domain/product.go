package domain

import "github.com/shopspring/decimal"

// Product is a catalog product picked in the product rows of a document.
type Product struct {
	ID           string          `json:"id"`
	ProductKey   string          `json:"product_key"`
	Notes        string          `json:"notes"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	TaxID        string          `json:"tax_id"`
	TaxName1     string          `json:"tax_name1"`
	TaxRate1     decimal.Decimal `json:"tax_rate1"`
	TaxName2     string          `json:"tax_name2"`
	TaxRate2     decimal.Decimal `json:"tax_rate2"`
	TaxName3     string          `json:"tax_name3"`
	TaxRate3     decimal.Decimal `json:"tax_rate3"`
	InStock      decimal.Decimal `json:"in_stock_quantity"`
	CustomValue1 string          `json:"custom_value1"`
	CustomValue2 string          `json:"custom_value2"`
	CustomValue3 string          `json:"custom_value3"`
	CustomValue4 string          `json:"custom_value4"`
}
