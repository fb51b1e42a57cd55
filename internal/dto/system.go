package dto

import "github.com/SscSPs/invoicing_app/internal/core/domain"

// CompanyResponse defines the company data returned by refresh.
type CompanyResponse struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	CalculateTaxes      bool                   `json:"calculate_taxes"`
	EnabledItemTaxRates int                    `json:"enabled_item_tax_rates"`
	CustomFields        map[string]string      `json:"custom_fields"`
	Settings            domain.CompanySettings `json:"settings"`
}

// RefreshResponse is returned by POST /refresh.
type RefreshResponse struct {
	UserID  string           `json:"user_id"`
	Company *CompanyResponse `json:"company,omitempty"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	fields := c.CustomFields
	if fields == nil {
		fields = map[string]string{}
	}
	return &CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		CalculateTaxes:      c.CalculateTaxes,
		EnabledItemTaxRates: c.EnabledItemTaxRates,
		CustomFields:        fields,
		Settings:            c.Settings,
	}
}
