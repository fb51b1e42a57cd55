package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToDomainCompany converts a model Company to a domain Company. A missing
// currency falls back to domain.DefaultCurrency.
func ToDomainCompany(m models.Company) domain.Company {
	currency := domain.DefaultCurrency
	if c := m.Settings.Currency; c != nil {
		currency = domain.Currency{
			Code:              c.Code,
			Symbol:            c.Symbol,
			Precision:         c.Precision,
			ThousandSeparator: c.ThousandSeparator,
			DecimalSeparator:  c.DecimalSeparator,
		}
	}
	fields := m.CustomFields
	if fields == nil {
		fields = map[string]string{}
	}
	return domain.Company{
		ID:                  m.ID,
		Name:                m.Name,
		CalculateTaxes:      m.CalculateTaxes,
		EnabledItemTaxRates: m.EnabledItemTaxRates,
		CustomFields:        fields,
		Settings: domain.CompanySettings{
			Currency: currency,
			Locale:   m.Settings.Locale,
		},
	}
}
