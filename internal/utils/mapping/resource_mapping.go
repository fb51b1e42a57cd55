package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelResource converts a domain Resource to a model Resource
func ToModelResource(d domain.Resource) models.Resource {
	var assigned *string
	if d.AssignedUserID != "" {
		assigned = domain.StringPtr(d.AssignedUserID)
	}
	return models.Resource{
		ID:             d.ID,
		CompanyID:      d.CompanyID,
		AssignedUserID: assigned,
		Name:           d.Name,
		Description:    d.Description,
		Rate:           d.Rate,
		RatePerHour:    d.RatePerHour,
		RatePerDay:     d.RatePerDay,
		RatePerWeek:    d.RatePerWeek,
		RatePerMonth:   d.RatePerMonth,
		CustomValue1:   d.CustomValue1,
		CustomValue2:   d.CustomValue2,
		CustomValue3:   d.CustomValue3,
		CustomValue4:   d.CustomValue4,
		Lifecycle:      ToModelLifecycle(d.Lifecycle),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainResource converts a model Resource to a domain Resource
func ToDomainResource(m models.Resource) domain.Resource {
	var assigned string
	if m.AssignedUserID != nil {
		assigned = *m.AssignedUserID
	}
	return domain.Resource{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		AssignedUserID: assigned,
		Name:           m.Name,
		Description:    m.Description,
		Rate:           m.Rate,
		RatePerHour:    m.RatePerHour,
		RatePerDay:     m.RatePerDay,
		RatePerWeek:    m.RatePerWeek,
		RatePerMonth:   m.RatePerMonth,
		CustomValue1:   m.CustomValue1,
		CustomValue2:   m.CustomValue2,
		CustomValue3:   m.CustomValue3,
		CustomValue4:   m.CustomValue4,
		EntityType:     domain.EntityTypeResource,
		Lifecycle:      ToDomainLifecycle(m.Lifecycle),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainResourceSlice converts a slice of model Resources to a slice of domain Resources
func ToDomainResourceSlice(ms []models.Resource) []domain.Resource {
	ds := make([]domain.Resource, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResource(m)
	}
	return ds
}
