package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModelLifecycle converts the domain soft-delete markers.
func ToModelLifecycle(d domain.Lifecycle) models.Lifecycle {
	return models.Lifecycle{IsDeleted: d.IsDeleted, ArchivedAt: d.ArchivedAt}
}

// ToDomainLifecycle converts the stored soft-delete markers.
func ToDomainLifecycle(m models.Lifecycle) domain.Lifecycle {
	return domain.Lifecycle{IsDeleted: m.IsDeleted, ArchivedAt: m.ArchivedAt}
}
