package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateResourceRequest defines the data needed to create a resource.
type CreateResourceRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Description    string          `json:"description" binding:"max=65535"`
	AssignedUserID string          `json:"assigned_user_id" binding:"max=64"`
	Rate           decimal.Decimal `json:"rate"`
	RatePerHour    decimal.Decimal `json:"rate_per_hour"`
	RatePerDay     decimal.Decimal `json:"rate_per_day"`
	RatePerWeek    decimal.Decimal `json:"rate_per_week"`
	RatePerMonth   decimal.Decimal `json:"rate_per_month"`
	CustomValue1   string          `json:"custom_value1" binding:"max=255"`
	CustomValue2   string          `json:"custom_value2" binding:"max=255"`
	CustomValue3   string          `json:"custom_value3" binding:"max=255"`
	CustomValue4   string          `json:"custom_value4" binding:"max=255"`
}

// UpdateResourceRequest replaces every editable field of a resource.
type UpdateResourceRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Description    string          `json:"description" binding:"max=65535"`
	AssignedUserID string          `json:"assigned_user_id" binding:"max=64"`
	Rate           decimal.Decimal `json:"rate"`
	RatePerHour    decimal.Decimal `json:"rate_per_hour"`
	RatePerDay     decimal.Decimal `json:"rate_per_day"`
	RatePerWeek    decimal.Decimal `json:"rate_per_week"`
	RatePerMonth   decimal.Decimal `json:"rate_per_month"`
	CustomValue1   string          `json:"custom_value1" binding:"max=255"`
	CustomValue2   string          `json:"custom_value2" binding:"max=255"`
	CustomValue3   string          `json:"custom_value3" binding:"max=255"`
	CustomValue4   string          `json:"custom_value4" binding:"max=255"`
}

// ResourceRates returns the rates of the request keyed by field name.
func (r CreateResourceRequest) ResourceRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"rate":           r.Rate,
		"rate_per_hour":  r.RatePerHour,
		"rate_per_day":   r.RatePerDay,
		"rate_per_week":  r.RatePerWeek,
		"rate_per_month": r.RatePerMonth,
	}
}

// ResourceRates returns the rates of the request keyed by field name.
func (r UpdateResourceRequest) ResourceRates() map[string]decimal.Decimal {
	return CreateResourceRequest(r).ResourceRates()
}

// ResourceResponse defines the data returned for a resource.
type ResourceResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	AssignedUserID string          `json:"assigned_user_id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Rate           decimal.Decimal `json:"rate"`
	RatePerHour    decimal.Decimal `json:"rate_per_hour"`
	RatePerDay     decimal.Decimal `json:"rate_per_day"`
	RatePerWeek    decimal.Decimal `json:"rate_per_week"`
	RatePerMonth   decimal.Decimal `json:"rate_per_month"`
	CustomValue1   string          `json:"custom_value1"`
	CustomValue2   string          `json:"custom_value2"`
	CustomValue3   string          `json:"custom_value3"`
	CustomValue4   string          `json:"custom_value4"`
	IsDeleted      bool            `json:"is_deleted"`
	ArchivedAt     *int64          `json:"archived_at"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
	EntityType     string          `json:"entity_type"`
}

// ToResourceResponse converts a domain.Resource to ResourceResponse DTO.
// Timestamps are unix seconds.
func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		AssignedUserID: r.AssignedUserID,
		CompanyID:      r.CompanyID,
		Name:           r.Name,
		Description:    r.Description,
		Rate:           r.Rate,
		RatePerHour:    r.RatePerHour,
		RatePerDay:     r.RatePerDay,
		RatePerWeek:    r.RatePerWeek,
		RatePerMonth:   r.RatePerMonth,
		CustomValue1:   r.CustomValue1,
		CustomValue2:   r.CustomValue2,
		CustomValue3:   r.CustomValue3,
		CustomValue4:   r.CustomValue4,
		IsDeleted:      r.IsDeleted,
		ArchivedAt:     unixPtr(r.ArchivedAt),
		CreatedAt:      r.CreatedAt.Unix(),
		UpdatedAt:      r.UpdatedAt.Unix(),
		EntityType:     domain.EntityTypeResource,
	}
}

// ToListResourceResponse converts a slice of domain.Resource to response DTOs.
func ToListResourceResponse(resources []domain.Resource) []ResourceResponse {
	res := make([]ResourceResponse, len(resources))
	for i := range resources {
		res[i] = ToResourceResponse(&resources[i])
	}
	return res
}

// ToDomainResource converts a response back into the domain type.
func (r ResourceResponse) ToDomainResource() domain.Resource {
	res := domain.Resource{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		AssignedUserID: r.AssignedUserID,
		Name:           r.Name,
		Description:    r.Description,
		Rate:           r.Rate,
		RatePerHour:    r.RatePerHour,
		RatePerDay:     r.RatePerDay,
		RatePerWeek:    r.RatePerWeek,
		RatePerMonth:   r.RatePerMonth,
		CustomValue1:   r.CustomValue1,
		CustomValue2:   r.CustomValue2,
		CustomValue3:   r.CustomValue3,
		CustomValue4:   r.CustomValue4,
		EntityType:     r.EntityType,
		Lifecycle:      domain.Lifecycle{IsDeleted: r.IsDeleted, ArchivedAt: timePtr(r.ArchivedAt)},
		AuditFields: domain.AuditFields{
			UserID:    r.UserID,
			CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
			UpdatedAt: time.Unix(r.UpdatedAt, 0).UTC(),
		},
	}
	return res
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

func timePtr(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := time.Unix(*v, 0).UTC()
	return &t
}
