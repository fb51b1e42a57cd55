package domain

import "github.com/shopspring/decimal"

// EntityTypeResource is the entity_type reported for resources.
const EntityTypeResource = "resource"

// Resource is a billable catalog entry with one rate per time unit.
type Resource struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	AssignedUserID string          `json:"assigned_user_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Rate           decimal.Decimal `json:"rate"` // legacy monthly headline rate
	RatePerHour    decimal.Decimal `json:"rate_per_hour"`
	RatePerDay     decimal.Decimal `json:"rate_per_day"`
	RatePerWeek    decimal.Decimal `json:"rate_per_week"`
	RatePerMonth   decimal.Decimal `json:"rate_per_month"`
	CustomValue1   string          `json:"custom_value1"`
	CustomValue2   string          `json:"custom_value2"`
	CustomValue3   string          `json:"custom_value3"`
	CustomValue4   string          `json:"custom_value4"`
	EntityType     string          `json:"entity_type"`
	Lifecycle
	AuditFields
}
