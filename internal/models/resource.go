package models

import (
	"github.com/shopspring/decimal"
)

// Resource is a row of the resources table.
type Resource struct {
	ID             string          `db:"id"`
	CompanyID      string          `db:"company_id"`
	AssignedUserID *string         `db:"assigned_user_id"` // Nullable
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Rate           decimal.Decimal `db:"rate"`
	RatePerHour    decimal.Decimal `db:"rate_per_hour"`
	RatePerDay     decimal.Decimal `db:"rate_per_day"`
	RatePerWeek    decimal.Decimal `db:"rate_per_week"`
	RatePerMonth   decimal.Decimal `db:"rate_per_month"`
	CustomValue1   string          `db:"custom_value1"`
	CustomValue2   string          `db:"custom_value2"`
	CustomValue3   string          `db:"custom_value3"`
	CustomValue4   string          `db:"custom_value4"`
	Lifecycle
	AuditFields
}
