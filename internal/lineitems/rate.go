package lineitems

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/shopspring/decimal"
)

// Unit is the billing period a resource row is priced in.
type Unit string

const (
	UnitHour  Unit = "hour"
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Units lists the selectable units in display order.
var Units = []Unit{UnitHour, UnitDay, UnitWeek, UnitMonth}

// DefaultUnit is used when a row has no recognizable unit.
const DefaultUnit = UnitHour

// ParseUnit accepts only the canonical unit names.
func ParseUnit(s string) (Unit, bool) {
	switch u := Unit(s); u {
	case UnitHour, UnitDay, UnitWeek, UnitMonth:
		return u, true
	default:
		return "", false
	}
}

// MoneyFormatter renders an amount in the document currency.
type MoneyFormatter interface {
	FormatMoney(amount decimal.Decimal) string
}

// ResolveRate returns the resource rate for unit. Unknown units use the
// hourly rate. A nil resource yields zero; a unit never borrows another
// unit's rate.
func ResolveRate(resource *domain.Resource, unit Unit) decimal.Decimal {
	if resource == nil {
		return decimal.Zero
	}
	switch unit {
	case UnitHour:
		return resource.RatePerHour
	case UnitDay:
		return resource.RatePerDay
	case UnitWeek:
		return resource.RatePerWeek
	case UnitMonth:
		return resource.RatePerMonth
	default:
		return resource.RatePerHour
	}
}

// FormatRateLabel renders "<money> <per unit>", e.g. "$50.00 per hour".
func FormatRateLabel(amount decimal.Decimal, unit Unit, money MoneyFormatter, t i18n.Translator) string {
	return money.FormatMoney(amount) + " " + perUnitLabel(unit, t)
}

func perUnitLabel(unit Unit, t i18n.Translator) string {
	switch unit {
	case UnitHour, UnitDay, UnitWeek, UnitMonth:
		return t.T("per_" + string(unit))
	default:
		return t.T("per") + " " + string(unit)
	}
}

// UnitOption is one entry of the unit selector.
type UnitOption struct {
	Value Unit
	Label string
}

// UnitOptions lists the four units. With a resource each label carries the
// rate, e.g. "$400.00 per day"; without one only the unit name is shown.
func UnitOptions(resource *domain.Resource, money MoneyFormatter, t i18n.Translator) []UnitOption {
	opts := make([]UnitOption, 0, len(Units))
	for _, u := range Units {
		label := t.T(string(u))
		if resource != nil {
			label = money.FormatMoney(ResolveRate(resource, u)) + " " + t.T("per") + " " + t.T(string(u))
		}
		opts = append(opts, UnitOption{Value: u, Label: label})
	}
	return opts
}
