package lineitems

import (
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/i18n"
)

// UnitFromLabel recovers the unit from a formatted rate label by looking for
// the translated "per <unit>" phrase. Labels without one map to DefaultUnit.
// Only rows saved before unit and label were stored separately need this.
func UnitFromLabel(label string, t i18n.Translator) Unit {
	for _, u := range Units {
		if strings.Contains(label, t.T("per_"+string(u))) {
			return u
		}
	}
	return DefaultUnit
}

// CurrentUnit returns the unit of a row: the canonical unit field when it
// holds one, otherwise whatever the rate label or a legacy label in the unit
// field encodes.
func CurrentUnit(item domain.LineItem, t i18n.Translator) Unit {
	if u, ok := ParseUnit(item.Unit); ok {
		return u
	}
	if item.RateLabel != "" {
		return UnitFromLabel(item.RateLabel, t)
	}
	return UnitFromLabel(item.Unit, t)
}
