package lineitems_test

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testResource() *domain.Resource {
	return &domain.Resource{
		ID:           "res-1",
		Name:         "Senior engineer",
		Description:  "Backend work",
		RatePerHour:  decimal.NewFromInt(50),
		RatePerDay:   decimal.NewFromInt(400),
		RatePerWeek:  decimal.NewFromInt(1800),
		RatePerMonth: decimal.Zero,
	}
}

var usd = utils.MoneyFormatter{Currency: domain.DefaultCurrency}

func TestResolveRate(t *testing.T) {
	res := testResource()

	tests := []struct {
		name string
		res  *domain.Resource
		unit lineitems.Unit
		want decimal.Decimal
	}{
		{"hour", res, lineitems.UnitHour, decimal.NewFromInt(50)},
		{"day", res, lineitems.UnitDay, decimal.NewFromInt(400)},
		{"week", res, lineitems.UnitWeek, decimal.NewFromInt(1800)},
		{"zero month never falls back", res, lineitems.UnitMonth, decimal.Zero},
		{"unknown unit uses hourly", res, lineitems.Unit("unknown-unit"), decimal.NewFromInt(50)},
		{"nil resource", nil, lineitems.UnitDay, decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineitems.ResolveRate(tt.res, tt.unit)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestFormatRateLabel(t *testing.T) {
	en := i18n.English()

	assert.Equal(t, "$50.00 per hour", lineitems.FormatRateLabel(decimal.NewFromInt(50), lineitems.UnitHour, usd, en))
	assert.Equal(t, "$1,800.00 per week", lineitems.FormatRateLabel(decimal.NewFromInt(1800), lineitems.UnitWeek, usd, en))
	assert.Equal(t, "$5.00 per shift", lineitems.FormatRateLabel(decimal.NewFromInt(5), lineitems.Unit("shift"), usd, en))
	assert.Equal(t, "$400.00 pro Tag", lineitems.FormatRateLabel(decimal.NewFromInt(400), lineitems.UnitDay, usd, i18n.For("de")))
}

func TestUnitFromLabel(t *testing.T) {
	en := i18n.English()

	assert.Equal(t, lineitems.UnitDay, lineitems.UnitFromLabel("$400.00 per day", en))
	assert.Equal(t, lineitems.UnitMonth, lineitems.UnitFromLabel("$0.00 per month", en))
	assert.Equal(t, lineitems.UnitHour, lineitems.UnitFromLabel("something else", en))
	assert.Equal(t, lineitems.UnitWeek, lineitems.UnitFromLabel("$1.800,00 pro Woche", i18n.For("de_DE")))
}

func TestCurrentUnit(t *testing.T) {
	en := i18n.English()

	assert.Equal(t, lineitems.UnitWeek, lineitems.CurrentUnit(domain.LineItem{Unit: "week", RateLabel: "$1.00 per day"}, en))
	assert.Equal(t, lineitems.UnitDay, lineitems.CurrentUnit(domain.LineItem{RateLabel: "$400.00 per day"}, en))
	assert.Equal(t, lineitems.UnitDay, lineitems.CurrentUnit(domain.LineItem{Unit: "$400.00 per day"}, en), "legacy rows keep the label in unit")
	assert.Equal(t, lineitems.UnitHour, lineitems.CurrentUnit(domain.LineItem{}, en))
}

func TestUnitOptions(t *testing.T) {
	en := i18n.English()

	withRates := lineitems.UnitOptions(testResource(), usd, en)
	assert.Equal(t, []lineitems.UnitOption{
		{Value: lineitems.UnitHour, Label: "$50.00 per hour"},
		{Value: lineitems.UnitDay, Label: "$400.00 per day"},
		{Value: lineitems.UnitWeek, Label: "$1,800.00 per week"},
		{Value: lineitems.UnitMonth, Label: "$0.00 per month"},
	}, withRates)

	plain := lineitems.UnitOptions(nil, usd, en)
	assert.Equal(t, "hour", plain[0].Label)
	assert.Equal(t, "month", plain[3].Label)
}
