package i18n_test

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "per_hour", "per hour"},
		{"en_US", "per_month", "per month"},
		{"de", "per_day", "pro Tag"},
		{"fr-CA", "week", "semaine"},
		{"de", "created_resource", "Successfully created resource"},
		{"xx", "per_week", "per week"},
		{"", "hour", "hour"},
		{"en", "unknown_key", "unknown_key"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.For(tt.locale).T(tt.key))
		})
	}
}

func TestEnglish(t *testing.T) {
	assert.Equal(t, "Add Line", i18n.English().T("add_line"))
}
