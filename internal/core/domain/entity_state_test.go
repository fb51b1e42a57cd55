package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_State(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		lifecycle domain.Lifecycle
		want      domain.EntityState
	}{
		{name: "fresh entity", lifecycle: domain.Lifecycle{}, want: domain.StateActive},
		{name: "archived", lifecycle: domain.Lifecycle{ArchivedAt: &now}, want: domain.StateArchived},
		{name: "deleted wins over archived", lifecycle: domain.Lifecycle{IsDeleted: true, ArchivedAt: &now}, want: domain.StateDeleted},
		{name: "deleted without archive stamp", lifecycle: domain.Lifecycle{IsDeleted: true}, want: domain.StateDeleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lifecycle.State())
		})
	}
}

func TestLifecycle_ApplyState(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var l domain.Lifecycle

	l.ApplyState(domain.StateArchived, now)
	assert.Equal(t, domain.StateArchived, l.State())

	l.ApplyState(domain.StateDeleted, now.Add(time.Hour))
	assert.Equal(t, domain.StateDeleted, l.State())
	require.NotNil(t, l.ArchivedAt)
	assert.Equal(t, now, *l.ArchivedAt, "deleting keeps the archive timestamp")

	l.ApplyState(domain.StateActive, now)
	assert.Equal(t, domain.StateActive, l.State())
	assert.Nil(t, l.ArchivedAt)
}

func TestParseStateFilter(t *testing.T) {
	f, err := domain.ParseStateFilter("")
	require.NoError(t, err)
	assert.True(t, f.Includes(domain.StateActive))
	assert.True(t, f.Includes(domain.StateArchived))
	assert.False(t, f.Includes(domain.StateDeleted))

	f, err = domain.ParseStateFilter("active")
	require.NoError(t, err)
	assert.Equal(t, domain.StateFilter{domain.StateActive}, f)
	assert.False(t, f.Includes(domain.StateArchived))

	f, err = domain.ParseStateFilter("Archived, deleted")
	require.NoError(t, err)
	assert.Equal(t, domain.StateFilter{domain.StateArchived, domain.StateDeleted}, f)

	f, err = domain.ParseStateFilter("all")
	require.NoError(t, err)
	assert.True(t, f.Includes(domain.StateDeleted))

	_, err = domain.ParseStateFilter("active,bogus")
	assert.Error(t, err)
}

func TestEmployee_Status(t *testing.T) {
	now := time.Now()
	assert.Equal(t, domain.EmployeeStatusActive, domain.Employee{}.Status())
	assert.Equal(t, domain.EmployeeStatusInactive, domain.Employee{Lifecycle: domain.Lifecycle{ArchivedAt: &now}}.Status())
}

func TestDocument_RelationType(t *testing.T) {
	inv := domain.Document{Kind: domain.DocumentInvoice, ClientID: "c1", VendorID: "v1"}
	po := domain.Document{Kind: domain.DocumentPurchaseOrder, ClientID: "c1", VendorID: "v1"}

	assert.Equal(t, domain.RelationClient, inv.RelationType())
	assert.Equal(t, "c1", inv.CounterpartyID())
	assert.Equal(t, domain.RelationVendor, po.RelationType())
	assert.Equal(t, "v1", po.CounterpartyID())
}
