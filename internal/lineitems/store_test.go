package lineitems_test

import (
	"sort"
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []domain.LineItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func mixedDocument() *domain.Document {
	return &domain.Document{
		Kind: domain.DocumentInvoice,
		LineItems: []domain.LineItem{
			filled("p1", domain.ItemTypeProduct),
			filled("r1", domain.ItemTypeResource),
			filled("p2", domain.ItemTypeProduct),
			filled("r2", domain.ItemTypeResource),
			filled("p3", domain.ItemTypeProduct),
		},
	}
}

func TestStoreReorder(t *testing.T) {
	tests := []struct {
		name     string
		itemType domain.ItemType
		from, to int
		want     []string
	}{
		{"product down", domain.ItemTypeProduct, 0, 2, []string{"p2", "r1", "p3", "r2", "p1"}},
		{"product up", domain.ItemTypeProduct, 2, 0, []string{"p3", "r1", "p1", "r2", "p2"}},
		{"resource swap", domain.ItemTypeResource, 1, 0, []string{"p1", "r2", "p2", "r1", "p3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mixedDocument()
			before := ids(doc.LineItems)
			store := lineitems.NewStore(doc)

			require.True(t, store.Reorder(tt.itemType, tt.from, tt.to))

			after := ids(store.Items())
			if diff := cmp.Diff(tt.want, after); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}

			sort.Strings(before)
			sort.Strings(after)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("identity multiset changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestStoreReorder_NoOps(t *testing.T) {
	doc := mixedDocument()
	want := ids(doc.LineItems)
	store := lineitems.NewStore(doc)

	assert.False(t, store.Reorder(domain.ItemTypeProduct, 1, 1))
	assert.False(t, store.Reorder(domain.ItemTypeProduct, 0, 3))
	assert.False(t, store.Reorder(domain.ItemTypeResource, -1, 0))
	assert.Equal(t, want, ids(store.Items()))
}

func TestStoreMutations(t *testing.T) {
	doc := &domain.Document{LineItems: []domain.LineItem{{TypeID: domain.ItemTypeProduct}}}
	store := lineitems.NewStore(doc)
	assert.NotEmpty(t, doc.LineItems[0].ID, "rows get an identity")

	idx := store.Insert(domain.LineItem{TypeID: domain.ItemTypeResource})
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{1}, store.Positions(domain.ItemTypeResource))

	require.NoError(t, store.SetProperty(1, "notes", "x"))
	assert.Equal(t, "x", store.Filter(domain.ItemTypeResource)[0].Notes)

	assert.ErrorIs(t, store.SetProperty(5, "notes", "x"), lineitems.ErrRowOutOfRange)
	assert.ErrorIs(t, store.Delete(-1), lineitems.ErrRowOutOfRange)
	assert.ErrorIs(t, store.Update(9, domain.LineItem{}), lineitems.ErrRowOutOfRange)

	_, ok := store.Get(42)
	assert.False(t, ok)

	require.NoError(t, store.Delete(0))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, domain.ItemTypeResource, doc.LineItems[0].TypeID)
}

func TestMoveImmutable(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := lineitems.MoveImmutable(in, 3, 1)

	assert.Equal(t, []int{1, 4, 2, 3}, out)
	assert.Equal(t, []int{1, 2, 3, 4}, in)
}
