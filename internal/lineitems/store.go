// Package lineitems holds the editing logic of the line item table shared by
// invoices, recurring invoices and purchase orders: rate resolution, column
// to widget dispatch, the row store and the table controller.
package lineitems

import (
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ErrRowOutOfRange is returned by mutations addressing a missing row.
var ErrRowOutOfRange = errors.New("line item index out of range")

// Store mutates the line items of a parent document in place. Indexes always
// address the parent's full sequence.
type Store struct {
	doc *domain.Document
}

// NewStore wraps doc. Rows without a client identity get one.
func NewStore(doc *domain.Document) *Store {
	for i := range doc.LineItems {
		if doc.LineItems[i].ID == "" {
			doc.LineItems[i].ID = NewLineItem(doc.LineItems[i].TypeID).ID
		}
	}
	return &Store{doc: doc}
}

// Items returns the full sequence. Callers must not modify it.
func (s *Store) Items() []domain.LineItem {
	return s.doc.LineItems
}

// Len is the number of rows of every type.
func (s *Store) Len() int {
	return len(s.doc.LineItems)
}

// Get returns the row at index. Out-of-range reads return a zero row.
func (s *Store) Get(index int) (domain.LineItem, bool) {
	if index < 0 || index >= len(s.doc.LineItems) {
		return domain.LineItem{}, false
	}
	return s.doc.LineItems[index], true
}

// Insert appends item and returns its index.
func (s *Store) Insert(item domain.LineItem) int {
	if item.ID == "" {
		item.ID = NewLineItem(item.TypeID).ID
	}
	s.doc.LineItems = append(s.doc.LineItems, item)
	return len(s.doc.LineItems) - 1
}

// Update replaces the row at index.
func (s *Store) Update(index int, item domain.LineItem) error {
	if index < 0 || index >= len(s.doc.LineItems) {
		return fmt.Errorf("update row %d: %w", index, ErrRowOutOfRange)
	}
	if item.ID == "" {
		item.ID = s.doc.LineItems[index].ID
	}
	s.doc.LineItems[index] = item
	return nil
}

// SetProperty writes one field of the row at index.
func (s *Store) SetProperty(index int, key string, value any) error {
	if index < 0 || index >= len(s.doc.LineItems) {
		return fmt.Errorf("set %s on row %d: %w", key, index, ErrRowOutOfRange)
	}
	item := s.doc.LineItems[index]
	if err := Set(&item, key, value); err != nil {
		return err
	}
	s.doc.LineItems[index] = item
	return nil
}

// Delete removes the row at index.
func (s *Store) Delete(index int) error {
	if index < 0 || index >= len(s.doc.LineItems) {
		return fmt.Errorf("delete row %d: %w", index, ErrRowOutOfRange)
	}
	s.doc.LineItems = append(s.doc.LineItems[:index:index], s.doc.LineItems[index+1:]...)
	return nil
}

// Replace swaps in a whole new sequence, e.g. the result of ReconcileEmptyRows.
func (s *Store) Replace(items []domain.LineItem) {
	s.doc.LineItems = items
}

// Positions returns the parent indexes of the rows of itemType, in order.
func (s *Store) Positions(itemType domain.ItemType) []int {
	return positionsOf(s.doc.LineItems, itemType)
}

// Filter returns the rows of itemType in order.
func (s *Store) Filter(itemType domain.ItemType) []domain.LineItem {
	positions := s.Positions(itemType)
	out := make([]domain.LineItem, len(positions))
	for i, p := range positions {
		out[i] = s.doc.LineItems[p]
	}
	return out
}

// Reorder moves the row at position from to position to within the rows of
// itemType and merges the result back: rows of other types keep their slots
// and the slots of itemType are refilled in the new order. It reports false
// when nothing moved.
func (s *Store) Reorder(itemType domain.ItemType, from, to int) bool {
	if from == to {
		return false
	}
	positions := s.Positions(itemType)
	if from < 0 || from >= len(positions) || to < 0 || to >= len(positions) {
		return false
	}

	visible := make([]domain.LineItem, len(positions))
	for i, p := range positions {
		visible[i] = s.doc.LineItems[p]
	}
	sorted := MoveImmutable(visible, from, to)

	merged := make([]domain.LineItem, len(s.doc.LineItems))
	copy(merged, s.doc.LineItems)
	for i, p := range positions {
		merged[p] = sorted[i]
	}
	s.doc.LineItems = merged
	return true
}

// MoveImmutable returns a copy of items with the element at from moved to to.
func MoveImmutable[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	moved := items[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved
	return out
}
