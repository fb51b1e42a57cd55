package lineitems

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/google/uuid"
)

// NewLineItem returns a blank row of the given type with a fresh identity.
func NewLineItem(itemType domain.ItemType) domain.LineItem {
	return domain.LineItem{ID: uuid.NewString(), TypeID: itemType}
}

// IsEmpty reports whether every field except the identity, the type and the
// discount-kind flag holds its zero value.
func IsEmpty(item domain.LineItem) bool {
	return item.ProductKey == "" &&
		item.Notes == "" &&
		item.Unit == "" &&
		item.RateLabel == "" &&
		item.Cost.IsZero() &&
		item.Quantity.IsZero() &&
		item.BillableTime.IsZero() &&
		item.Discount.IsZero() &&
		!item.HasResource() &&
		item.TaxID == "" &&
		item.TaxName1 == "" && item.TaxRate1.IsZero() &&
		item.TaxName2 == "" && item.TaxRate2.IsZero() &&
		item.TaxName3 == "" && item.TaxRate3.IsZero() &&
		item.LineTotal.IsZero() &&
		item.GrossLineTotal.IsZero() &&
		item.TaxAmount.IsZero() &&
		item.CustomValue1 == "" && item.CustomValue2 == "" &&
		item.CustomValue3 == "" && item.CustomValue4 == ""
}

// ReconcileEmptyRows keeps exactly one blank row at the end of the rows of
// itemType. It appends a blank row when every row of the type is filled and
// drops trailing blank rows while an earlier row of the type is still blank.
// The input slice is not modified. Applying the result again reports no change.
func ReconcileEmptyRows(items []domain.LineItem, itemType domain.ItemType) ([]domain.LineItem, bool) {
	out := append([]domain.LineItem(nil), items...)
	changed := false

	for {
		positions := positionsOf(out, itemType)
		n := len(positions)
		if n == 0 {
			return out, changed
		}

		lastPos := positions[n-1]
		lastEmpty := IsEmpty(out[lastPos])
		earlierEmpty := false
		for _, p := range positions[:n-1] {
			if IsEmpty(out[p]) {
				earlierEmpty = true
				break
			}
		}

		switch {
		case !earlierEmpty && !lastEmpty:
			out = append(out, NewLineItem(itemType))
			return out, true
		case earlierEmpty && lastEmpty:
			out = append(out[:lastPos], out[lastPos+1:]...)
			changed = true
		default:
			return out, changed
		}
	}
}

// AnyEmpty reports whether any row of itemType is blank.
func AnyEmpty(items []domain.LineItem, itemType domain.ItemType) bool {
	for _, item := range items {
		if item.TypeID == itemType && IsEmpty(item) {
			return true
		}
	}
	return false
}

func positionsOf(items []domain.LineItem, itemType domain.ItemType) []int {
	var positions []int
	for i, item := range items {
		if item.TypeID == itemType {
			positions = append(positions, i)
		}
	}
	return positions
}
