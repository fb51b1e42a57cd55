package lineitems

// Preferences are the per-user settings the line item table reads.
type Preferences struct {
	NumberPrecision             int  `json:"number_precision"`
	AutoExpandProductTableNotes bool `json:"auto_expand_product_table_notes"`
}

const (
	quantityPrecision = 6
	fallbackPrecision = 2
	maxUserPrecision  = 100
)

// NumberPrecision returns the number of decimals a numeric cell accepts.
// Quantities always take 6; other fields use the user preference when it is
// in (0,100], then the currency precision, then 2. A currency precision of 0
// also falls through to 2.
func NumberPrecision(property string, prefs Preferences, currencyPrecision int) int {
	if property == "quantity" || property == "billable_time" {
		return quantityPrecision
	}
	if prefs.NumberPrecision > 0 && prefs.NumberPrecision <= maxUserPrecision {
		return prefs.NumberPrecision
	}
	if currencyPrecision > 0 {
		return currencyPrecision
	}
	return fallbackPrecision
}

// NotesRows is the textarea height of the notes cell.
func NotesRows(prefs Preferences) int {
	if prefs.AutoExpandProductTableNotes {
		return 1
	}
	return 3
}
