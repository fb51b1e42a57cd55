package domain

// ListQuery narrows and orders a list of company scoped entities.
type ListQuery struct {
	Limit  int
	Offset int
	// Filter is a free text search over the entity's searchable columns.
	Filter     string
	SortColumn string
	SortDesc   bool
	States     StateFilter
}

// SortColumns lists the columns a list may be ordered by. The API name of
// each column is also its SQL column name.
type SortColumns []string

// Contains reports whether column is sortable.
func (c SortColumns) Contains(column string) bool {
	for _, s := range c {
		if s == column {
			return true
		}
	}
	return false
}

// ResourceSortColumns are the sortable resource columns.
var ResourceSortColumns = SortColumns{
	"name", "description", "rate", "rate_per_hour", "rate_per_day",
	"rate_per_week", "rate_per_month", "created_at", "updated_at",
}

// EmployeeSortColumns are the sortable employee columns.
var EmployeeSortColumns = SortColumns{
	"name", "emp_id", "department", "designation", "email", "created_at", "updated_at",
}
