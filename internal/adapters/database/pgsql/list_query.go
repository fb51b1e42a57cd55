package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// listClause renders the WHERE, ORDER BY and paging parts shared by the
// resource and employee list queries. Arguments start at $2; $1 is always
// the company id. Only columns in sortable reach the ORDER BY; the service
// has already rejected anything else, so the fallback is "name".
func listClause(q domain.ListQuery, searchColumns []string, sortable domain.SortColumns) (where, order string, args []any) {
	conds := []string{"company_id = $1"}

	if q.Filter != "" {
		args = append(args, "%"+escapeLike(q.Filter)+"%")
		n := len(args) + 1
		ors := make([]string, len(searchColumns))
		for i, c := range searchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", c, n)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	var states []string
	for _, s := range []domain.EntityState{domain.StateActive, domain.StateArchived, domain.StateDeleted} {
		if q.States.Includes(s) {
			states = append(states, stateCondition(s))
		}
	}
	if len(states) < 3 {
		conds = append(conds, "("+strings.Join(states, " OR ")+")")
	}

	column := q.SortColumn
	if !sortable.Contains(column) {
		column = "name"
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	where = strings.Join(conds, " AND ")
	order = fmt.Sprintf("%s %s, id ASC", column, direction)
	return where, order, args
}

func stateCondition(s domain.EntityState) string {
	switch s {
	case domain.StateArchived:
		return "(is_deleted = FALSE AND archived_at IS NOT NULL)"
	case domain.StateDeleted:
		return "is_deleted = TRUE"
	default:
		return "(is_deleted = FALSE AND archived_at IS NULL)"
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
