package services

import (
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
)

// buildListQuery validates list parameters. Sort is "<column>|<asc|desc>"
// and defaults to name ascending.
func buildListQuery(params dto.ListParams, sortable domain.SortColumns) (domain.ListQuery, pagination.Params, error) {
	page := pagination.Normalize(params.Page, params.PerPage)
	bag := apperrors.NewValidationErrors()

	states, err := domain.ParseStateFilter(params.Status)
	if err != nil {
		bag.Add("status", "The selected status is invalid.")
	}

	column, direction := "name", "asc"
	if params.Sort != "" {
		c, d, _ := strings.Cut(params.Sort, "|")
		column = strings.TrimSpace(c)
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			direction = d
		}
	}
	if !sortable.Contains(column) || (direction != "asc" && direction != "desc") {
		bag.Add("sort", "The selected sort is invalid.")
	}

	if bag.HasErrors() {
		return domain.ListQuery{}, page, bag
	}
	return domain.ListQuery{
		Limit:      page.Limit(),
		Offset:     page.Offset(),
		Filter:     strings.TrimSpace(params.Filter),
		SortColumn: column,
		SortDesc:   direction == "desc",
		States:     states,
	}, page, nil
}

// uniqueIDs drops repeated ids. The returned positions are the index of each
// kept id in the request, used as "ids.<n>" error keys.
func uniqueIDs(ids []string) ([]string, []int) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	positions := make([]int, 0, len(ids))
	for i, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		positions = append(positions, i)
	}
	return out, positions
}
