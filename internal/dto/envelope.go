package dto

import "github.com/SscSPs/invoicing_app/internal/utils/pagination"

// DataResponse wraps a single payload as {"data": ...}.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ListMeta carries list metadata.
type ListMeta struct {
	Pagination pagination.Meta `json:"pagination"`
}

// ListResponse wraps one page of items as {"data": [...], "meta": {...}}.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// NewListResponse builds a list envelope.
func NewListResponse[T any](items []T, meta pagination.Meta) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Meta: ListMeta{Pagination: meta}}
}

// ErrorResponse is the body of non-validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of a 422 response.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ListParams are the query parameters accepted by list endpoints.
type ListParams struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Status  string `form:"status"`
	Filter  string `form:"filter"`
	// Sort is "<column>|<asc|desc>", e.g. "name|asc".
	Sort string `form:"sort"`
}

// BulkActionRequest applies a lifecycle action to several entities.
type BulkActionRequest struct {
	Action string   `json:"action" binding:"required"`
	IDs    []string `json:"ids" binding:"required,min=1,dive,required"`
}
