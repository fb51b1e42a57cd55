package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/lineitems"
)

var _ lineitems.ResourceFetcher = (*Client)(nil)

const resourcesRoute = "/resources"

func resourceRoute(id string) string {
	return resourcesRoute + "/" + url.PathEscape(id)
}

// every cached resource list and entity
var resourceKeys = []string{resourcesRoute}

// GetResource loads one resource. It satisfies lineitems.ResourceFetcher.
func (c *Client) GetResource(ctx context.Context, id string) (*domain.Resource, error) {
	out, err := fetch[dto.DataResponse[dto.ResourceResponse]](ctx, c, resourceRoute(id), nil)
	if err != nil {
		return nil, err
	}
	r := out.Data.ToDomainResource()
	return &r, nil
}

// ResourcePage is one page of resources.
type ResourcePage struct {
	Resources []domain.Resource
	Meta      dto.ListMeta
}

// ListResources loads one page of resources.
func (c *Client) ListResources(ctx context.Context, opts ListOptions) (*ResourcePage, error) {
	out, err := fetch[dto.ListResponse[dto.ResourceResponse]](ctx, c, resourcesRoute, opts.values())
	if err != nil {
		return nil, err
	}
	page := &ResourcePage{Resources: make([]domain.Resource, len(out.Data)), Meta: out.Meta}
	for i := range out.Data {
		page.Resources[i] = out.Data[i].ToDomainResource()
	}
	return page, nil
}

// CreateResource creates a resource and returns it as stored.
func (c *Client) CreateResource(ctx context.Context, req dto.CreateResourceRequest) (*domain.Resource, error) {
	var out dto.DataResponse[dto.ResourceResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPost,
		route:      resourcesRoute,
		body:       req,
		successKey: "created_resource",
		invalidate: resourceKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	r := out.Data.ToDomainResource()
	return &r, nil
}

// UpdateResource replaces the editable fields of a resource.
func (c *Client) UpdateResource(ctx context.Context, id string, req dto.UpdateResourceRequest) (*domain.Resource, error) {
	var out dto.DataResponse[dto.ResourceResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPut,
		route:      resourceRoute(id),
		body:       req,
		successKey: "updated_resource",
		invalidate: resourceKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	r := out.Data.ToDomainResource()
	return &r, nil
}

// BulkResources applies action ("archive", "restore" or "delete") to ids
// in a single request.
func (c *Client) BulkResources(ctx context.Context, action string, ids []string) ([]domain.Resource, error) {
	var out dto.DataResponse[[]dto.ResourceResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPost,
		route:      resourcesRoute + "/bulk",
		body:       bulkRequest(action, ids),
		successKey: pastTense(action) + "_resource",
		invalidate: resourceKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Resource, len(out.Data))
	for i := range out.Data {
		res[i] = out.Data[i].ToDomainResource()
	}
	return res, nil
}

// pastTense works for every bulk action, all of which end in "e".
func pastTense(action string) string {
	return action + "d"
}
