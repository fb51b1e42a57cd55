package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

// resourceService implements the ResourceSvcFacade interface
type resourceService struct {
	BaseService
	resourceRepo portsrepo.ResourceRepositoryWithTx
	cache        *lru.Cache[string, domain.Resource]
	now          func() time.Time

	// cacheGen changes on every invalidation. A lookup only stores its row
	// when no invalidation ran while it was reading.
	cacheMu  sync.Mutex
	cacheGen uint64
}

// ResourceServiceOption is a functional option for configuring the resource service
type ResourceServiceOption func(*resourceService)

// WithResourceCacheSize enables the by-id lookup cache. Sizes <= 0 disable it.
func WithResourceCacheSize(size int) ResourceServiceOption {
	return func(s *resourceService) {
		if size <= 0 {
			s.cache = nil
			return
		}
		// lru.New only fails for non-positive sizes.
		s.cache, _ = lru.New[string, domain.Resource](size)
	}
}

// WithResourceClock overrides time.Now, for tests.
func WithResourceClock(now func() time.Time) ResourceServiceOption {
	return func(s *resourceService) {
		s.now = now
	}
}

// NewResourceService creates a new resource service with the provided options
func NewResourceService(repo portsrepo.ResourceRepositoryWithTx, options ...ResourceServiceOption) portssvc.ResourceSvcFacade {
	svc := &resourceService{
		resourceRepo: repo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ResourceSvcFacade = (*resourceService)(nil)

func resourceCacheKey(companyID, resourceID string) string {
	return companyID + "/" + resourceID
}

// GetResource retrieves a resource, consulting the lookup cache first.
func (s *resourceService) GetResource(ctx context.Context, companyID, resourceID string) (*domain.Resource, error) {
	key := resourceCacheKey(companyID, resourceID)
	var gen uint64
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.LogDebug(ctx, "Resource served from cache", "resource_id", resourceID)
			return &cached, nil
		}
		gen = s.cacheGeneration()
	}

	resource, err := s.resourceRepo.FindResourceByID(ctx, companyID, resourceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find resource", "resource_id", resourceID)
		}
		return nil, fmt.Errorf("failed to get resource %s: %w", resourceID, err)
	}

	if s.cache != nil {
		s.remember(key, *resource, gen)
	}
	return resource, nil
}

// ListResources retrieves one page of resources.
func (s *resourceService) ListResources(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Resource, pagination.Meta, error) {
	query, page, err := buildListQuery(params, domain.ResourceSortColumns)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resources, total, err := s.resourceRepo.ListResources(ctx, companyID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list resources", "company_id", companyID)
		return nil, pagination.Meta{}, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, pagination.NewMeta(page, total, len(resources)), nil
}

// CreateResource persists a new resource.
func (s *resourceService) CreateResource(ctx context.Context, companyID, userID string, req dto.CreateResourceRequest) (*domain.Resource, error) {
	if err := validateRates(req.ResourceRates()); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	resource := domain.Resource{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		EntityType: domain.EntityTypeResource,
		AuditFields: domain.AuditFields{
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyResourceFields(&resource, dto.UpdateResourceRequest(req))

	if err := s.resourceRepo.SaveResource(ctx, resource); err != nil {
		s.LogError(ctx, err, "Failed to save resource", "resource_name", req.Name)
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	s.LogInfo(ctx, "Resource created successfully", "resource_id", resource.ID)
	return &resource, nil
}

// UpdateResource replaces the editable fields of a resource.
func (s *resourceService) UpdateResource(ctx context.Context, companyID, userID, resourceID string, req dto.UpdateResourceRequest) (*domain.Resource, error) {
	if err := validateRates(req.ResourceRates()); err != nil {
		return nil, err
	}

	resource, err := s.resourceRepo.FindResourceByID(ctx, companyID, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resource %s: %w", resourceID, err)
	}

	applyResourceFields(resource, req)
	resource.UpdatedAt = s.now().UTC()

	if err := s.resourceRepo.UpdateResource(ctx, *resource); err != nil {
		s.LogError(ctx, err, "Failed to update resource", "resource_id", resourceID)
		return nil, fmt.Errorf("failed to update resource %s: %w", resourceID, err)
	}
	s.forget(companyID, resourceID)

	s.LogInfo(ctx, "Resource updated successfully", "resource_id", resourceID, "user_id", userID)
	return resource, nil
}

// BulkResources applies a lifecycle action to every listed resource in one
// transaction. Unknown ids fail the whole request with ErrNotFound; actions
// not allowed from a resource's state fail it with a validation error keyed
// by the id's position.
func (s *resourceService) BulkResources(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Resource, error) {
	action := domain.BulkAction(strings.ToLower(req.Action))
	if !lifecycle.Supports(lifecycle.ResourceActions, action) {
		bag := apperrors.NewValidationErrors()
		bag.Add("action", "The selected action is invalid.")
		return nil, bag
	}
	ids, positions := uniqueIDs(req.IDs)

	tx, err := s.resourceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.resourceRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back resource bulk action")
		}
	}()

	found, err := s.resourceRepo.FindResourcesByIDsForUpdate(ctx, tx, companyID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock resources for bulk action", "action", string(action))
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	byID := make(map[string]domain.Resource, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	now := s.now().UTC()
	updated := make([]domain.Resource, 0, len(ids))
	bag := apperrors.NewValidationErrors()
	var merr *multierror.Error
	for i, id := range ids {
		resource, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("resource %s: %w", id, apperrors.ErrNotFound)
		}
		next, err := lifecycle.Transition(resource.State(), action)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("resource %s: %w", id, err))
			bag.Add(fmt.Sprintf("ids.%d", positions[i]), fmt.Sprintf("The resource cannot be %s.", pastTense(action)))
			continue
		}
		if next != resource.State() {
			resource.ApplyState(next, now)
			resource.UpdatedAt = now
		}
		updated = append(updated, resource)
	}
	if merr != nil {
		s.LogWarn(ctx, "Rejected resource bulk action", "action", string(action), "reason", merr.Error())
		return nil, bag
	}

	if err := s.resourceRepo.UpdateResourceLifecycleInTx(ctx, tx, updated); err != nil {
		s.LogError(ctx, err, "Failed to store resource lifecycle", "action", string(action))
		return nil, fmt.Errorf("failed to %s resources: %w", action, err)
	}
	if err := s.resourceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	for _, id := range ids {
		s.forget(companyID, id)
	}
	s.LogInfo(ctx, "Resource bulk action applied", "action", string(action), "count", len(updated), "user_id", userID)
	return updated, nil
}

// ClearCache drops every cached resource.
func (s *resourceService) ClearCache() {
	if s.cache == nil {
		return
	}
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Purge()
}

func (s *resourceService) forget(companyID, resourceID string) {
	if s.cache == nil {
		return
	}
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Remove(resourceCacheKey(companyID, resourceID))
}

func (s *resourceService) cacheGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// remember caches r unless the cache was invalidated after gen was read.
func (s *resourceService) remember(key string, r domain.Resource, gen uint64) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen != gen {
		return
	}
	s.cache.Add(key, r)
}

func applyResourceFields(r *domain.Resource, req dto.UpdateResourceRequest) {
	r.Name = strings.TrimSpace(req.Name)
	r.AssignedUserID = req.AssignedUserID
	r.Description = req.Description
	r.Rate = req.Rate
	r.RatePerHour = req.RatePerHour
	r.RatePerDay = req.RatePerDay
	r.RatePerWeek = req.RatePerWeek
	r.RatePerMonth = req.RatePerMonth
	r.CustomValue1 = req.CustomValue1
	r.CustomValue2 = req.CustomValue2
	r.CustomValue3 = req.CustomValue3
	r.CustomValue4 = req.CustomValue4
}

func validateRates(rates map[string]decimal.Decimal) error {
	bag := apperrors.NewValidationErrors()
	for field, rate := range rates {
		if rate.IsNegative() {
			bag.Add(field, fmt.Sprintf("The %s must be at least 0.", strings.ReplaceAll(field, "_", " ")))
		}
	}
	return bag.OrNil()
}

func pastTense(action domain.BulkAction) string {
	switch action {
	case domain.ActionArchive:
		return "archived"
	case domain.ActionRestore:
		return "restored"
	case domain.ActionDelete:
		return "deleted"
	case domain.ActionActivate:
		return "activated"
	case domain.ActionDeactivate:
		return "deactivated"
	}
	return string(action)
}
