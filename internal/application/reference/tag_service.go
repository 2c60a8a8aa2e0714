package reference

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// TagService manages the configurable vocabularies behind dropdowns
type TagService struct {
	tagRepo  reference.TagRepository
	eventBus shared.EventPublisher
}

// NewTagService creates a new TagService
func NewTagService(tagRepo reference.TagRepository, eventBus shared.EventPublisher) *TagService {
	return &TagService{
		tagRepo:  tagRepo,
		eventBus: eventBus,
	}
}

// Domains returns every known vocabulary name
func (s *TagService) Domains() []string {
	domains := make([]string, 0, len(reference.AllTagDomains))
	for _, domain := range reference.AllTagDomains {
		domains = append(domains, domain.String())
	}
	return domains
}

// Create creates a new tag in a vocabulary
func (s *TagService) Create(ctx context.Context, tenantID uuid.UUID, req CreateTagRequest) (*TagResponse, error) {
	domain := reference.TagDomain(req.Domain)
	if !domain.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOMAIN", "Unknown tag domain")
	}

	exists, err := s.tagRepo.ExistsByName(ctx, tenantID, domain, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tag with this name already exists in the domain")
	}

	tag, err := reference.NewTag(tenantID, domain, req.Name, req.Color, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.tagRepo.Save(ctx, tag); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, tag)

	response := ToTagResponse(tag)
	return &response, nil
}

// GetByID retrieves a tag by ID
func (s *TagService) GetByID(ctx context.Context, tenantID, tagID uuid.UUID) (*TagResponse, error) {
	tag, err := s.tagRepo.FindByIDForTenant(ctx, tenantID, tagID)
	if err != nil {
		return nil, err
	}

	response := ToTagResponse(tag)
	return &response, nil
}

// List retrieves tags with filtering and pagination
func (s *TagService) List(ctx context.Context, tenantID uuid.UUID, filter TagListFilter) ([]TagResponse, int64, error) {
	domainFilter := buildTagFilter(filter)

	tags, err := s.tagRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tagRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	pointers := make([]*reference.Tag, 0, len(tags))
	for i := range tags {
		pointers = append(pointers, &tags[i])
	}

	return ToTagResponses(pointers), total, nil
}

// Update replaces a tag's editable fields
func (s *TagService) Update(ctx context.Context, tenantID, tagID uuid.UUID, req UpdateTagRequest) (*TagResponse, error) {
	tag, err := s.tagRepo.FindByIDForTenant(ctx, tenantID, tagID)
	if err != nil {
		return nil, err
	}

	if req.Name != tag.Name {
		exists, err := s.tagRepo.ExistsByName(ctx, tenantID, tag.Domain, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Tag with this name already exists in the domain")
		}
	}

	if err := tag.Update(req.Name, req.Color, req.SortOrder, req.Active); err != nil {
		return nil, err
	}

	if err := s.tagRepo.SaveWithLock(ctx, tag); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, tag)

	response := ToTagResponse(tag)
	return &response, nil
}

// Delete removes a tag
func (s *TagService) Delete(ctx context.Context, tenantID, tagID uuid.UUID) error {
	tag, err := s.tagRepo.FindByIDForTenant(ctx, tenantID, tagID)
	if err != nil {
		return err
	}

	if err := s.tagRepo.DeleteForTenant(ctx, tenantID, tagID); err != nil {
		return err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, reference.NewTagDeletedEvent(tag))
	}

	return nil
}

func (s *TagService) publishEvents(ctx context.Context, tag *reference.Tag) {
	if s.eventBus == nil {
		return
	}
	// Cache invalidation rides on these events; a publish failure must not
	// fail the write itself.
	_ = s.eventBus.Publish(ctx, tag.GetDomainEvents()...)
	tag.ClearDomainEvents()
}

func buildTagFilter(filter TagListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if domainFilter.PageSize > 100 {
		domainFilter.PageSize = 100
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Domain != "" {
		domainFilter.Filters["domain"] = filter.Domain
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	return domainFilter
}
