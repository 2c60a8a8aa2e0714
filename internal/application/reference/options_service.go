package reference

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/crm"
	"github.com/intranet/erp-backend/internal/domain/identity"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// OptionsLoader caches computed option lists and collapses concurrent
// loads of the same key.
type OptionsLoader interface {
	GetOrLoad(ctx context.Context, key string, loader func(ctx context.Context) ([]reference.OptionItem, error)) ([]reference.OptionItem, error)
	Invalidate(ctx context.Context, prefix string) error
}

// moduleOptions names the option lists each endpoint family exposes.
// Tag-backed lists reference a vocabulary; the special lists users,
// projects and contacts come from their aggregates.
var moduleOptions = map[string]map[string]string{
	"approvals": {
		"priority":  reference.TagDomainApprovalPriority.String(),
		"approvers": "users",
	},
	"contacts": {
		"source": reference.TagDomainContactSource.String(),
		"status": reference.TagDomainContactStatus.String(),
	},
	"gross-incomes": {
		"status":   reference.TagDomainIncomeStatus.String(),
		"contacts": "contacts",
	},
	"audits": {
		"status":   reference.TagDomainAuditStatus.String(),
		"auditors": "users",
	},
	"licenses": {
		"status":   reference.TagDomainLicenseStatus.String(),
		"projects": "projects",
	},
	"projects": {},
	"ad-pieces": {
		"channel": reference.TagDomainAdChannel.String(),
		"format":  reference.TagDomainAdFormat.String(),
		"status":  reference.TagDomainAdStatus.String(),
	},
	"meetings": {
		"status":       reference.TagDomainMeetingStatus.String(),
		"participants": "users",
	},
	"attendances": {
		"type":      reference.TagDomainAttendanceType.String(),
		"employees": "users",
	},
	"contracts": {
		"type":      reference.TagDomainContractType.String(),
		"status":    reference.TagDomainContractStatus.String(),
		"employees": "users",
	},
	"interviews": {
		"stage":        reference.TagDomainInterviewStage.String(),
		"interviewers": "users",
	},
	"kits": {
		"status":    reference.TagDomainKitStatus.String(),
		"employees": "users",
	},
	"offboardings": {
		"reason":    reference.TagDomainOffboardingReason.String(),
		"status":    reference.TagDomainOffboardingStatus.String(),
		"employees": "users",
	},
}

// OptionsService builds the dropdown option lists used across the UI.
// Lists are cached per tenant and invalidated when their source data
// changes.
type OptionsService struct {
	cache       OptionsLoader
	tagRepo     reference.TagRepository
	userRepo    identity.UserRepository
	projectRepo licensing.ProjectRepository
	contactRepo crm.ContactRepository
}

// NewOptionsService creates a new OptionsService
func NewOptionsService(
	cache OptionsLoader,
	tagRepo reference.TagRepository,
	userRepo identity.UserRepository,
	projectRepo licensing.ProjectRepository,
	contactRepo crm.ContactRepository,
) *OptionsService {
	return &OptionsService{
		cache:       cache,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		contactRepo: contactRepo,
	}
}

// ModuleOptions returns every option list a module's forms need, keyed by
// field name.
func (s *OptionsService) ModuleOptions(ctx context.Context, tenantID uuid.UUID, module string) (map[string][]reference.OptionItem, error) {
	fields, ok := moduleOptions[module]
	if !ok {
		return nil, shared.NewDomainError("INVALID_MODULE", "Unknown options module")
	}

	result := make(map[string][]reference.OptionItem, len(fields))
	for field, source := range fields {
		items, err := s.listForSource(ctx, tenantID, source)
		if err != nil {
			return nil, err
		}
		result[field] = items
	}

	return result, nil
}

// InvalidateTenant drops every cached option list of a tenant
func (s *OptionsService) InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error {
	return s.cache.Invalidate(ctx, reference.OptionsCachePrefix(tenantID))
}

func (s *OptionsService) listForSource(ctx context.Context, tenantID uuid.UUID, source string) ([]reference.OptionItem, error) {
	key := reference.OptionsCacheKey(tenantID, source)

	switch source {
	case "users":
		return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]reference.OptionItem, error) {
			return s.loadUserOptions(ctx, tenantID)
		})
	case "projects":
		return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]reference.OptionItem, error) {
			return s.loadProjectOptions(ctx, tenantID)
		})
	case "contacts":
		return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]reference.OptionItem, error) {
			return s.loadContactOptions(ctx, tenantID)
		})
	default:
		domain := reference.TagDomain(source)
		return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]reference.OptionItem, error) {
			return s.loadTagOptions(ctx, tenantID, domain)
		})
	}
}

func (s *OptionsService) loadTagOptions(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain) ([]reference.OptionItem, error) {
	tags, err := s.tagRepo.FindActiveByDomain(ctx, tenantID, domain)
	if err != nil {
		return nil, err
	}

	items := make([]reference.OptionItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, reference.OptionItem{
			Value: tag.ID,
			Label: tag.Name,
			Color: tag.Color,
		})
	}
	return items, nil
}

func (s *OptionsService) loadUserOptions(ctx context.Context, tenantID uuid.UUID) ([]reference.OptionItem, error) {
	users, err := s.userRepo.FindActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	items := make([]reference.OptionItem, 0, len(users))
	for _, user := range users {
		items = append(items, reference.OptionItem{
			Value: user.ID,
			Label: user.Name,
		})
	}
	return items, nil
}

func (s *OptionsService) loadProjectOptions(ctx context.Context, tenantID uuid.UUID) ([]reference.OptionItem, error) {
	projects, err := s.projectRepo.FindActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	items := make([]reference.OptionItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, reference.OptionItem{
			Value: project.ID,
			Label: project.Name,
		})
	}
	return items, nil
}

func (s *OptionsService) loadContactOptions(ctx context.Context, tenantID uuid.UUID) ([]reference.OptionItem, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 1000
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	contacts, err := s.contactRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]reference.OptionItem, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, reference.OptionItem{
			Value: contact.ID,
			Label: contact.Name,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items, nil
}
