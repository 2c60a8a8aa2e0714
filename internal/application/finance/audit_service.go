package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentLinker binds pending uploads to an owning record
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// AuditService manages financial audit engagements
type AuditService struct {
	auditRepo finance.AuditRepository
	linker    AttachmentLinker
	eventBus  shared.EventPublisher
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo finance.AuditRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		linker:    linker,
		eventBus:  eventBus,
	}
}

// Create registers a new audit engagement
func (s *AuditService) Create(ctx context.Context, tenantID uuid.UUID, req AuditRequest) (*AuditResponse, error) {
	audit, err := finance.NewAudit(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.auditRepo.Save(ctx, audit); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, audit.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, audit)

	response := ToAuditResponse(audit)
	return &response, nil
}

// GetByID retrieves an audit by ID
func (s *AuditService) GetByID(ctx context.Context, tenantID, auditID uuid.UUID) (*AuditResponse, error) {
	audit, err := s.auditRepo.FindByIDForTenant(ctx, tenantID, auditID)
	if err != nil {
		return nil, err
	}

	response := ToAuditResponse(audit)
	return &response, nil
}

// List retrieves audits with filtering and pagination
func (s *AuditService) List(ctx context.Context, tenantID uuid.UUID, filter AuditListFilter) ([]AuditResponse, int64, error) {
	domainFilter := buildAuditFilter(filter)

	audits, err := s.auditRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.auditRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAuditResponses(audits), total, nil
}

// Update replaces an audit's editable fields
func (s *AuditService) Update(ctx context.Context, tenantID, auditID uuid.UUID, req AuditRequest) (*AuditResponse, error) {
	audit, err := s.auditRepo.FindByIDForTenant(ctx, tenantID, auditID)
	if err != nil {
		return nil, err
	}

	if err := audit.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.auditRepo.SaveWithLock(ctx, audit); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, audit.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, audit)

	response := ToAuditResponse(audit)
	return &response, nil
}

// Delete removes an audit
func (s *AuditService) Delete(ctx context.Context, tenantID, auditID uuid.UUID) error {
	audit, err := s.auditRepo.FindByIDForTenant(ctx, tenantID, auditID)
	if err != nil {
		return err
	}

	if err := s.auditRepo.DeleteForTenant(ctx, tenantID, auditID); err != nil {
		return err
	}

	if err := s.releaseFiles(ctx, tenantID, auditID); err != nil {
		return err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, finance.NewAuditDeletedEvent(audit))
	}

	return nil
}

func (s *AuditService) linkFiles(ctx context.Context, tenantID, auditID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "audit", auditID, fileIDs)
}

func (s *AuditService) releaseFiles(ctx context.Context, tenantID, auditID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "audit", auditID)
}

func (s *AuditService) publishEvents(ctx context.Context, audit *finance.Audit) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, audit.GetDomainEvents()...)
	audit.ClearDomainEvents()
}

func buildAuditFilter(filter AuditListFilter) shared.Filter {
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
	if filter.AuditorID != "" {
		domainFilter.Filters["auditor_id"] = filter.AuditorID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
