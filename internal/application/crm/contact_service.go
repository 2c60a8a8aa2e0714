package crm

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/crm"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentLinker links pending uploads to their owning record once it exists
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// ContactService manages external contacts
type ContactService struct {
	contactRepo crm.ContactRepository
	linker      AttachmentLinker
	eventBus    shared.EventPublisher
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo crm.ContactRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		linker:      linker,
		eventBus:    eventBus,
	}
}

// Create creates a new contact
func (s *ContactService) Create(ctx context.Context, tenantID uuid.UUID, req ContactRequest) (*ContactResponse, error) {
	contact, err := crm.NewContact(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, contact.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, contact)

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, tenantID, contactID uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByIDForTenant(ctx, tenantID, contactID)
	if err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// List retrieves contacts with filtering and pagination
func (s *ContactService) List(ctx context.Context, tenantID uuid.UUID, filter ContactListFilter) ([]ContactResponse, int64, error) {
	domainFilter := buildContactFilter(filter)

	contacts, err := s.contactRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contactRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToContactResponses(contacts), total, nil
}

// Update replaces a contact's editable fields
func (s *ContactService) Update(ctx context.Context, tenantID, contactID uuid.UUID, req ContactRequest) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByIDForTenant(ctx, tenantID, contactID)
	if err != nil {
		return nil, err
	}

	if err := contact.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.contactRepo.SaveWithLock(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, contact.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, contact)

	response := ToContactResponse(contact)
	return &response, nil
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, tenantID, contactID uuid.UUID) error {
	contact, err := s.contactRepo.FindByIDForTenant(ctx, tenantID, contactID)
	if err != nil {
		return err
	}

	if err := s.contactRepo.DeleteForTenant(ctx, tenantID, contactID); err != nil {
		return err
	}

	if err := s.releaseFiles(ctx, tenantID, contactID); err != nil {
		return err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, crm.NewContactDeletedEvent(contact))
	}

	return nil
}

func (s *ContactService) linkFiles(ctx context.Context, tenantID, contactID uuid.UUID, fileIDs []uuid.UUID) error {
	if s.linker == nil || len(fileIDs) == 0 {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "contact", contactID, fileIDs)
}

func (s *ContactService) releaseFiles(ctx context.Context, tenantID, contactID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "contact", contactID)
}

func (s *ContactService) publishEvents(ctx context.Context, contact *crm.Contact) {
	if s.eventBus == nil {
		return
	}
	// Contact option lists are cached; invalidation rides on these events.
	_ = s.eventBus.Publish(ctx, contact.GetDomainEvents()...)
	contact.ClearDomainEvents()
}

func buildContactFilter(filter ContactListFilter) shared.Filter {
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
	if filter.SourceTagID != "" {
		domainFilter.Filters["source_tag_id"] = filter.SourceTagID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
