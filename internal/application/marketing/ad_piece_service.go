package marketing

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/marketing"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentLinker binds pending uploads to an owning record
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// AdPieceService manages campaign creative assets
type AdPieceService struct {
	pieceRepo marketing.AdPieceRepository
	linker    AttachmentLinker
	eventBus  shared.EventPublisher
}

// NewAdPieceService creates a new AdPieceService
func NewAdPieceService(pieceRepo marketing.AdPieceRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *AdPieceService {
	return &AdPieceService{
		pieceRepo: pieceRepo,
		linker:    linker,
		eventBus:  eventBus,
	}
}

// Create registers a new ad piece
func (s *AdPieceService) Create(ctx context.Context, tenantID uuid.UUID, req AdPieceRequest) (*AdPieceResponse, error) {
	piece, err := marketing.NewAdPiece(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.pieceRepo.Save(ctx, piece); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, piece.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, piece)

	response := ToAdPieceResponse(piece)
	return &response, nil
}

// GetByID retrieves an ad piece by ID
func (s *AdPieceService) GetByID(ctx context.Context, tenantID, pieceID uuid.UUID) (*AdPieceResponse, error) {
	piece, err := s.pieceRepo.FindByIDForTenant(ctx, tenantID, pieceID)
	if err != nil {
		return nil, err
	}

	response := ToAdPieceResponse(piece)
	return &response, nil
}

// List retrieves ad pieces with filtering and pagination
func (s *AdPieceService) List(ctx context.Context, tenantID uuid.UUID, filter AdPieceListFilter) ([]AdPieceResponse, int64, error) {
	domainFilter := buildAdPieceFilter(filter)

	pieces, err := s.pieceRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.pieceRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAdPieceResponses(pieces), total, nil
}

// ListByCampaign retrieves all pieces belonging to a campaign
func (s *AdPieceService) ListByCampaign(ctx context.Context, tenantID uuid.UUID, campaign string) ([]AdPieceResponse, error) {
	pieces, err := s.pieceRepo.FindByCampaign(ctx, tenantID, campaign)
	if err != nil {
		return nil, err
	}

	responses := make([]AdPieceResponse, 0, len(pieces))
	for _, piece := range pieces {
		responses = append(responses, ToAdPieceResponse(piece))
	}
	return responses, nil
}

// Update replaces an ad piece's editable fields
func (s *AdPieceService) Update(ctx context.Context, tenantID, pieceID uuid.UUID, req AdPieceRequest) (*AdPieceResponse, error) {
	piece, err := s.pieceRepo.FindByIDForTenant(ctx, tenantID, pieceID)
	if err != nil {
		return nil, err
	}

	if err := piece.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.pieceRepo.SaveWithLock(ctx, piece); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, piece.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, piece)

	response := ToAdPieceResponse(piece)
	return &response, nil
}

// Delete removes an ad piece
func (s *AdPieceService) Delete(ctx context.Context, tenantID, pieceID uuid.UUID) error {
	if _, err := s.pieceRepo.FindByIDForTenant(ctx, tenantID, pieceID); err != nil {
		return err
	}

	if err := s.pieceRepo.DeleteForTenant(ctx, tenantID, pieceID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, pieceID)
}

func (s *AdPieceService) linkFiles(ctx context.Context, tenantID, pieceID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "ad_piece", pieceID, fileIDs)
}

func (s *AdPieceService) releaseFiles(ctx context.Context, tenantID, pieceID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "ad_piece", pieceID)
}

func (s *AdPieceService) publishEvents(ctx context.Context, piece *marketing.AdPiece) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, piece.GetDomainEvents()...)
	piece.ClearDomainEvents()
}

func buildAdPieceFilter(filter AdPieceListFilter) shared.Filter {
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
	if filter.Campaign != "" {
		domainFilter.Filters["campaign"] = filter.Campaign
	}
	if filter.ChannelTagID != "" {
		domainFilter.Filters["channel_tag_id"] = filter.ChannelTagID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
