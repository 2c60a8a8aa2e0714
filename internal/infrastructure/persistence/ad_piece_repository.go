package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/marketing"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAdPieceRepository implements AdPieceRepository using GORM
type GormAdPieceRepository struct {
	db *gorm.DB
}

// NewGormAdPieceRepository creates a new GormAdPieceRepository
func NewGormAdPieceRepository(db *gorm.DB) *GormAdPieceRepository {
	return &GormAdPieceRepository{db: db}
}

// FindByID finds an ad piece by its ID
func (r *GormAdPieceRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.AdPiece, error) {
	var piece marketing.AdPiece
	if err := r.db.WithContext(ctx).First(&piece, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &piece, nil
}

// FindByIDForTenant finds an ad piece by ID within a tenant
func (r *GormAdPieceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*marketing.AdPiece, error) {
	var piece marketing.AdPiece
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&piece).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &piece, nil
}

// FindAllForTenant finds all ad pieces for a tenant matching the filter
func (r *GormAdPieceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]marketing.AdPiece, error) {
	var pieces []marketing.AdPiece
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&marketing.AdPiece{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// FindByCampaign finds all ad pieces belonging to a campaign
func (r *GormAdPieceRepository) FindByCampaign(ctx context.Context, tenantID uuid.UUID, campaign string) ([]*marketing.AdPiece, error) {
	var pieces []*marketing.AdPiece
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND campaign = ?", tenantID, campaign).
		Order("publish_on ASC, title ASC").
		Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// Save creates or updates an ad piece
func (r *GormAdPieceRepository) Save(ctx context.Context, piece *marketing.AdPiece) error {
	return r.db.WithContext(ctx).Save(piece).Error
}

// SaveWithLock saves an ad piece with optimistic locking (version check)
func (r *GormAdPieceRepository) SaveWithLock(ctx context.Context, piece *marketing.AdPiece) error {
	result := r.db.WithContext(ctx).Model(&marketing.AdPiece{}).
		Where("id = ? AND version = ?", piece.ID, piece.Version-1).
		Select("*").
		Updates(piece)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The ad piece has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an ad piece within a tenant
func (r *GormAdPieceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&marketing.AdPiece{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts ad pieces for a tenant matching the filter
func (r *GormAdPieceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&marketing.AdPiece{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAdPieceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AdPieceSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormAdPieceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR campaign ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "campaign":
			query = query.Where("campaign = ?", value)
		case "channel_tag_id":
			query = query.Where("channel_tag_id = ?", value)
		case "format_tag_id":
			query = query.Where("format_tag_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormAdPieceRepository implements AdPieceRepository
var _ marketing.AdPieceRepository = (*GormAdPieceRepository)(nil)
