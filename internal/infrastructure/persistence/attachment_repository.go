package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/files"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements AttachmentRepository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// FindByID finds an attachment by its ID
func (r *GormAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*files.Attachment, error) {
	var attachment files.Attachment
	if err := r.db.WithContext(ctx).First(&attachment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

// FindByIDForTenant finds an attachment by ID within a tenant
func (r *GormAttachmentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*files.Attachment, error) {
	var attachment files.Attachment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&attachment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

// FindByIDs finds attachments by a set of IDs within a tenant
func (r *GormAttachmentRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*files.Attachment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var attachments []*files.Attachment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// FindByOwner finds attachments linked to a specific owner record
func (r *GormAttachmentRepository) FindByOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) ([]*files.Attachment, error) {
	var attachments []*files.Attachment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND owner_type = ? AND owner_id = ?", tenantID, ownerType, ownerID).
		Order("created_at ASC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// FindAllForTenant finds all attachments for a tenant matching the filter
func (r *GormAttachmentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]files.Attachment, error) {
	var attachments []files.Attachment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&files.Attachment{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Save creates or updates an attachment
func (r *GormAttachmentRepository) Save(ctx context.Context, attachment *files.Attachment) error {
	return r.db.WithContext(ctx).Save(attachment).Error
}

// SaveWithLock saves an attachment with optimistic locking (version check)
func (r *GormAttachmentRepository) SaveWithLock(ctx context.Context, attachment *files.Attachment) error {
	result := r.db.WithContext(ctx).Model(&files.Attachment{}).
		Where("id = ? AND version = ?", attachment.ID, attachment.Version-1).
		Select("*").
		Updates(attachment)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The attachment has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an attachment within a tenant
func (r *GormAttachmentRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&files.Attachment{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts attachments for a tenant matching the filter
func (r *GormAttachmentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&files.Attachment{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAttachmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AttachmentSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormAttachmentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("file_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "owner_type":
			query = query.Where("owner_type = ?", value)
		case "uploaded_by":
			query = query.Where("uploaded_by = ?", value)
		}
	}

	return query
}

// Ensure GormAttachmentRepository implements AttachmentRepository
var _ files.AttachmentRepository = (*GormAttachmentRepository)(nil)
