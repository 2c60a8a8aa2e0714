package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/intranet/erp-backend/internal/domain/workflow"
	"gorm.io/gorm"
)

// GormApprovalRepository implements ApprovalRepository using GORM
type GormApprovalRepository struct {
	db *gorm.DB
}

// NewGormApprovalRepository creates a new GormApprovalRepository
func NewGormApprovalRepository(db *gorm.DB) *GormApprovalRepository {
	return &GormApprovalRepository{db: db}
}

// FindByID finds an approval by its ID, with approvers loaded
func (r *GormApprovalRepository) FindByID(ctx context.Context, id uuid.UUID) (*workflow.Approval, error) {
	var approval workflow.Approval
	if err := r.db.WithContext(ctx).
		Preload("Approvers").
		First(&approval, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &approval, nil
}

// FindByIDForTenant finds an approval by ID within a tenant, with approvers loaded
func (r *GormApprovalRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*workflow.Approval, error) {
	var approval workflow.Approval
	if err := r.db.WithContext(ctx).
		Preload("Approvers").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&approval).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &approval, nil
}

// FindAllForTenant finds all approvals for a tenant matching the filter
func (r *GormApprovalRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]workflow.Approval, error) {
	var approvals []workflow.Approval
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workflow.Approval{}).Preload("Approvers").Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&approvals).Error; err != nil {
		return nil, err
	}
	return approvals, nil
}

// FindPendingForUser finds pending approvals where the user has not voted yet
func (r *GormApprovalRepository) FindPendingForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]workflow.Approval, error) {
	var approvals []workflow.Approval
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workflow.Approval{}).
			Preload("Approvers").
			Joins("JOIN workflow_approvers ON workflow_approvers.approval_id = workflow_approvals.id").
			Where("workflow_approvals.tenant_id = ?", tenantID).
			Where("workflow_approvals.status = ?", workflow.ApprovalStatusPending).
			Where("workflow_approvers.user_id = ? AND workflow_approvers.status = ?", userID, workflow.ApproverStatusPending),
		filter,
	)

	if err := query.Find(&approvals).Error; err != nil {
		return nil, err
	}
	return approvals, nil
}

// Save creates or updates an approval together with its approver set
func (r *GormApprovalRepository) Save(ctx context.Context, approval *workflow.Approval) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Approvers").Save(approval).Error; err != nil {
			return err
		}
		return r.saveApprovers(tx, approval)
	})
}

// SaveWithLock saves an approval with optimistic locking (version check)
func (r *GormApprovalRepository) SaveWithLock(ctx context.Context, approval *workflow.Approval) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&workflow.Approval{}).
			Where("id = ? AND version = ?", approval.ID, approval.Version-1).
			Select("*").
			Omit("Approvers").
			Updates(approval)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The approval has been modified by another transaction")
		}
		return r.saveApprovers(tx, approval)
	})
}

func (r *GormApprovalRepository) saveApprovers(tx *gorm.DB, approval *workflow.Approval) error {
	currentIDs := make([]uuid.UUID, len(approval.Approvers))
	for i, approver := range approval.Approvers {
		currentIDs[i] = approver.ID
	}

	removed := tx.Where("approval_id = ?", approval.ID)
	if len(currentIDs) > 0 {
		removed = removed.Where("id NOT IN ?", currentIDs)
	}
	if err := removed.Delete(&workflow.Approver{}).Error; err != nil {
		return err
	}

	for i := range approval.Approvers {
		approval.Approvers[i].ApprovalID = approval.ID
		if err := tx.Save(&approval.Approvers[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTenant deletes an approval and its approvers within a tenant
func (r *GormApprovalRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&workflow.Approval{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("approval_id = ?", id).Delete(&workflow.Approver{}).Error
	})
}

// CountForTenant counts approvals for a tenant matching the filter
func (r *GormApprovalRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&workflow.Approval{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormApprovalRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Sort columns are qualified because the pending query joins
	// workflow_approvers, which shares column names with the parent table.
	orderBy := ValidateSortField(filter.OrderBy, ApprovalSortFields, "created_at")
	query = query.Order("workflow_approvals." + orderBy + " " + ValidateSortOrder(filter.OrderDir)).
		Order("workflow_approvals.id ASC")

	return query
}

func (r *GormApprovalRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("workflow_approvals.status = ?", value)
		case "priority_tag_id":
			query = query.Where("priority_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormApprovalRepository implements ApprovalRepository
var _ workflow.ApprovalRepository = (*GormApprovalRepository)(nil)
