package marketing

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AdPiece represents a creative asset planned for a marketing campaign
type AdPiece struct {
	shared.TenantAggregateRoot
	Title        string     `gorm:"type:varchar(200);not null"`
	Campaign     string     `gorm:"type:varchar(200)"`
	ChannelTagID *uuid.UUID `gorm:"type:uuid"`
	FormatTagID  *uuid.UUID `gorm:"type:uuid"`
	PublishOn    *time.Time `gorm:"type:date"`
	TargetURL    string     `gorm:"type:varchar(500)"`
	StatusTagID  *uuid.UUID `gorm:"type:uuid"`
	Notes        string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AdPiece) TableName() string {
	return "marketing_ad_pieces"
}

// AdPieceDraft carries the full editable field set of an ad piece
type AdPieceDraft struct {
	Title        string
	Campaign     string
	ChannelTagID *uuid.UUID
	FormatTagID  *uuid.UUID
	PublishOn    *time.Time
	TargetURL    string
	StatusTagID  *uuid.UUID
	Notes        string
}

// NewAdPiece creates a new ad piece
func NewAdPiece(tenantID uuid.UUID, draft AdPieceDraft) (*AdPiece, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateAdPieceDraft(draft); err != nil {
		return nil, err
	}

	piece := &AdPiece{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	piece.apply(draft)

	piece.AddDomainEvent(NewAdPieceCreatedEvent(piece))

	return piece, nil
}

// Update replaces all editable fields with the draft
func (a *AdPiece) Update(draft AdPieceDraft) error {
	if err := validateAdPieceDraft(draft); err != nil {
		return err
	}

	a.apply(draft)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

func (a *AdPiece) apply(draft AdPieceDraft) {
	a.Title = strings.TrimSpace(draft.Title)
	a.Campaign = strings.TrimSpace(draft.Campaign)
	a.ChannelTagID = draft.ChannelTagID
	a.FormatTagID = draft.FormatTagID
	a.PublishOn = draft.PublishOn
	a.TargetURL = strings.TrimSpace(draft.TargetURL)
	a.StatusTagID = draft.StatusTagID
	a.Notes = draft.Notes
}

// validation functions

func validateAdPieceDraft(draft AdPieceDraft) error {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if len(draft.Campaign) > 200 {
		return shared.NewDomainError("INVALID_CAMPAIGN", "Campaign cannot exceed 200 characters")
	}
	return validateTargetURL(draft.TargetURL)
}

func validateTargetURL(target string) error {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil
	}
	if len(trimmed) > 500 {
		return shared.NewDomainError("INVALID_TARGET_URL", "Target URL cannot exceed 500 characters")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return shared.NewDomainError("INVALID_TARGET_URL", "Target URL must be a valid http(s) URL")
	}
	return nil
}
