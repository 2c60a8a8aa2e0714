package marketing

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/marketing"
)

// AdPieceRequest carries the full editable field set of an ad piece
type AdPieceRequest struct {
	Title          string      `json:"title" binding:"required,min=1,max=200"`
	Campaign       string      `json:"campaign" binding:"omitempty,max=200"`
	ChannelTagID   *uuid.UUID  `json:"channel_tag_id"`
	FormatTagID    *uuid.UUID  `json:"format_tag_id"`
	PublishOn      *time.Time  `json:"publish_on"`
	TargetURL      string      `json:"target_url" binding:"omitempty,max=500"`
	StatusTagID    *uuid.UUID  `json:"status_tag_id"`
	Notes          string      `json:"notes"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// AdPieceResponse represents an ad piece in API responses
type AdPieceResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Campaign     string     `json:"campaign"`
	ChannelTagID *uuid.UUID `json:"channel_tag_id,omitempty"`
	FormatTagID  *uuid.UUID `json:"format_tag_id,omitempty"`
	PublishOn    *time.Time `json:"publish_on,omitempty"`
	TargetURL    string     `json:"target_url"`
	StatusTagID  *uuid.UUID `json:"status_tag_id,omitempty"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
}

// AdPieceListFilter represents filter options for the ad piece list
type AdPieceListFilter struct {
	Search       string `form:"search"`
	Campaign     string `form:"campaign"`
	ChannelTagID string `form:"channel_tag_id" binding:"omitempty,uuid"`
	StatusTagID  string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (r AdPieceRequest) toDraft() marketing.AdPieceDraft {
	return marketing.AdPieceDraft{
		Title:        r.Title,
		Campaign:     r.Campaign,
		ChannelTagID: r.ChannelTagID,
		FormatTagID:  r.FormatTagID,
		PublishOn:    r.PublishOn,
		TargetURL:    r.TargetURL,
		StatusTagID:  r.StatusTagID,
		Notes:        r.Notes,
	}
}

// ToAdPieceResponse maps a domain ad piece to its response representation
func ToAdPieceResponse(piece *marketing.AdPiece) AdPieceResponse {
	return AdPieceResponse{
		ID:           piece.ID,
		Title:        piece.Title,
		Campaign:     piece.Campaign,
		ChannelTagID: piece.ChannelTagID,
		FormatTagID:  piece.FormatTagID,
		PublishOn:    piece.PublishOn,
		TargetURL:    piece.TargetURL,
		StatusTagID:  piece.StatusTagID,
		Notes:        piece.Notes,
		CreatedAt:    piece.CreatedAt,
		UpdatedAt:    piece.UpdatedAt,
		Version:      piece.Version,
	}
}

// ToAdPieceResponses maps a slice of domain ad pieces
func ToAdPieceResponses(pieces []marketing.AdPiece) []AdPieceResponse {
	responses := make([]AdPieceResponse, 0, len(pieces))
	for i := range pieces {
		responses = append(responses, ToAdPieceResponse(&pieces[i]))
	}
	return responses
}
