package marketing

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeAdPiece = "AdPiece"

	EventTypeAdPieceCreated = "AdPieceCreated"
	EventTypeAdPieceUpdated = "AdPieceUpdated"
	EventTypeAdPieceDeleted = "AdPieceDeleted"
)

// AdPieceCreatedEvent is raised when an ad piece is created
type AdPieceCreatedEvent struct {
	shared.BaseDomainEvent
	Title    string `json:"title"`
	Campaign string `json:"campaign"`
}

func NewAdPieceCreatedEvent(piece *AdPiece) *AdPieceCreatedEvent {
	return &AdPieceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAdPieceCreated,
			AggregateTypeAdPiece,
			piece.ID,
			piece.TenantID,
		),
		Title:    piece.Title,
		Campaign: piece.Campaign,
	}
}
