package marketing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdPiece(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates ad piece successfully", func(t *testing.T) {
		piece, err := NewAdPiece(tenantID, AdPieceDraft{
			Title:     "Summer launch banner",
			Campaign:  "Summer 2026",
			TargetURL: "https://example.com/landing",
		})

		require.NoError(t, err)
		assert.Equal(t, "Summer launch banner", piece.Title)
		assert.Equal(t, "Summer 2026", piece.Campaign)
		assert.Len(t, piece.GetDomainEvents(), 1)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		piece, err := NewAdPiece(tenantID, AdPieceDraft{})

		assert.Error(t, err)
		assert.Nil(t, piece)
	})

	t.Run("fails with invalid target url", func(t *testing.T) {
		piece, err := NewAdPiece(tenantID, AdPieceDraft{Title: "Banner", TargetURL: "javascript:alert(1)"})

		assert.Error(t, err)
		assert.Nil(t, piece)
	})
}

func TestAdPieceUpdate(t *testing.T) {
	piece, err := NewAdPiece(uuid.New(), AdPieceDraft{Title: "Banner", Campaign: "Summer 2026"})
	require.NoError(t, err)
	before := piece.Version

	require.NoError(t, piece.Update(AdPieceDraft{Title: "Banner v2"}))

	assert.Equal(t, "Banner v2", piece.Title)
	assert.Empty(t, piece.Campaign)
	assert.Equal(t, before+1, piece.Version)
}
