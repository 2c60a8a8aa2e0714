package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAudit(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates audit successfully", func(t *testing.T) {
		starts := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		ends := starts.AddDate(0, 1, 0)
		audit, err := NewAudit(tenantID, AuditDraft{
			Title:    "Q2 internal audit",
			Scope:    "Accounts payable",
			StartsOn: &starts,
			EndsOn:   &ends,
		})

		require.NoError(t, err)
		assert.Equal(t, "Q2 internal audit", audit.Title)
		assert.Equal(t, &starts, audit.StartsOn)
		assert.Len(t, audit.GetDomainEvents(), 1)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		audit, err := NewAudit(tenantID, AuditDraft{})

		assert.Error(t, err)
		assert.Nil(t, audit)
	})

	t.Run("fails when end precedes start", func(t *testing.T) {
		starts := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		ends := starts.AddDate(0, 0, -1)
		audit, err := NewAudit(tenantID, AuditDraft{Title: "Audit", StartsOn: &starts, EndsOn: &ends})

		assert.Error(t, err)
		assert.Nil(t, audit)
	})
}

func TestAuditUpdate(t *testing.T) {
	audit, err := NewAudit(uuid.New(), AuditDraft{Title: "Q2 internal audit"})
	require.NoError(t, err)
	before := audit.Version

	require.NoError(t, audit.Update(AuditDraft{Title: "Q2 external audit", Findings: "two issues"}))

	assert.Equal(t, "Q2 external audit", audit.Title)
	assert.Equal(t, "two issues", audit.Findings)
	assert.Equal(t, before+1, audit.Version)
}
