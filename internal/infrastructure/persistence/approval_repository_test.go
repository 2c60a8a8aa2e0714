package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockApprovalRepository creates a GormApprovalRepository with a mocked SQL connection
func newMockApprovalRepository(t *testing.T) (*GormApprovalRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormApprovalRepository(gormDB), mock, mockDB
}

func TestGormApprovalRepository_FindPendingForUser_QualifiesSortColumns(t *testing.T) {
	repo, mock, mockDB := newMockApprovalRepository(t)
	defer mockDB.Close()

	tenantID := uuid.New()
	userID := uuid.New()

	// The join against workflow_approvers duplicates created_at and id, so
	// an unqualified ORDER BY is ambiguous and postgres rejects the query.
	mock.ExpectQuery(`FROM "workflow_approvals" JOIN workflow_approvers ON .* ORDER BY workflow_approvals\.created_at DESC,workflow_approvals\.id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "title", "status"}))

	approvals, err := repo.FindPendingForUser(context.Background(), tenantID, userID, shared.DefaultFilter())

	assert.NoError(t, err)
	assert.Empty(t, approvals)
	assert.NoError(t, mock.ExpectationsWereMet())
}
