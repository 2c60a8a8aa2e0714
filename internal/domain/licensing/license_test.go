package licensing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLicense(t *testing.T) {
	tenantID := uuid.New()
	projectID := uuid.New()

	t.Run("creates license successfully", func(t *testing.T) {
		license, err := NewLicense(tenantID, LicenseDraft{
			Name:      "IDE Ultimate",
			ProjectID: projectID,
			Vendor:    "JetSoft",
			Seats:     5,
			Cost:      decimal.NewFromInt(499),
		})

		require.NoError(t, err)
		assert.Equal(t, "IDE Ultimate", license.Name)
		assert.Equal(t, projectID, license.ProjectID)
		assert.Equal(t, 5, license.Seats)
		assert.Len(t, license.GetDomainEvents(), 1)
	})

	t.Run("fails without project", func(t *testing.T) {
		license, err := NewLicense(tenantID, LicenseDraft{Name: "IDE", Seats: 1})

		assert.Error(t, err)
		assert.Nil(t, license)
	})

	t.Run("fails with zero seats", func(t *testing.T) {
		license, err := NewLicense(tenantID, LicenseDraft{Name: "IDE", ProjectID: projectID, Seats: 0})

		assert.Error(t, err)
		assert.Nil(t, license)
	})

	t.Run("fails when expiry precedes purchase", func(t *testing.T) {
		purchased := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		expires := purchased.AddDate(0, 0, -1)
		license, err := NewLicense(tenantID, LicenseDraft{
			Name:        "IDE",
			ProjectID:   projectID,
			Seats:       1,
			PurchasedOn: &purchased,
			ExpiresOn:   &expires,
		})

		assert.Error(t, err)
		assert.Nil(t, license)
	})
}

func TestLicenseExpiresWithin(t *testing.T) {
	tenantID := uuid.New()
	projectID := uuid.New()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	newLicense := func(t *testing.T, expires *time.Time) *License {
		license, err := NewLicense(tenantID, LicenseDraft{
			Name: "IDE", ProjectID: projectID, Seats: 1, ExpiresOn: expires,
		})
		require.NoError(t, err)
		return license
	}

	t.Run("inside window", func(t *testing.T) {
		expires := now.AddDate(0, 0, 20)
		assert.True(t, newLicense(t, &expires).ExpiresWithin(now, 30*24*time.Hour))
	})

	t.Run("outside window", func(t *testing.T) {
		expires := now.AddDate(0, 2, 0)
		assert.False(t, newLicense(t, &expires).ExpiresWithin(now, 30*24*time.Hour))
	})

	t.Run("already expired", func(t *testing.T) {
		expires := now.AddDate(0, 0, -1)
		assert.False(t, newLicense(t, &expires).ExpiresWithin(now, 30*24*time.Hour))
	})

	t.Run("no expiry date", func(t *testing.T) {
		assert.False(t, newLicense(t, nil).ExpiresWithin(now, 30*24*time.Hour))
	})
}

func TestNewProject(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates project with uppercase code", func(t *testing.T) {
		project, err := NewProject(tenantID, "Billing Platform", "bill")

		require.NoError(t, err)
		assert.Equal(t, "Billing Platform", project.Name)
		assert.Equal(t, "BILL", project.Code)
		assert.True(t, project.Active)

		events := project.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProjectCreated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		project, err := NewProject(tenantID, "", "BILL")

		assert.Error(t, err)
		assert.Nil(t, project)
	})
}

func TestProjectLifecycleEvents(t *testing.T) {
	project, err := NewProject(uuid.New(), "Billing Platform", "bill")
	require.NoError(t, err)
	project.ClearDomainEvents()

	require.NoError(t, project.Update("Billing Platform v2", "bill2"))
	project.Deactivate()
	project.Activate()

	events := project.GetDomainEvents()
	require.Len(t, events, 3)
	assert.Equal(t, EventTypeProjectUpdated, events[0].EventType())
	assert.Equal(t, EventTypeProjectDeactivated, events[1].EventType())
	assert.Equal(t, EventTypeProjectActivated, events[2].EventType())
}
