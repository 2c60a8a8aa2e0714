package hr

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttendance(t *testing.T) {
	tenantID := uuid.New()
	employee := uuid.New()
	day := time.Date(2026, 2, 3, 15, 30, 0, 0, time.UTC)

	t.Run("creates record truncating date to day", func(t *testing.T) {
		checkIn := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
		checkOut := checkIn.Add(8 * time.Hour)
		att, err := NewAttendance(tenantID, AttendanceDraft{
			EmployeeID: employee,
			Date:       day,
			CheckIn:    &checkIn,
			CheckOut:   &checkOut,
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), att.Date)
		assert.Equal(t, employee, att.EmployeeID)
	})

	t.Run("fails without employee", func(t *testing.T) {
		att, err := NewAttendance(tenantID, AttendanceDraft{Date: day})

		assert.Error(t, err)
		assert.Nil(t, att)
	})

	t.Run("fails when check-out precedes check-in", func(t *testing.T) {
		checkIn := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
		checkOut := checkIn.Add(-time.Hour)
		att, err := NewAttendance(tenantID, AttendanceDraft{
			EmployeeID: employee,
			Date:       day,
			CheckIn:    &checkIn,
			CheckOut:   &checkOut,
		})

		assert.Error(t, err)
		assert.Nil(t, att)
	})
}

func TestNewEmploymentContract(t *testing.T) {
	tenantID := uuid.New()
	employee := uuid.New()
	starts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates contract successfully", func(t *testing.T) {
		contract, err := NewEmploymentContract(tenantID, EmploymentContractDraft{
			EmployeeID: employee,
			RoleTitle:  "Backend Engineer",
			StartsOn:   starts,
			Salary:     mustDecimal(t, "56000"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", contract.RoleTitle)
		assert.Len(t, contract.GetDomainEvents(), 1)
	})

	t.Run("fails with non-positive salary", func(t *testing.T) {
		contract, err := NewEmploymentContract(tenantID, EmploymentContractDraft{
			EmployeeID: employee,
			RoleTitle:  "Backend Engineer",
			StartsOn:   starts,
		})

		assert.Error(t, err)
		assert.Nil(t, contract)
	})

	t.Run("fails when end precedes start", func(t *testing.T) {
		ends := starts.AddDate(0, 0, -1)
		contract, err := NewEmploymentContract(tenantID, EmploymentContractDraft{
			EmployeeID: employee,
			RoleTitle:  "Backend Engineer",
			StartsOn:   starts,
			EndsOn:     &ends,
			Salary:     mustDecimal(t, "56000"),
		})

		assert.Error(t, err)
		assert.Nil(t, contract)
	})
}

func TestEmploymentContractIsActive(t *testing.T) {
	tenantID := uuid.New()
	starts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ends := starts.AddDate(1, 0, 0)

	contract, err := NewEmploymentContract(tenantID, EmploymentContractDraft{
		EmployeeID: uuid.New(),
		RoleTitle:  "Backend Engineer",
		StartsOn:   starts,
		EndsOn:     &ends,
		Salary:     mustDecimal(t, "56000"),
	})
	require.NoError(t, err)

	assert.False(t, contract.IsActive(starts.AddDate(0, 0, -1)))
	assert.True(t, contract.IsActive(starts))
	assert.True(t, contract.IsActive(ends))
	assert.False(t, contract.IsActive(ends.AddDate(0, 0, 1)))
}

func TestNewInterview(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates interview successfully", func(t *testing.T) {
		score := 8
		interview, err := NewInterview(tenantID, InterviewDraft{
			CandidateName:  "Marta Ruiz",
			CandidateEmail: "Marta@Example.com",
			Position:       "Designer",
			Score:          &score,
		})

		require.NoError(t, err)
		assert.Equal(t, "marta@example.com", interview.CandidateEmail)
		assert.Equal(t, 8, *interview.Score)
	})

	t.Run("fails with score out of range", func(t *testing.T) {
		score := 11
		interview, err := NewInterview(tenantID, InterviewDraft{
			CandidateName: "Marta Ruiz",
			Score:         &score,
		})

		assert.Error(t, err)
		assert.Nil(t, interview)
	})

	t.Run("fails with malformed candidate email", func(t *testing.T) {
		interview, err := NewInterview(tenantID, InterviewDraft{
			CandidateName:  "Marta Ruiz",
			CandidateEmail: "marta@",
		})

		assert.Error(t, err)
		assert.Nil(t, interview)
	})
}
