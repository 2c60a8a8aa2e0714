package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGrossIncomeRepository is a mock implementation of finance.GrossIncomeRepository
type MockGrossIncomeRepository struct {
	mock.Mock
}

func (m *MockGrossIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.GrossIncome, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.GrossIncome), args.Error(1)
}

func (m *MockGrossIncomeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.GrossIncome, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.GrossIncome), args.Error(1)
}

func (m *MockGrossIncomeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.GrossIncome, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.GrossIncome), args.Error(1)
}

func (m *MockGrossIncomeRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) ([]*finance.GrossIncome, error) {
	args := m.Called(ctx, tenantID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*finance.GrossIncome), args.Error(1)
}

func (m *MockGrossIncomeRepository) SummarizeByPeriod(ctx context.Context, tenantID uuid.UUID, year int) ([]finance.GrossIncomeSummary, error) {
	args := m.Called(ctx, tenantID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.GrossIncomeSummary), args.Error(1)
}

func (m *MockGrossIncomeRepository) Save(ctx context.Context, income *finance.GrossIncome) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockGrossIncomeRepository) SaveWithLock(ctx context.Context, income *finance.GrossIncome) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockGrossIncomeRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockGrossIncomeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRepository is a mock implementation of finance.AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Audit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Audit), args.Error(1)
}

func (m *MockAuditRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.Audit, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Audit), args.Error(1)
}

func (m *MockAuditRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Audit, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Audit), args.Error(1)
}

func (m *MockAuditRepository) Save(ctx context.Context, audit *finance.Audit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepository) SaveWithLock(ctx context.Context, audit *finance.Audit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockAuditRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAttachmentLinker is a mock implementation of AttachmentLinker
type MockAttachmentLinker struct {
	mock.Mock
}

func (m *MockAttachmentLinker) LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error {
	args := m.Called(ctx, tenantID, ownerType, ownerID, fileIDs)
	return args.Error(0)
}

func (m *MockAttachmentLinker) ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error {
	args := m.Called(ctx, tenantID, ownerType, ownerID)
	return args.Error(0)
}

func timeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newTestGrossIncome(t *testing.T, tenantID uuid.UUID) *finance.GrossIncome {
	t.Helper()
	income, err := finance.NewGrossIncome(tenantID, finance.GrossIncomeDraft{
		Year:    2026,
		Month:   3,
		Amount:  decimal.NewFromFloat(12500.50),
		Concept: "Consulting retainer",
	})
	require.NoError(t, err)
	income.ClearDomainEvents()
	return income
}

func newTestAudit(t *testing.T, tenantID uuid.UUID) *finance.Audit {
	t.Helper()
	audit, err := finance.NewAudit(tenantID, finance.AuditDraft{
		Title: "Q1 internal audit",
		Scope: "Accounts receivable and payroll",
	})
	require.NoError(t, err)
	audit.ClearDomainEvents()
	return audit
}

func TestGrossIncomeService_Create_Success(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	tenantID := uuid.New()

	repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.GrossIncome")).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, GrossIncomeRequest{
		Year:    2026,
		Month:   3,
		Amount:  decimal.NewFromFloat(12500.50),
		Concept: "Consulting retainer",
	})

	require.NoError(t, err)
	assert.Equal(t, 2026, result.Year)
	assert.Equal(t, 3, result.Month)
	assert.True(t, result.Amount.Equal(decimal.NewFromFloat(12500.50)))
	repo.AssertExpectations(t)
}

func TestGrossIncomeService_Create_InvalidAmount(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), GrossIncomeRequest{
		Year:    2026,
		Month:   3,
		Amount:  decimal.NewFromFloat(-100),
		Concept: "Refund posted as income",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestGrossIncomeService_Update_Success(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	tenantID := uuid.New()
	income := newTestGrossIncome(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, income.ID).Return(income, nil)
	repo.On("SaveWithLock", mock.Anything, income).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, income.ID, GrossIncomeRequest{
		Year:    2026,
		Month:   4,
		Amount:  decimal.NewFromInt(9800),
		Concept: "Consulting retainer",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.Month)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(9800)))
	repo.AssertExpectations(t)
}

func TestGrossIncomeService_Summary_Success(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	tenantID := uuid.New()
	summaries := []finance.GrossIncomeSummary{
		{Year: 2026, Month: 1, Total: decimal.NewFromInt(20000), Count: 2},
		{Year: 2026, Month: 3, Total: decimal.NewFromInt(12500), Count: 1},
	}

	repo.On("SummarizeByPeriod", mock.Anything, tenantID, 2026).Return(summaries, nil)

	result, err := svc.Summary(context.Background(), tenantID, 2026)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Month)
	assert.True(t, result[0].Total.Equal(decimal.NewFromInt(20000)))
	repo.AssertExpectations(t)
}

func TestGrossIncomeService_Summary_InvalidYear(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	_, err := svc.Summary(context.Background(), uuid.New(), 1990)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_YEAR", domainErr.Code)
	repo.AssertNotCalled(t, "SummarizeByPeriod")
}

func TestGrossIncomeService_Delete_Success(t *testing.T) {
	repo := new(MockGrossIncomeRepository)
	svc := NewGrossIncomeService(repo, nil)

	tenantID := uuid.New()
	income := newTestGrossIncome(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, income.ID).Return(income, nil)
	repo.On("DeleteForTenant", mock.Anything, tenantID, income.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, income.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuditService_Create_LinksPendingFiles(t *testing.T) {
	repo := new(MockAuditRepository)
	linker := new(MockAttachmentLinker)
	svc := NewAuditService(repo, linker, nil)

	tenantID := uuid.New()
	fileID := uuid.New()

	repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Audit")).Return(nil)
	linker.On("LinkPending", mock.Anything, tenantID, "audit", mock.AnythingOfType("uuid.UUID"), []uuid.UUID{fileID}).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, AuditRequest{
		Title:          "Q1 internal audit",
		Scope:          "Accounts receivable and payroll",
		PendingFileIDs: []uuid.UUID{fileID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Q1 internal audit", result.Title)
	repo.AssertExpectations(t)
	linker.AssertExpectations(t)
}

func TestAuditService_Create_NoFilesSkipsLinker(t *testing.T) {
	repo := new(MockAuditRepository)
	linker := new(MockAttachmentLinker)
	svc := NewAuditService(repo, linker, nil)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Audit")).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), AuditRequest{
		Title: "Vendor compliance review",
	})

	require.NoError(t, err)
	linker.AssertNotCalled(t, "LinkPending")
}

func TestAuditService_Create_InvalidDateRange(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, nil, nil)

	starts := timeDate(2026, 5, 10)
	ends := timeDate(2026, 5, 1)

	_, err := svc.Create(context.Background(), uuid.New(), AuditRequest{
		Title:    "Backdated engagement",
		StartsOn: &starts,
		EndsOn:   &ends,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATE_RANGE", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestAuditService_Update_Success(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, nil, nil)

	tenantID := uuid.New()
	audit := newTestAudit(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, audit.ID).Return(audit, nil)
	repo.On("SaveWithLock", mock.Anything, audit).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, audit.ID, AuditRequest{
		Title:    "Q1 internal audit",
		Findings: "Two invoices missing approval trail",
	})

	require.NoError(t, err)
	assert.Equal(t, "Two invoices missing approval trail", result.Findings)
	repo.AssertExpectations(t)
}

func TestAuditService_Delete_Success(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, nil, nil)

	tenantID := uuid.New()
	audit := newTestAudit(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, audit.ID).Return(audit, nil)
	repo.On("DeleteForTenant", mock.Anything, tenantID, audit.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, audit.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
