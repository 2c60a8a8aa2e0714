package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	referenceapp "github.com/intranet/erp-backend/internal/application/reference"
	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/intranet/erp-backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTagRepository is a mock implementation of reference.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*reference.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reference.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*reference.Tag, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reference.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]reference.Tag, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]reference.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain) ([]reference.Tag, error) {
	args := m.Called(ctx, tenantID, domain)
	return args.Get(0).([]reference.Tag), args.Error(1)
}

func (m *MockTagRepository) FindActiveByDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain) ([]reference.Tag, error) {
	args := m.Called(ctx, tenantID, domain)
	return args.Get(0).([]reference.Tag), args.Error(1)
}

func (m *MockTagRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain, name string) (bool, error) {
	args := m.Called(ctx, tenantID, domain, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) ExistsByIDInDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, domain, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) Save(ctx context.Context, tag *reference.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) SaveWithLock(ctx context.Context, tag *reference.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockTagRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func setupTagRouter(handler *TagHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/api/v1/reference")
	{
		group.GET("/tags/domains", handler.Domains)
		group.POST("/tags", handler.Create)
		group.GET("/tags", handler.List)
		group.GET("/tags/:id", handler.GetByID)
		group.PUT("/tags/:id", handler.Update)
		group.DELETE("/tags/:id", handler.Delete)
	}

	return r
}

func newTagHandlerForTest(tagRepo *MockTagRepository) *TagHandler {
	return NewTagHandler(referenceapp.NewTagService(tagRepo, nil))
}

func TestTagHandler_Domains(t *testing.T) {
	router := setupTagRouter(newTagHandlerForTest(new(MockTagRepository)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference/tags/domains", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	domains := response["data"].([]interface{})
	assert.Contains(t, domains, "approval_priority")
}

func TestTagHandler_Create_Success(t *testing.T) {
	tenantID := uuid.New()
	tagRepo := new(MockTagRepository)
	tagRepo.On("ExistsByName", mock.Anything, tenantID, reference.TagDomain("approval_priority"), "Urgent").Return(false, nil)
	tagRepo.On("Save", mock.Anything, mock.AnythingOfType("*reference.Tag")).Return(nil)

	router := setupTagRouter(newTagHandlerForTest(tagRepo))

	reqBody := referenceapp.CreateTagRequest{
		Domain:    "approval_priority",
		Name:      "Urgent",
		Color:     "#ff0000",
		SortOrder: 1,
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/tags", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Urgent", data["name"])
	assert.Equal(t, "approval_priority", data["domain"])
	assert.Equal(t, "#ff0000", data["color"])
	tagRepo.AssertExpectations(t)
}

func TestTagHandler_Create_DuplicateName(t *testing.T) {
	tenantID := uuid.New()
	tagRepo := new(MockTagRepository)
	tagRepo.On("ExistsByName", mock.Anything, tenantID, reference.TagDomain("approval_priority"), "Urgent").Return(true, nil)

	router := setupTagRouter(newTagHandlerForTest(tagRepo))

	reqBody := referenceapp.CreateTagRequest{
		Domain: "approval_priority",
		Name:   "Urgent",
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/tags", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	tagRepo.AssertNotCalled(t, "Save")
}

func TestTagHandler_Create_UnknownDomain(t *testing.T) {
	tenantID := uuid.New()
	router := setupTagRouter(newTagHandlerForTest(new(MockTagRepository)))

	reqBody := referenceapp.CreateTagRequest{
		Domain: "nonexistent_domain",
		Name:   "Whatever",
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/tags", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTagHandler_Create_InvalidBody(t *testing.T) {
	router := setupTagRouter(newTagHandlerForTest(new(MockTagRepository)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/tags", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTagHandler_Create_MissingFieldsReturnDetails(t *testing.T) {
	middleware.SetupValidator()
	router := setupTagRouter(newTagHandlerForTest(new(MockTagRepository)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/tags", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", uuid.NewString())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))

	errInfo := response["error"].(map[string]interface{})
	assert.Equal(t, "ERR_VALIDATION", errInfo["code"])

	details := errInfo["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]interface{})["field"].(string))
	}
	assert.Contains(t, fields, "domain")
	assert.Contains(t, fields, "name")
}

func TestTagHandler_GetByID_NotFound(t *testing.T) {
	tenantID := uuid.New()
	tagID := uuid.New()
	tagRepo := new(MockTagRepository)
	tagRepo.On("FindByIDForTenant", mock.Anything, tenantID, tagID).Return(nil, shared.ErrNotFound)

	router := setupTagRouter(newTagHandlerForTest(tagRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference/tags/"+tagID.String(), nil)
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTagHandler_GetByID_InvalidUUID(t *testing.T) {
	router := setupTagRouter(newTagHandlerForTest(new(MockTagRepository)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference/tags/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTagHandler_List_Paginated(t *testing.T) {
	tenantID := uuid.New()
	tag, err := reference.NewTag(tenantID, reference.TagDomain("approval_priority"), "High", "#ffaa00", 2)
	require.NoError(t, err)

	tagRepo := new(MockTagRepository)
	tagRepo.On("FindAllForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).Return([]reference.Tag{*tag}, nil)
	tagRepo.On("CountForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	router := setupTagRouter(newTagHandlerForTest(tagRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference/tags?domain=approval_priority&page=1&page_size=10", nil)
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "High", first["name"])

	meta := response["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["total"])
	assert.Equal(t, float64(10), meta["page_size"])
}

func TestTagHandler_Delete_Success(t *testing.T) {
	tenantID := uuid.New()
	tag, err := reference.NewTag(tenantID, reference.TagDomain("approval_priority"), "Low", "", 3)
	require.NoError(t, err)

	tagRepo := new(MockTagRepository)
	tagRepo.On("FindByIDForTenant", mock.Anything, tenantID, tag.ID).Return(tag, nil)
	tagRepo.On("DeleteForTenant", mock.Anything, tenantID, tag.ID).Return(nil)

	router := setupTagRouter(newTagHandlerForTest(tagRepo))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reference/tags/"+tag.ID.String(), nil)
	req.Header.Set("X-Tenant-ID", tenantID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	tagRepo.AssertExpectations(t)
}
