package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goldrates/internal/domain"
	"goldrates/internal/portfolio"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPortfolioService struct{ mock.Mock }

func (m *MockPortfolioService) Create(ctx context.Context, ownerID string, in portfolio.CreateInput) (domain.PortfolioItem, error) {
	args := m.Called(ctx, ownerID, in)
	item, _ := args.Get(0).(domain.PortfolioItem)
	return item, args.Error(1)
}

func (m *MockPortfolioService) List(ctx context.Context, ownerID string) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx, ownerID)
	items, _ := args.Get(0).([]domain.PortfolioItem)
	return items, args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id uuid.UUID, ownerID string, patch domain.PortfolioItemPatch) (domain.PortfolioItem, error) {
	args := m.Called(ctx, id, ownerID, patch)
	item, _ := args.Get(0).(domain.PortfolioItem)
	return item, args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleItem(owner string) domain.PortfolioItem {
	now := time.Now().UTC()
	return domain.PortfolioItem{
		ID: uuid.New(), OwnerID: owner, Type: domain.CategoryGold,
		Name: "GRAM ALTIN", NameEn: "GRAM GOLD", Quantity: 2, BuyPrice: 5700,
		CreatedAt: now, UpdatedAt: now,
	}
}

// --- Create ---

func TestHandler_Create_Success(t *testing.T) {
	mockService := new(MockPortfolioService)
	in := portfolio.CreateInput{Type: domain.CategoryGold, Name: "GRAM ALTIN", NameEn: "GRAM GOLD", Quantity: 2, BuyPrice: 5700}
	mockService.On("Create", mock.Anything, "default", in).Return(sampleItem("default"), nil).Once()
	h := NewPortfolioHandler(mockService)

	body, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.PortfolioItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "GRAM ALTIN", got.Name)
	mockService.AssertExpectations(t)
}

func TestHandler_Create_OwnerFromHeader(t *testing.T) {
	mockService := new(MockPortfolioService)
	mockService.On("Create", mock.Anything, "alice", mock.Anything).Return(sampleItem("alice"), nil).Once()
	h := NewPortfolioHandler(mockService)

	body, _ := json.Marshal(portfolio.CreateInput{Type: domain.CategoryCurrency, Name: "USD", NameEn: "USD", Quantity: 100, BuyPrice: 34})
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewReader(body))
	req.Header.Set("X-User-ID", "alice")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_Create_ValidationError(t *testing.T) {
	mockService := new(MockPortfolioService)
	h := NewPortfolioHandler(mockService)

	body, _ := json.Marshal(portfolio.CreateInput{Type: "silver", Name: "x", NameEn: "x", Quantity: 1, BuyPrice: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), portfolio.ErrTypeInvalid.Error())
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Create_BadBody(t *testing.T) {
	h := NewPortfolioHandler(new(MockPortfolioService))

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- List ---

func TestHandler_List_Success(t *testing.T) {
	mockService := new(MockPortfolioService)
	mockService.On("List", mock.Anything, "default").Return([]domain.PortfolioItem{sampleItem("default")}, nil).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.PortfolioItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestHandler_List_ServiceError(t *testing.T) {
	mockService := new(MockPortfolioService)
	mockService.On("List", mock.Anything, "default").Return(nil, errors.New("db down")).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// --- Update ---

func TestHandler_Update_Success(t *testing.T) {
	mockService := new(MockPortfolioService)
	id := uuid.New()
	qty := 5.0
	mockService.On("Update", mock.Anything, id, "default", domain.PortfolioItemPatch{Quantity: &qty}).
		Return(sampleItem("default"), nil).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodPut, "/api/portfolio/"+id.String(), bytes.NewReader([]byte(`{"quantity": 5}`)))
	req = withURLParam(req, "id", id.String())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_Update_BadID(t *testing.T) {
	h := NewPortfolioHandler(new(MockPortfolioService))

	req := httptest.NewRequest(http.MethodPut, "/api/portfolio/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Update_NotFound(t *testing.T) {
	mockService := new(MockPortfolioService)
	id := uuid.New()
	mockService.On("Update", mock.Anything, id, "default", mock.Anything).
		Return(domain.PortfolioItem{}, domain.ErrPortfolioItemNotFound).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodPut, "/api/portfolio/"+id.String(), bytes.NewReader([]byte(`{}`)))
	req = withURLParam(req, "id", id.String())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Update_InvalidPatch(t *testing.T) {
	h := NewPortfolioHandler(new(MockPortfolioService))
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/portfolio/"+id.String(), bytes.NewReader([]byte(`{"quantity": -2}`)))
	req = withURLParam(req, "id", id.String())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), portfolio.ErrQuantityInvalid.Error())
}

// --- Delete ---

func TestHandler_Delete_Success(t *testing.T) {
	mockService := new(MockPortfolioService)
	id := uuid.New()
	mockService.On("Delete", mock.Anything, id, "default").Return(nil).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/portfolio/"+id.String(), nil)
	req = withURLParam(req, "id", id.String())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "deleted")
}

func TestHandler_Delete_NotFound(t *testing.T) {
	mockService := new(MockPortfolioService)
	id := uuid.New()
	mockService.On("Delete", mock.Anything, id, "default").Return(domain.ErrPortfolioItemNotFound).Once()
	h := NewPortfolioHandler(mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/portfolio/"+id.String(), nil)
	req = withURLParam(req, "id", id.String())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
