package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	documentapp "github.com/cotizador/backend/internal/application/document"
	quotationapp "github.com/cotizador/backend/internal/application/quotation"
	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuotationRepository implements quotation.Repository for testing
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quotation.Summary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quotation.Summary), args.Error(1)
}

func (m *MockQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuotationRepository) FindByClient(ctx context.Context, clientID int64, filter shared.Filter) ([]quotation.Summary, error) {
	args := m.Called(ctx, clientID, filter)
	return args.Get(0).([]quotation.Summary), args.Error(1)
}

func (m *MockQuotationRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func newQuotationRouter(t *testing.T, repo *MockQuotationRepository) *gin.Engine {
	t.Helper()

	renderer, err := documentapp.NewRenderer(documentapp.Config{})
	require.NoError(t, err)

	h := NewQuotationHandler(
		quotationapp.NewQuotationService(repo),
		documentapp.NewService(repo, renderer),
	)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func storedQuotation() *quotation.Quotation {
	return &quotation.Quotation{
		ID:         "COT_20240307_143509",
		ClientID:   1,
		ClientName: "Acme Corp",
		Date:       time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		Total:      decimal.RequireFromString("350.00"),
		Lines: []quotation.Line{
			{ItemID: 10, ItemName: "Servidor", TypeName: "Producto", Quantity: 2, UnitPrice: decimal.RequireFromString("100.00")},
			{ItemID: 11, ItemName: "Instalación", TypeName: "Servicio", Quantity: 3, UnitPrice: decimal.RequireFromString("50.00")},
		},
	}
}

func TestQuotationHandler_Create(t *testing.T) {
	t.Run("creates a quotation", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*quotation.Quotation")).
			Run(func(args mock.Arguments) {
				q := args.Get(1).(*quotation.Quotation)
				q.ClientName = "Acme Corp"
				for i := range q.Lines {
					q.Lines[i].UnitPrice = decimal.RequireFromString("100.00")
				}
				q.ComputeTotal()
			}).
			Return(nil)

		body := bytes.NewBufferString(`{"clientId":1,"items":[{"itemId":10,"quantity":2}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotations", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Acme Corp", data["clientName"])
		assert.Equal(t, "200.00", data["total"])
	})

	t.Run("rejects a body without items", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		body := bytes.NewBufferString(`{"clientId":1,"items":[]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotations", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces duplicate ids as conflict", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*quotation.Quotation")).
			Return(shared.ErrAlreadyExists)

		body := bytes.NewBufferString(`{"clientId":1,"items":[{"itemId":10,"quantity":1}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotations", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("surfaces unknown client as not found", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*quotation.Quotation")).
			Return(shared.ErrClientNotFound)

		body := bytes.NewBufferString(`{"clientId":999,"items":[{"itemId":10,"quantity":1}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotations", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuotationHandler_List(t *testing.T) {
	repo := new(MockQuotationRepository)
	engine := newQuotationRouter(t, repo)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]quotation.Summary{{ID: "COT_20240307_143509", ClientName: "Acme Corp", LineCount: 2}}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(21), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotations?page=1&limit=10&search=acme", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(21), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
}

func TestQuotationHandler_GetByID(t *testing.T) {
	t.Run("returns a resolved quotation", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		repo.On("FindByID", mock.Anything, "COT_20240307_143509").Return(storedQuotation(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotations/COT_20240307_143509", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Len(t, data["items"], 2)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotations/not-a-folio", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID")
	})

	t.Run("missing quotation is 404", func(t *testing.T) {
		repo := new(MockQuotationRepository)
		engine := newQuotationRouter(t, repo)

		repo.On("FindByID", mock.Anything, "COT_20240307_000000").Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotations/COT_20240307_000000", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuotationHandler_Delete(t *testing.T) {
	repo := new(MockQuotationRepository)
	engine := newQuotationRouter(t, repo)

	repo.On("Delete", mock.Anything, "COT_20240307_143509").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotations/COT_20240307_143509", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestQuotationHandler_Download(t *testing.T) {
	repo := new(MockQuotationRepository)
	engine := newQuotationRouter(t, repo)

	repo.On("FindByID", mock.Anything, "COT_20240307_143509").Return(storedQuotation(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotations/COT_20240307_143509/pdf", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=cotizacion_COT_20240307_143509.pdf`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}
