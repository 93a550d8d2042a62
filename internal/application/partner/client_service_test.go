package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/cotizador/backend/internal/domain/partner"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id int64) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) StatsByID(ctx context.Context, id int64) (*partner.ClientStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ClientStats), args.Error(1)
}

func (m *MockClientRepository) SearchByNameOrEmail(ctx context.Context, term string, limit int) ([]partner.Client, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) TopByQuotedAmount(ctx context.Context, limit int) ([]partner.TopClient, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]partner.TopClient), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestClient(t *testing.T, id int64) *partner.Client {
	t.Helper()
	c, err := partner.NewClient("Acme Corp", "billing@acme.com", "", "Av. Reforma 1")
	require.NoError(t, err)
	c.ID = id
	return c
}

func TestClientService_Create(t *testing.T) {
	t.Run("creates a valid client", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*partner.Client).ID = 1
			}).
			Return(nil)

		resp, err := service.Create(context.Background(), CreateClientRequest{
			Name:  "Acme Corp",
			Email: "billing@acme.com",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Acme Corp", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid input without touching the repository", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		_, err := service.Create(context.Background(), CreateClientRequest{Name: "A"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestClientService_Update(t *testing.T) {
	t.Run("applies partial updates", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("FindByID", mock.Anything, int64(1)).Return(newTestClient(t, 1), nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)

		name := "Acme International"
		resp, err := service.Update(context.Background(), 1, UpdateClientRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Acme International", resp.Name)
		assert.Equal(t, "billing@acme.com", resp.Email, "untouched fields survive")
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("FindByID", mock.Anything, int64(9)).Return(nil, shared.ErrClientNotFound)

		_, err := service.Update(context.Background(), 9, UpdateClientRequest{})
		assert.Equal(t, shared.ErrClientNotFound, err)
	})
}

func TestClientService_Delete(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("Delete", mock.Anything, int64(1)).Return(shared.ErrInUse)

	err := service.Delete(context.Background(), 1)
	assert.Equal(t, shared.ErrInUse, err)
}

func TestClientService_List(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	clients := []partner.Client{*newTestClient(t, 1), *newTestClient(t, 2)}
	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(clients, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(12), nil)

	responses, pagination, err := service.List(context.Background(), ClientListFilter{Page: 2, PageSize: 5})

	require.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, int64(12), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestClientService_GetDetail(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("FindByID", mock.Anything, int64(1)).Return(newTestClient(t, 1), nil)
	repo.On("StatsByID", mock.Anything, int64(1)).Return(&partner.ClientStats{
		QuotationCount: 2,
		TotalAmount:    decimal.RequireFromString("700.00"),
	}, nil)

	detail, err := service.GetDetail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", detail.Name)
	assert.Equal(t, int64(2), detail.Stats.QuotationCount)
}

func TestClientService_Stats(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("StatsByID", mock.Anything, int64(1)).Return(&partner.ClientStats{
		QuotationCount: 3,
		TotalAmount:    decimal.RequireFromString("1050.00"),
	}, nil)

	stats, err := service.Stats(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.QuotationCount)
	assert.True(t, stats.TotalAmount.Equal(decimal.RequireFromString("1050.00")))
}

func TestClientService_Top(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	top := []partner.TopClient{{
		Client: *newTestClient(t, 1),
		Stats:  partner.ClientStats{QuotationCount: 2, TotalAmount: decimal.RequireFromString("700.00")},
	}}
	repo.On("TopByQuotedAmount", mock.Anything, 5).Return(top, nil)

	responses, err := service.Top(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Acme Corp", responses[0].Name)
	assert.Equal(t, int64(2), responses[0].Stats.QuotationCount)
}

func TestClientService_Search(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("SearchByNameOrEmail", mock.Anything, "acm", 10).
		Return([]partner.Client{*newTestClient(t, 1)}, nil)

	responses, err := service.Search(context.Background(), "acm", 10)

	require.NoError(t, err)
	require.Len(t, responses, 1)

	repo.On("SearchByNameOrEmail", mock.Anything, "zzz", 10).
		Return([]partner.Client{}, errors.New("boom"))

	_, err = service.Search(context.Background(), "zzz", 10)
	assert.Error(t, err)
}
