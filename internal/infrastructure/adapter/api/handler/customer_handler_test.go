package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	mockusecase "github.com/amirhossein-jamali/payment-api/mocks/port/usecase"
)

func setupCustomerRouter(t *testing.T) (*mockusecase.MockCustomerUseCase, http.Handler) {
	uc := mockusecase.NewMockCustomerUseCase(t)
	h := NewCustomerHandler(uc, testLogger())

	r := newTestRouter()
	r.POST("/customers", h.Create)
	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.Get)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)
	r.POST("/customers/:id/deactivate", h.Deactivate)
	r.POST("/customers/:id/reactivate", h.Reactivate)
	return uc, r
}

func sampleCustomer() *entity.Customer {
	return entity.RestoreCustomer(1, "Ann", "ann@example.com", 1050, true, "signed.jwt.token", testNow, testNow)
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("success with numeric balance", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().CreateCustomer(mock.Anything, usecase.CreateCustomerInput{
			Name:    "Ann",
			Email:   "ann@example.com",
			Balance: "10.5",
		}).Return(sampleCustomer(), nil)

		w := performRequest(r, http.MethodPost, "/customers", `{"name":"Ann","email":"ann@example.com","balance":10.5}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Customer added successfully your jwt: signed.jwt.token", decodeMessage(t, w))
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(nil, domainerr.ErrDuplicateEmail)

		w := performRequest(r, http.MethodPost, "/customers", `{"name":"Ann","email":"ann@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already taken", decodeError(t, w).Error)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "empty body", body: "", message: "Invalid JSON data"},
		{name: "null body", body: "null", message: "Invalid JSON data"},
		{name: "malformed", body: `{"name":`, message: "Invalid JSON format"},
		{name: "missing name", body: `{"email":"ann@example.com"}`, message: "Invalid input data"},
		{name: "wrong type", body: `{"name":5,"email":"ann@example.com"}`, message: "Invalid input data"},
		{name: "boolean balance", body: `{"name":"Ann","email":"ann@example.com","balance":true}`, message: "Invalid input data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupCustomerRouter(t)

			w := performRequest(r, http.MethodPost, "/customers", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}
}

func TestCustomerHandler_List(t *testing.T) {
	uc, r := setupCustomerRouter(t)
	uc.EXPECT().ListCustomers(mock.Anything).Return([]*entity.Customer{sampleCustomer()}, nil)

	w := performRequest(r, http.MethodGet, "/customers", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, dto.CustomerResponse{ID: 1, Email: "ann@example.com", Balance: "10.50", Name: "Ann", Active: true}, got[0])
	assert.NotContains(t, w.Body.String(), "signed.jwt.token")
}

func TestCustomerHandler_Get(t *testing.T) {
	t.Run("by email", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().GetCustomer(mock.Anything, entity.Identifier{Email: "ann@example.com"}).Return(sampleCustomer(), nil)

		w := performRequest(r, http.MethodGet, "/customers/ann@example.com", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":"10.50"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().GetCustomer(mock.Anything, entity.Identifier{ID: 9}).
			Return(nil, domainerr.NewNotFoundError("customer", "9", domainerr.ErrCustomerNotFound))

		w := performRequest(r, http.MethodGet, "/customers/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Customer not found", resp.Error)
		assert.Equal(t, domainerr.CodeCustomerNotFound, resp.Code)
	})

	t.Run("invalid identifier is not found", func(t *testing.T) {
		_, r := setupCustomerRouter(t)

		w := performRequest(r, http.MethodGet, "/customers/not-an-id", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Customer not found", decodeError(t, w).Error)
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().UpdateCustomer(mock.Anything, uint64(1), mock.MatchedBy(func(in usecase.UpdateCustomerInput) bool {
			return in.Name == nil && in.Balance != nil && *in.Balance == "20" && in.Active != nil && !*in.Active
		})).Return(sampleCustomer(), nil)

		w := performRequest(r, http.MethodPut, "/customers/1", `{"balance":"20","active":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Customer updated successfully", decodeMessage(t, w))
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().UpdateCustomer(mock.Anything, uint64(5), mock.Anything).Return(nil, domainerr.ErrCustomerNotFound)

		w := performRequest(r, http.MethodPut, "/customers/5", `{"name":"Bob"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Customer not found", decodeError(t, w).Error)
	})

	t.Run("empty body", func(t *testing.T) {
		_, r := setupCustomerRouter(t)

		w := performRequest(r, http.MethodPut, "/customers/5", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid JSON data", decodeError(t, w).Error)
	})

	t.Run("email in path is not an id", func(t *testing.T) {
		_, r := setupCustomerRouter(t)

		w := performRequest(r, http.MethodPut, "/customers/ann@example.com", `{"name":"Bob"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandler_Lifecycle(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		method  string
		setup   func(uc *mockusecase.MockCustomerUseCase)
		message string
	}{
		{
			name:   "delete by email",
			path:   "/customers/ann@example.com",
			method: http.MethodDelete,
			setup: func(uc *mockusecase.MockCustomerUseCase) {
				uc.EXPECT().DeleteCustomer(mock.Anything, entity.Identifier{Email: "ann@example.com"}).Return(nil)
			},
			message: "Customer deleted successfully.",
		},
		{
			name:   "deactivate",
			path:   "/customers/3/deactivate",
			method: http.MethodPost,
			setup: func(uc *mockusecase.MockCustomerUseCase) {
				uc.EXPECT().DeactivateCustomer(mock.Anything, entity.Identifier{ID: 3}).Return(nil)
			},
			message: "Customer deactivated successfully.",
		},
		{
			name:   "reactivate",
			path:   "/customers/3/reactivate",
			method: http.MethodPost,
			setup: func(uc *mockusecase.MockCustomerUseCase) {
				uc.EXPECT().ReactivateCustomer(mock.Anything, entity.Identifier{ID: 3}).Return(nil)
			},
			message: "Customer reactivated successfully.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := setupCustomerRouter(t)
			tt.setup(uc)

			w := performRequest(r, tt.method, tt.path, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.message, decodeMessage(t, w))
		})
	}

	t.Run("database failure", func(t *testing.T) {
		uc, r := setupCustomerRouter(t)
		uc.EXPECT().DeleteCustomer(mock.Anything, entity.Identifier{ID: 3}).
			Return(domainerr.NewDatabaseError(domainerr.DBCodeCantConnect, "delete", assert.AnError))

		w := performRequest(r, http.MethodDelete, "/customers/3", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Can't connect to the database server", decodeError(t, w).Error)
	})
}
