package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	mockusecase "github.com/amirhossein-jamali/payment-api/mocks/port/usecase"
)

func setupMethodRouter(t *testing.T) (*mockusecase.MockMethodUseCase, http.Handler) {
	uc := mockusecase.NewMockMethodUseCase(t)
	h := NewMethodHandler(uc, testLogger())

	r := newTestRouter()
	r.POST("/methods", h.Create)
	r.GET("/methods", h.List)
	r.GET("/methods/:id", h.Get)
	r.PUT("/methods/:id", h.Update)
	r.DELETE("/methods/:id", h.Delete)
	r.POST("/methods/:id/deactivate", h.Deactivate)
	r.POST("/methods/:id/reactivate", h.Reactivate)
	return uc, r
}

func sampleMethod() *entity.Method {
	return &entity.Method{ID: 4, Name: "card", Description: "Debit or credit card", Active: true, CreatedAt: testNow, UpdatedAt: testNow}
}

func TestMethodHandler_Create(t *testing.T) {
	uc, r := setupMethodRouter(t)
	uc.EXPECT().CreateMethod(mock.Anything, usecase.CreateMethodInput{Name: "wire"}).Return(sampleMethod(), nil)

	w := performRequest(r, http.MethodPost, "/methods", `{"name":"wire"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Method added successfully", decodeMessage(t, w))

	w = performRequest(r, http.MethodPost, "/methods", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input data", decodeError(t, w).Error)
}

func TestMethodHandler_Read(t *testing.T) {
	uc, r := setupMethodRouter(t)
	uc.EXPECT().ListMethods(mock.Anything).Return([]*entity.Method{sampleMethod()}, nil)
	uc.EXPECT().GetMethod(mock.Anything, uint64(4)).Return(sampleMethod(), nil)
	uc.EXPECT().GetMethod(mock.Anything, uint64(5)).Return(nil, domainerr.ErrMethodNotFound)

	w := performRequest(r, http.MethodGet, "/methods", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"card"`)

	w = performRequest(r, http.MethodGet, "/methods/4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)

	w = performRequest(r, http.MethodGet, "/methods/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Method not found", decodeError(t, w).Error)
}

func TestMethodHandler_Write(t *testing.T) {
	uc, r := setupMethodRouter(t)
	uc.EXPECT().UpdateMethod(mock.Anything, uint64(4), mock.MatchedBy(func(in usecase.UpdateMethodInput) bool {
		return in.Description != nil && *in.Description == "Cards" && in.Name == nil
	})).Return(sampleMethod(), nil)
	uc.EXPECT().DeleteMethod(mock.Anything, uint64(4)).Return(nil)
	uc.EXPECT().SetMethodActive(mock.Anything, uint64(4), false).Return(nil)
	uc.EXPECT().SetMethodActive(mock.Anything, uint64(4), true).Return(nil)

	tests := []struct {
		method  string
		path    string
		body    string
		message string
	}{
		{http.MethodPut, "/methods/4", `{"description":"Cards"}`, "Method updated successfully"},
		{http.MethodPost, "/methods/4/deactivate", "", "Method deactivated successfully."},
		{http.MethodPost, "/methods/4/reactivate", "", "Method reactivated successfully."},
		{http.MethodDelete, "/methods/4", "", "Method deleted successfully."},
	}
	for _, tt := range tests {
		w := performRequest(r, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusOK, w.Code, tt.path)
		assert.Equal(t, tt.message, decodeMessage(t, w))
	}

	w := performRequest(r, http.MethodPost, "/methods/0/deactivate", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
