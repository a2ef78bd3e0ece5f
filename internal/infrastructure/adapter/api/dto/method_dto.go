package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// CreateMethodRequest is the body of POST /v1/methods
type CreateMethodRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateMethodRequest is the body of PUT /v1/methods/:id
type UpdateMethodRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r CreateMethodRequest) ToInput() usecase.CreateMethodInput {
	return usecase.CreateMethodInput{Name: r.Name, Description: r.Description}
}

func (r UpdateMethodRequest) ToInput() usecase.UpdateMethodInput {
	return usecase.UpdateMethodInput{Name: r.Name, Description: r.Description, Active: r.Active}
}

// MethodResponse is the public view of a payment method
type MethodResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewMethodResponse(m *entity.Method) MethodResponse {
	return MethodResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewMethodListResponse(methods []*entity.Method) []MethodResponse {
	out := make([]MethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, NewMethodResponse(m))
	}
	return out
}
