package dto

import (
	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// CreateCustomerRequest is the body of POST /v1/customers and POST /register
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Balance Amount `json:"balance"`
}

// ToInput converts the request into use case input
func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Balance: r.Balance.String(),
	}
}

// UpdateCustomerRequest is the body of PUT /v1/customers/:id. Omitted fields are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Balance *Amount `json:"balance"`
	Active  *bool   `json:"active"`
}

// ToInput converts the request into use case input
func (r UpdateCustomerRequest) ToInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Balance: amountPtr(r.Balance),
		Active:  r.Active,
	}
}

// CustomerResponse is the public view of a customer. The token is never echoed back.
type CustomerResponse struct {
	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
}

// NewCustomerResponse builds the public view of c
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Email:   c.Email,
		Balance: c.GetBalance(),
		Name:    c.Name,
		Active:  c.Active,
	}
}

// NewCustomerListResponse builds the public view of every customer
func NewCustomerListResponse(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}
