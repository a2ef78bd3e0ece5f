package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const customerEntity = "customer"

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerUseCase usecase.CustomerUseCase
	logger          coreport.Logger
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(customerUseCase usecase.CustomerUseCase, logger coreport.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		logger:          logger,
	}
}

// Create handles POST /v1/customers and POST /register
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid customer payload", err)
		return
	}

	customer, err := h.customerUseCase.CreateCustomer(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, "Error creating customer", err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Customer added successfully your jwt: " + customer.JWT,
	})
}

// List handles GET /v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerUseCase.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing customers", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerListResponse(customers))
}

// Get handles GET /v1/customers/:id where id is a numeric id or an email
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := pathIdentifier(c, "id", customerEntity, domainerr.ErrCustomerNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid customer identifier", err)
		return
	}

	customer, err := h.customerUseCase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Error getting customer", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// Update handles PUT /v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", customerEntity, domainerr.ErrCustomerNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid customer id", err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid customer payload", err)
		return
	}

	if _, err := h.customerUseCase.UpdateCustomer(c.Request.Context(), id, req.ToInput()); err != nil {
		respondError(c, h.logger, "Error updating customer", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Customer updated successfully"})
}

// Delete handles DELETE /v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	h.lifecycle(c, h.customerUseCase.DeleteCustomer, "Customer deleted successfully.")
}

// Deactivate handles POST /v1/customers/:id/deactivate
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	h.lifecycle(c, h.customerUseCase.DeactivateCustomer, "Customer deactivated successfully.")
}

// Reactivate handles POST /v1/customers/:id/reactivate
func (h *CustomerHandler) Reactivate(c *gin.Context) {
	h.lifecycle(c, h.customerUseCase.ReactivateCustomer, "Customer reactivated successfully.")
}

func (h *CustomerHandler) lifecycle(
	c *gin.Context,
	op func(ctx context.Context, id entity.Identifier) error,
	success string,
) {
	id, err := pathIdentifier(c, "id", customerEntity, domainerr.ErrCustomerNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid customer identifier", err)
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "Error changing customer", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: success})
}
