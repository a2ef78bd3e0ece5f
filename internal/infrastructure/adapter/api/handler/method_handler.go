package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const methodEntity = "method"

// MethodHandler handles payment method HTTP requests
type MethodHandler struct {
	methodUseCase usecase.MethodUseCase
	logger        coreport.Logger
}

// NewMethodHandler creates a new method handler instance
func NewMethodHandler(methodUseCase usecase.MethodUseCase, logger coreport.Logger) *MethodHandler {
	return &MethodHandler{
		methodUseCase: methodUseCase,
		logger:        logger,
	}
}

// Create handles POST /v1/methods
func (h *MethodHandler) Create(c *gin.Context) {
	var req dto.CreateMethodRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid method payload", err)
		return
	}

	if _, err := h.methodUseCase.CreateMethod(c.Request.Context(), req.ToInput()); err != nil {
		respondError(c, h.logger, "Error creating method", err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Method added successfully"})
}

// List handles GET /v1/methods
func (h *MethodHandler) List(c *gin.Context) {
	methods, err := h.methodUseCase.ListMethods(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing methods", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMethodListResponse(methods))
}

// Get handles GET /v1/methods/:id
func (h *MethodHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", methodEntity, domainerr.ErrMethodNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid method id", err)
		return
	}

	method, err := h.methodUseCase.GetMethod(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Error getting method", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMethodResponse(method))
}

// Update handles PUT /v1/methods/:id
func (h *MethodHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", methodEntity, domainerr.ErrMethodNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid method id", err)
		return
	}

	var req dto.UpdateMethodRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid method payload", err)
		return
	}

	if _, err := h.methodUseCase.UpdateMethod(c.Request.Context(), id, req.ToInput()); err != nil {
		respondError(c, h.logger, "Error updating method", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Method updated successfully"})
}

// Delete handles DELETE /v1/methods/:id
func (h *MethodHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", methodEntity, domainerr.ErrMethodNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid method id", err)
		return
	}

	if err := h.methodUseCase.DeleteMethod(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "Error deleting method", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Method deleted successfully."})
}

// Deactivate handles POST /v1/methods/:id/deactivate
func (h *MethodHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "Method deactivated successfully.")
}

// Reactivate handles POST /v1/methods/:id/reactivate
func (h *MethodHandler) Reactivate(c *gin.Context) {
	h.setActive(c, true, "Method reactivated successfully.")
}

func (h *MethodHandler) setActive(c *gin.Context, active bool, success string) {
	id, err := pathID(c, "id", methodEntity, domainerr.ErrMethodNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid method id", err)
		return
	}

	if err := h.methodUseCase.SetMethodActive(c.Request.Context(), id, active); err != nil {
		respondError(c, h.logger, "Error changing method", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: success})
}
