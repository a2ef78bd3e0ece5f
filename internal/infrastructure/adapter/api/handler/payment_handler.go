package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const paymentEntity = "payment"

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// Create handles POST /v1/payments. The payer is the customer whose token authenticated the request.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid payment payload", err)
		return
	}

	var payerEmail string
	if claims, ok := middleware.TokenClaims(c); ok {
		payerEmail = claims.Email
	}

	payment, err := h.paymentUseCase.CreatePayment(c.Request.Context(), req.ToInput(payerEmail))
	if err != nil {
		respondError(c, h.logger, "Error creating payment", err)
		return
	}

	h.logger.Info("Payment created", map[string]any{
		"payment_id": payment.ID,
		"recipient":  payment.ToCustomer,
		"amount":     payment.GetAmount(),
	})
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Payment added successfully"})
}

// List handles GET /v1/payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentUseCase.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing payments", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentListResponse(payments))
}

// Get handles GET /v1/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", paymentEntity, domainerr.ErrPaymentNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid payment id", err)
		return
	}

	payment, err := h.paymentUseCase.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Error getting payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}

// Update handles PUT /v1/payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", paymentEntity, domainerr.ErrPaymentNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid payment id", err)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid payment payload", err)
		return
	}

	if _, err := h.paymentUseCase.UpdatePayment(c.Request.Context(), id, req.ToInput()); err != nil {
		respondError(c, h.logger, "Error updating payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment updated successfully"})
}

// Delete handles DELETE /v1/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", paymentEntity, domainerr.ErrPaymentNotFound)
	if err != nil {
		respondError(c, h.logger, "Invalid payment id", err)
		return
	}

	if err := h.paymentUseCase.DeletePayment(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "Error deleting payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment deleted successfully."})
}
