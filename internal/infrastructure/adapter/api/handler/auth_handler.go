package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler registers API consumers
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid registration payload", err)
		return
	}

	user, err := h.authUseCase.RegisterUser(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.logger, "Error registering user", err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterUserResponse{
		Message: "User registered successfully",
		APIKey:  user.APIKey,
	})
}
