package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body into dst.
// An empty body is ErrInvalidJSON, undecodable JSON is ErrMalformedJSON and a
// rejected field is a ValidationError.
func bindJSON(c *gin.Context, dst any) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", domainerr.ErrInvalidJSON, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return domainerr.ErrInvalidJSON
	}

	err = binding.JSON.BindBody(body, dst)
	if err == nil {
		return nil
	}

	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return domainerr.NewValidationError(strings.ToLower(fieldErrs[0].Field()), "failed on "+fieldErrs[0].Tag())
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domainerr.NewValidationErrorWithCause(typeErr.Field, "cannot be a JSON "+typeErr.Value, err)
	case domainerr.IsValidationError(err):
		return err
	default:
		return fmt.Errorf("%w: %v", domainerr.ErrMalformedJSON, err)
	}
}

// pathID parses a numeric path parameter. Anything that is not a positive id is reported as notFound.
func pathID(c *gin.Context, param, entityName string, notFound error) (uint64, error) {
	raw := c.Param(param)
	id, err := entity.ParseID(raw)
	if err != nil {
		return 0, domainerr.NewNotFoundError(entityName, raw, notFound)
	}
	return id, nil
}

// pathIdentifier parses a path parameter holding an id or an email
func pathIdentifier(c *gin.Context, param, entityName string, notFound error) (entity.Identifier, error) {
	raw := c.Param(param)
	id, err := entity.ParseIdentifier(raw)
	if err != nil {
		return entity.Identifier{}, domainerr.NewNotFoundError(entityName, raw, notFound)
	}
	return id, nil
}

// respondError logs err and writes its mapped status and body
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	_ = c.Error(err)
	status, body := dto.NewErrorResponse(err)

	fields := map[string]any{
		"error":      err.Error(),
		"status":     status,
		"path":       c.Request.URL.Path,
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
	}
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	if status >= 500 {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}
	c.JSON(status, body)
}
