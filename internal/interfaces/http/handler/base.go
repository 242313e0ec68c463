// Package handler adapts HTTP requests to resource accessor calls and
// accessor results to JSON responses.
package handler

import (
	"errors"
	"net/http"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides the response helpers shared by all handlers
type BaseHandler struct{}

// Created sends 201 with an acknowledgement message
func (h *BaseHandler) Created(c *gin.Context, body dto.MessageResponse) {
	c.JSON(http.StatusCreated, body)
}

// OK sends 200 with body
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error sends an {"error": ...} body with status
func (h *BaseHandler) Error(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewError(message))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// ReadFailed answers a failed listing. The cause is logged and the client
// only sees the generic database message.
func (h *BaseHandler) ReadFailed(c *gin.Context, err error) {
	logger.GetGinLogger(c).Error("Read failed",
		zap.String("error_class", string(persistence.Classify(err))),
		zap.Error(err),
	)
	_ = c.Error(err)
	h.HandleDomainError(c, shared.ErrDatabaseUnavailable)
}

// WriteFailed answers a failed mutation. Domain errors keep their mapped
// status; store errors become 500 with the raw error text.
func (h *BaseHandler) WriteFailed(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		logger.GetGinLogger(c).Warn("Write rejected",
			zap.String("code", domainErr.Code),
			zap.Error(err),
		)
		h.HandleDomainError(c, domainErr)
		return
	}

	logger.GetGinLogger(c).Error("Write failed",
		zap.String("error_class", string(persistence.Classify(err))),
		zap.Error(err),
	)
	_ = c.Error(err)
	h.Error(c, http.StatusInternalServerError, err.Error())
}

// HandleDomainError maps a domain error to its status and message
func (h *BaseHandler) HandleDomainError(c *gin.Context, err *shared.DomainError) {
	h.Error(c, dto.GetHTTPStatus(err.Code), err.Error())
}

// HandleError answers err, which is usually a domain error produced while
// reading the request. Anything else is an internal failure.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.HandleDomainError(c, domainErr)
		return
	}
	_ = c.Error(err)
	h.Error(c, http.StatusInternalServerError, err.Error())
}
