// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/core/gid"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// PathGID validates the identifier in path parameter param and returns it.
// Accepts numeric GIDs and canonical UUIDs; anything else is rejected with
// the standard identifier error.
func (h *BaseHandler) PathGID(c *gin.Context, param, resourceName string) (string, bool) {
	val := c.Param(param)
	if err := gid.Validate(val, resourceName, false); err != nil {
		h.Error(c, err)
		return "", false
	}
	return val, true
}

// Created sends 201 response with the object in the data envelope.
func (h *BaseHandler) Created(c *gin.Context, v any) {
	c.JSON(http.StatusCreated, dto.Wrap(v))
}

// OK sends 200 response with the object in the data envelope.
func (h *BaseHandler) OK(c *gin.Context, v any) {
	c.JSON(http.StatusOK, dto.Wrap(v))
}

// Deleted sends the empty-data response used for deletes.
func (h *BaseHandler) Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Wrap(gin.H{}))
}
