package handler

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Lister reads every row of a resource view
type Lister interface {
	List(ctx context.Context) ([]map[string]any, error)
}

// Accessor is the store surface a ResourceHandler drives. Arguments are
// positional in the order of the resource fields.
type Accessor interface {
	Lister
	Add(ctx context.Context, args ...any) (int64, error)
	Update(ctx context.Context, args ...any) (int64, error)
	Delete(ctx context.Context, key ...any) (int64, error)
}

// ResourceHandler serves list, add, update and delete for one resource
type ResourceHandler struct {
	BaseHandler
	res   *resource.Resource
	store Accessor
}

// NewResourceHandler creates a handler for res backed by store
func NewResourceHandler(res *resource.Resource, store Accessor) *ResourceHandler {
	return &ResourceHandler{res: res, store: store}
}

// List godoc
// @Summary      List resource rows
// @Description  Returns every row of the resource view, unfiltered and unpaginated
// @Tags         resources
// @Produce      json
// @Param        group     path  string  true  "Route group"  Enums(personnel, poi, procurement, poa, oap, custom)
// @Param        resource  path  string  true  "Resource path, e.g. role"
// @Success      200 {array}  object
// @Failure      500 {object} dto.ErrorResponse
// @Router       /{group}/{resource} [get]
func (h *ResourceHandler) List(c *gin.Context) {
	rows, err := h.store.List(c.Request.Context())
	if err != nil {
		h.ReadFailed(c, err)
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	h.OK(c, rows)
}

// Add godoc
// @Summary      Create a row
// @Description  Body is a flat JSON object of the resource fields; omitted optional fields take their defaults
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        group     path  string  true  "Route group"
// @Param        resource  path  string  true  "Resource path"
// @Param        request   body  object  true  "Resource fields"
// @Success      201 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /{group}/{resource}/add [post]
func (h *ResourceHandler) Add(c *gin.Context) {
	body, err := decodeBody(c.Request)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	args, err := h.res.InsertArgs(body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if _, err := h.store.Add(c.Request.Context(), args...); err != nil {
		h.WriteFailed(c, err)
		return
	}
	h.Created(c, dto.Added(h.res.Label))
}

// Update godoc
// @Summary      Update a row
// @Description  Body carries the key fields plus the new values. An unknown key updates nothing and still answers 200.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        group     path  string  true  "Route group"
// @Param        resource  path  string  true  "Resource path"
// @Param        request   body  object  true  "Key and resource fields"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /{group}/{resource}/update [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	body, err := decodeBody(c.Request)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	args, err := h.res.UpdateArgs(body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	n, err := h.store.Update(c.Request.Context(), args...)
	if err != nil {
		h.WriteFailed(c, err)
		return
	}
	if n == 0 {
		logger.GetGinLogger(c).Info("Update matched no rows", zap.String("resource", h.res.Path))
	}
	h.OK(c, dto.Updated(h.res.Label))
}

// Delete godoc
// @Summary      Delete a row
// @Description  Deletes by key. Key values are passed to the store as the path strings.
// @Tags         resources
// @Produce      json
// @Param        group     path  string  true  "Route group"
// @Param        resource  path  string  true  "Resource path"
// @Param        id        path  string  true  "Key value"
// @Success      200 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /{group}/{resource}/delete/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	params := h.res.KeyParams()
	key := make([]any, len(params))
	for i, p := range params {
		key[i] = c.Param(p)
	}
	n, err := h.store.Delete(c.Request.Context(), key...)
	if err != nil {
		h.WriteFailed(c, err)
		return
	}
	if n == 0 {
		logger.GetGinLogger(c).Info("Delete matched no rows", zap.String("resource", h.res.Path))
	}
	h.OK(c, dto.Deleted(h.res.Label))
}
