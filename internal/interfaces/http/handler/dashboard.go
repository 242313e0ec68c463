package handler

import (
	"context"
	"errors"

	"github.com/bizdesk/backend/internal/application/dashboard"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// DashboardBuilder assembles a named dashboard
type DashboardBuilder interface {
	Build(ctx context.Context, name string) (*dashboard.Result, error)
}

// DashboardHandler serves the aggregated dashboards
type DashboardHandler struct {
	BaseHandler
	builder DashboardBuilder
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(builder DashboardBuilder) *DashboardHandler {
	return &DashboardHandler{builder: builder}
}

// DashboardListResponse names the available dashboards
type DashboardListResponse struct {
	Dashboards []string `json:"dashboards" example:"feedback,inventory,personnel,procurement,sales"`
}

// List godoc
// @Summary      List dashboards
// @Tags         dashboards
// @Produce      json
// @Success      200 {object} DashboardListResponse
// @Router       /custom/dashboard [get]
func (h *DashboardHandler) List(c *gin.Context) {
	h.OK(c, DashboardListResponse{Dashboards: dashboard.Names()})
}

// Get godoc
// @Summary      Build a dashboard
// @Description  Reads every source listing concurrently and aggregates them. Sources that fail are reported in failed_sources and treated as empty.
// @Tags         dashboards
// @Produce      json
// @Param        name path string true "Dashboard name" Enums(procurement, sales, inventory, personnel, feedback)
// @Success      200 {object} dashboard.Result
// @Failure      404 {object} dto.ErrorResponse
// @Router       /custom/dashboard/{name} [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	result, err := h.builder.Build(c.Request.Context(), c.Param("name"))
	if errors.Is(err, dashboard.ErrUnknownDashboard) {
		h.HandleError(c, shared.ErrNotFound.Wrap(err))
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}
