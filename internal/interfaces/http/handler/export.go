package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/export"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Archive stores export files and signs download links for them
type Archive interface {
	ObjectKey(name string, at time.Time) string
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PresignDownload(ctx context.Context, key string) (string, time.Time, error)
}

// ExportHandler renders a resource listing as an XLSX workbook
type ExportHandler struct {
	BaseHandler
	res     *resource.Resource
	lister  Lister
	archive Archive
	now     func() time.Time
}

// NewExportHandler creates an export handler for res. archive may be nil,
// in which case archiving answers 503.
func NewExportHandler(res *resource.Resource, lister Lister, archive Archive) *ExportHandler {
	return &ExportHandler{res: res, lister: lister, archive: archive, now: time.Now}
}

// Download godoc
// @Summary      Export a resource as XLSX
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        group     path  string  true  "Route group"
// @Param        resource  path  string  true  "Resource path"
// @Success      200 {file} file
// @Failure      500 {object} dto.ErrorResponse
// @Router       /{group}/{resource}/export [get]
func (h *ExportHandler) Download(c *gin.Context) {
	data, _, ok := h.render(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", h.res.Path, h.now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// Archive godoc
// @Summary      Archive a resource export to object storage
// @Description  Uploads the XLSX export and returns a presigned download link
// @Tags         exports
// @Produce      json
// @Param        group     path  string  true  "Route group"
// @Param        resource  path  string  true  "Resource path"
// @Success      201 {object} dto.ExportResponse
// @Failure      500 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /{group}/{resource}/export [post]
func (h *ExportHandler) Archive(c *gin.Context) {
	if h.archive == nil {
		h.HandleError(c, shared.ErrExportUnavailable)
		return
	}
	data, rows, ok := h.render(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := h.archive.ObjectKey(h.res.Path, h.now()) + ".xlsx"
	if err := h.archive.Upload(ctx, key, data, export.ContentType); err != nil {
		logger.GetGinLogger(c).Error("Export upload failed", zap.String("key", key), zap.Error(err))
		h.HandleError(c, shared.ErrExportUnavailable.Wrap(err))
		return
	}
	url, expiresAt, err := h.archive.PresignDownload(ctx, key)
	if err != nil {
		h.HandleError(c, shared.ErrExportUnavailable.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, dto.ExportResponse{Key: key, URL: url, Rows: rows, ExpiresAt: expiresAt})
}

// render lists the resource and writes the workbook. It answers the
// request itself on failure and reports ok=false.
func (h *ExportHandler) render(c *gin.Context) ([]byte, int, bool) {
	rows, err := h.lister.List(c.Request.Context())
	if err != nil {
		h.ReadFailed(c, err)
		return nil, 0, false
	}
	cols := export.Columns(rows, append(h.res.KeyColumns(), h.res.InsertColumns()...)...)
	data, err := export.Workbook(h.res.Label, cols, rows)
	if err != nil {
		h.HandleError(c, fmt.Errorf("render %s export: %w", h.res.Path, err))
		return nil, 0, false
	}
	return data, len(rows), true
}
