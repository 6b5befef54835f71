package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/service"
)

// Handlers provides the HTTP surface over the page service.
type Handlers struct {
	pages  *service.PageService
	logger *slog.Logger
}

func NewHandlers(pages *service.PageService, logger *slog.Logger) *Handlers {
	return &Handlers{
		pages:  pages,
		logger: logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func Router(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/render-data/*pageId", h.GetRenderData)
	r.GET("/healthz", h.Health)

	return r
}

// GetRenderData handles GET /render-data/*pageId. The edition query
// parameter selects the locale variant (default uk); pretty=1 returns the
// indented document.
func (h *Handlers) GetRenderData(c *gin.Context) {
	pageID := strings.TrimPrefix(c.Param("pageId"), "/")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing page id"})
		return
	}

	rc := domain.RequestContext{
		Edition: domain.EditionByID(c.DefaultQuery("edition", domain.EditionUK.ID)),
	}

	render := h.pages.RenderData
	if c.Query("pretty") == "1" {
		render = h.pages.RenderDataIndented
	}

	data, err := render(c.Request.Context(), pageID, rc)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to build render data",
			"error", err,
			"page_id", pageID,
			"edition", rc.Edition.ID,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build render data"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Health handles GET /healthz.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dotcomponents",
	})
}
