package server

import (
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rickgao/skyblock-ah/internal/cache"
	"github.com/rickgao/skyblock-ah/internal/index"
	"github.com/rickgao/skyblock-ah/internal/version"
)

const (
	healthHealthy  = "healthy"
	healthDegraded = "degraded"
)

var errNotFound = errors.New("not found")

//go:generate mockgen -destination=mock_source_test.go -package=server . IndexSource

// IndexSource provides the current auction index and cache status.
type IndexSource interface {
	Snapshot() *index.Index
	Status() cache.Status
}

type Handler struct {
	src           IndexSource
	degradedAfter int
	logger        *slog.Logger
}

func NewHandler(src IndexSource, degradedAfter int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{src: src, degradedAfter: degradedAfter, logger: logger}
}

// ListItemsHTML handles GET /items
func (h *Handler) ListItemsHTML(c *gin.Context) {
	names := h.src.Snapshot().Names()
	for i, n := range names {
		names[i] = html.EscapeString(n)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(strings.Join(names, "<br>")))
}

// ListItems handles GET /api/items
func (h *Handler) ListItems(c *gin.Context) {
	names := h.src.Snapshot().Names()
	JSONResponse(c, http.StatusOK, names, "items retrieved successfully")
}

// GetItem handles GET /api/items/:name
func (h *Handler) GetItem(c *gin.Context) {
	name := index.Normalize(c.Param("name"))

	auctions := h.src.Snapshot().Lookup(name)
	resp := ItemResponse{
		Name:     name,
		Count:    len(auctions),
		Auctions: make([]AuctionResponse, len(auctions)),
	}
	for i, a := range auctions {
		resp.Auctions[i] = toAuctionResponse(a)
	}

	message := "auctions retrieved successfully"
	if len(auctions) == 0 {
		message = "no auctions found for item"
	}
	JSONResponse(c, http.StatusOK, resp, message)
}

// Health handles GET /health. The cache keeps serving its last good index
// while refreshes fail, so a degraded cache still answers 200.
func (h *Handler) Health(c *gin.Context) {
	st := h.src.Status()

	resp := HealthResponse{
		Status:  healthHealthy,
		Version: version.String(),
		Cache:   st,
	}
	if h.degradedAfter > 0 && st.ConsecutiveFailures >= h.degradedAfter {
		resp.Status = healthDegraded
	}

	c.JSON(http.StatusOK, resp)
}

// NotFound handles unmatched routes when no static directory is configured.
func (h *Handler) NotFound(c *gin.Context) {
	JSONError(c, http.StatusNotFound, errNotFound, "route not found")
}
