package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	apperrors "github.com/yanqian/garden-faq/pkg/errors"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc gardenfaq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc gardenfaq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// SearchQuery handles GET /faq/search?q=...&category=...
func (h *Handler) SearchQuery(c *gin.Context) {
	var req gardenfaq.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.search(c, req)
}

// SearchJSON handles POST /faq/search with a JSON body.
func (h *Handler) SearchJSON(c *gin.Context) {
	var req gardenfaq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.search(c, req)
}

func (h *Handler) search(c *gin.Context, req gardenfaq.Request) {
	resp, err := h.faqSvc.Search(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, faqError(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resp)
}

// Categories lists the category filters offered by the widget.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.faqSvc.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, faqError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Health reports liveness; the FAQ document does not need to be loaded.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// faqError maps loader failures to statuses. Load errors are worth a retry,
// format errors need a new deployment of the document.
func faqError(err error) *HTTPError {
	switch apperrors.CodeOf(err) {
	case gardenfaq.CodeLoad:
		httpErr := NewHTTPError(http.StatusServiceUnavailable, "faq_unavailable", "FAQ data could not be loaded, please retry", err)
		httpErr.Retryable = true
		return httpErr
	case gardenfaq.CodeFormat:
		return NewHTTPError(http.StatusBadGateway, "faq_invalid_document", "FAQ data is malformed", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "faq_failed", errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
