package browse

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tmj-platform/internal/platform/respond"
)

// ReportRenderer turns an analysis into a printable document.
// We define it here so the PDF implementation can depend on this package.
type ReportRenderer interface {
	Render(ctx context.Context, resp *Response) ([]byte, error)
}

type Handler struct {
	svc          Service
	renderer     ReportRenderer
	metrics      *Metrics
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewHandler wires the browse endpoints. renderer may be nil, in which case
// the report endpoint answers 503.
func NewHandler(svc Service, renderer ReportRenderer, metrics *Metrics, logger *zap.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:          svc,
		renderer:     renderer,
		metrics:      metrics,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req Request
	if err := respond.Decode(w, r, h.maxBodyBytes, &req); err != nil {
		h.logger.Warn("browse request rejected", zap.Error(err))
		respond.Error(w, http.StatusBadRequest, "Failed to process AI request: "+err.Error())
		return "", false
	}
	if req.Message == nil {
		respond.Error(w, http.StatusBadRequest, "Failed to process AI request: message is required")
		return "", false
	}
	if req.Context != nil && req.Context.CurrentRPM != nil {
		h.logger.Debug("browse request context", zap.Int("current_rpm", *req.Context.CurrentRPM))
	}
	return *req.Message, true
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decode(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, h.svc.Analyze(r.Context(), text))
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.Info())
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		respond.Error(w, http.StatusServiceUnavailable, "reports are not available")
		return
	}

	text, ok := h.decode(w, r)
	if !ok {
		return
	}

	pdf, err := h.renderer.Render(r.Context(), h.svc.Analyze(r.Context(), text))
	if err != nil {
		h.countReport("error")
		h.logger.Error("failed to render analysis report", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	h.countReport("ok")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="tmj-analysis.pdf"`)
	_, _ = w.Write(pdf)
}

func (h *Handler) countReport(outcome string) {
	if h.metrics != nil {
		h.metrics.ReportsRendered.WithLabelValues(outcome).Inc()
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/ai/browse", h.Analyze)
	r.Get("/ai/browse", h.Info)
	r.Post("/ai/browse/report", h.Report)
}
