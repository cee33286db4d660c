package assessment

import (
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"tmj-platform/internal/platform/respond"
)

var (
	resultsTotal *prometheus.CounterVec
	metricsOnce  sync.Once
)

func resultsCounter() *prometheus.CounterVec {
	metricsOnce.Do(func() {
		resultsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessment_results_total",
				Help: "Completed self-assessments, by likelihood level",
			},
			[]string{"level"},
		)
	})
	return resultsTotal
}

type Handler struct {
	logger       *zap.Logger
	results      *prometheus.CounterVec
	maxBodyBytes int64
}

func NewHandler(logger *zap.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:       logger,
		results:      resultsCounter(),
		maxBodyBytes: maxBodyBytes,
	}
}

type EvaluateRequest struct {
	Symptoms []string `json:"symptoms"`
	Variant  Variant  `json:"variant,omitempty"`
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, NewCatalog())
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := respond.Decode(w, r, h.maxBodyBytes, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := Evaluate(req.Symptoms, req.Variant)
	switch {
	case errors.Is(err, ErrNoSymptoms), errors.Is(err, ErrUnknownSymptom), errors.Is(err, ErrUnknownVariant):
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.logger.Error("assessment failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to evaluate assessment")
		return
	}

	h.results.WithLabelValues(string(res.Level)).Inc()
	respond.JSON(w, http.StatusOK, res)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/assessment", h.Catalog)
	r.Post("/assessment", h.Evaluate)
}
