package contact

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
	submissionsTotal *prometheus.CounterVec
	metricsOnce      sync.Once
)

// SubmissionsCounter counts stored submissions by audience.
func SubmissionsCounter() *prometheus.CounterVec {
	metricsOnce.Do(func() {
		submissionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Stored contact submissions, by audience",
			},
			[]string{"audience"},
		)
	})
	return submissionsTotal
}

type Handler struct {
	svc          Service
	logger       *zap.Logger
	maxBodyBytes int64
}

func NewHandler(svc Service, logger *zap.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger, maxBodyBytes: maxBodyBytes}
}

type SubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := respond.Decode(w, r, h.maxBodyBytes, &in); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("failed to store contact submission", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to submit contact request")
		return
	}

	respond.JSON(w, http.StatusCreated, SubmitResponse{
		ID:     sub.ID.String(),
		Status: "received",
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/contact", h.Submit)
}
