package audience

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
	changesTotal *prometheus.CounterVec
	metricsOnce  sync.Once
)

// ChangesCounter counts preference changes by the resulting mode.
func ChangesCounter() *prometheus.CounterVec {
	metricsOnce.Do(func() {
		changesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audience_mode_changes_total",
				Help: "Audience mode changes, by resulting mode",
			},
			[]string{"mode"},
		)
	})
	return changesTotal
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

type SetModeRequest struct {
	Mode string `json:"mode"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.NewClient(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, state)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Get(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, state)
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := respond.Decode(w, r, h.maxBodyBytes, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := ParseMode(req.Mode)
	if err != nil {
		h.fail(w, err)
		return
	}

	state, err := h.svc.Set(r.Context(), chi.URLParam(r, "clientID"), mode)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, state)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Toggle(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, state)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidMode):
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidClientID):
		respond.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("audience preference failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to update audience preference")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/audience", h.Create)
	r.Get("/audience/{clientID}", h.Get)
	r.Put("/audience/{clientID}", h.Set)
	r.Post("/audience/{clientID}/toggle", h.Toggle)
}
