package content

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tmj-platform/internal/platform/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, SiteContent())
}

type CarouselResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
	Current      int           `json:"current"`
	Next         int           `json:"next"`
	Prev         int           `json:"prev"`
}

// Testimonials serves the carousel. ?audience=practitioner narrows the set,
// ?index=N positions it.
func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	items := Testimonials()
	switch r.URL.Query().Get("audience") {
	case "", "patient":
	case "practitioner":
		items = PractitionerTestimonials()
	default:
		respond.Error(w, http.StatusBadRequest, "audience must be patient or practitioner")
		return
	}

	current := 0
	if v := r.URL.Query().Get("index"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "index must be an integer")
			return
		}
		current = NextIndex(i-1, len(items))
	}

	respond.JSON(w, http.StatusOK, CarouselResponse{
		Testimonials: items,
		Current:      current,
		Next:         NextIndex(current, len(items)),
		Prev:         PrevIndex(current, len(items)),
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/content", h.Site)
	r.Get("/content/testimonials", h.Testimonials)
}
