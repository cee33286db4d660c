package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselIndex(t *testing.T) {
	tests := []struct {
		i, n, next, prev int
	}{
		{0, 3, 1, 2},
		{2, 3, 0, 1},
		{1, 3, 2, 0},
		{0, 1, 0, 0},
		{5, 3, 0, 1},
		{-1, 3, 0, 1},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, NextIndex(tt.i, tt.n), "next(%d,%d)", tt.i, tt.n)
		assert.Equal(t, tt.prev, PrevIndex(tt.i, tt.n), "prev(%d,%d)", tt.i, tt.n)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Symptoms()
	s[0] = "changed"
	assert.Equal(t, "Jaw pain that won't resolve", Symptoms()[0])
	assert.Len(t, CoreInsights().SympatheticLock.Symptoms, 6)
}

func TestPractitionerTestimonials(t *testing.T) {
	got := PractitionerTestimonials()
	require.Len(t, got, 2)
	assert.Equal(t, "Michael R.", got[0].Author)
	assert.Equal(t, "Jennifer K.", got[1].Author)
}

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler())
	return r
}

func TestHandler_Site(t *testing.T) {
	rec := httptest.NewRecorder()
	setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var site Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &site))
	assert.Equal(t, 6000, site.Insights.SympatheticLock.Analogy.BeforeRPM)
	assert.Len(t, site.Testimonials, 3)
	assert.Len(t, site.Navigation, 6)
	assert.Equal(t, "Dr. Gerardo", site.Metadata.Author)
}

func TestHandler_Testimonials(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		status  int
		count   int
		current int
		next    int
		prev    int
	}{
		{"default", "", http.StatusOK, 3, 0, 1, 2},
		{"indexed", "?index=2", http.StatusOK, 3, 2, 0, 1},
		{"index wraps", "?index=4", http.StatusOK, 3, 1, 2, 0},
		{"practitioner", "?audience=practitioner&index=1", http.StatusOK, 2, 1, 0, 0},
		{"bad audience", "?audience=robot", http.StatusBadRequest, 0, 0, 0, 0},
		{"bad index", "?index=two", http.StatusBadRequest, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/content/testimonials"+tt.query, nil))
			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}

			var resp CarouselResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Testimonials, tt.count)
			assert.Equal(t, tt.current, resp.Current)
			assert.Equal(t, tt.next, resp.Next)
			assert.Equal(t, tt.prev, resp.Prev)
		})
	}
}
