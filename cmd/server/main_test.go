package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmj-platform/internal/browse"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("wildcard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cors([]string{"*"})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://tmj.example")
		rec := httptest.NewRecorder()
		cors([]string{"https://tmj.example"})(next).ServeHTTP(rec, req)
		assert.Equal(t, "https://tmj.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://other.example")
		rec := httptest.NewRecorder()
		cors([]string{"https://tmj.example"})(next).ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cors([]string{"*"})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAnalyzeCommand(t *testing.T) {
	var out bytes.Buffer
	analyzeCmd.SetOut(&out)
	analyzeCmd.SetIn(strings.NewReader("my jaw clicks"))
	t.Cleanup(func() {
		analyzeCmd.SetOut(nil)
		analyzeCmd.SetIn(nil)
	})

	analyzeCmd.SetContext(t.Context())
	require.NoError(t, analyzeCmd.RunE(analyzeCmd, nil))

	var resp browse.Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Patterns, 1)
	assert.EqualValues(t, "jaw_dysfunction", resp.Patterns[0].Category)
	require.NotNil(t, resp.RPMSuggestion)
}
