package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var got sendMessageReq
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient("abc", srv.URL+"/")
	require.NoError(t, c.SendMessage(context.Background(), 99, "New contact: Jane"))

	assert.Equal(t, "/botabc/sendMessage", gotPath)
	assert.EqualValues(t, 99, got.ChatID)
	assert.Equal(t, "New contact: Jane", got.Text)
}

func TestSendMessage_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	err := NewClient("abc", srv.URL).SendMessage(context.Background(), 1, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("", "").Configured())
	assert.True(t, NewClient("t", "").Configured())
	assert.Equal(t, DefaultBaseURL, NewClient("t", "").baseURL)
}
