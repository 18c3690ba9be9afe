package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBioClient() *resty.Client {
	return resty.New().SetTimeout(2 * time.Second)
}

func TestGenerateBio_Success(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		require.NotEmpty(t, req.Contents[0].Parts)
		gotPrompt = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "  Deneyimli mimar olarak modern yaşam alanları tasarlıyorum.  "}}}},
			},
		})
	}))
	defer server.Close()

	svc := NewBioServiceWithClient(newTestBioClient(), server.URL, "test-key")
	bio, err := svc.GenerateBio(context.Background(), "Ayşe Yılmaz", "Mimar", "Yılmaz Mimarlık")

	require.NoError(t, err)
	assert.Equal(t, "Deneyimli mimar olarak modern yaşam alanları tasarlıyorum.", bio)
	assert.Contains(t, gotPrompt, "Ayşe Yılmaz")
	assert.Contains(t, gotPrompt, "Mimar")
	assert.Contains(t, gotPrompt, "Yılmaz Mimarlık")
	assert.Contains(t, gotPrompt, "35 words")
}

func TestGenerateBio_InputValidation(t *testing.T) {
	svc := NewBioServiceWithClient(newTestBioClient(), "http://localhost:1", "k")

	_, err := svc.GenerateBio(context.Background(), "", "Mimar", "")
	assert.ErrorIs(t, err, ErrBioInputMissing)

	_, err = svc.GenerateBio(context.Background(), "Ayşe", "   ", "")
	assert.ErrorIs(t, err, ErrBioInputMissing)
}

func TestGenerateBio_NotConfigured(t *testing.T) {
	svc := NewBioServiceWithClient(newTestBioClient(), "", "")
	_, err := svc.GenerateBio(context.Background(), "Ayşe", "Mimar", "")
	assert.ErrorIs(t, err, ErrBioNotConfigured)
}

func TestGenerateBio_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "quota exceeded"}})
	}))
	defer server.Close()

	svc := NewBioServiceWithClient(newTestBioClient(), server.URL, "k")
	_, err := svc.GenerateBio(context.Background(), "Ayşe", "Mimar", "")
	assert.ErrorIs(t, err, ErrBioUnavailable)
	// Upstream'in döndürdüğü mesaj kaybolmamalı; generic status yeterli değil.
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateBio_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	svc := NewBioServiceWithClient(newTestBioClient(), server.URL, "k")
	_, err := svc.GenerateBio(context.Background(), "Ayşe", "Mimar", "")
	assert.ErrorIs(t, err, ErrBioUnavailable)
}
