package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/config"
)

func testServer(apiKey string) *Server {
	conf := config.New("en", []config.Rule{
		{Name: "SentenceLength", Options: map[string]string{"max_len": "10"}},
	}, nil)
	srvCfg := config.ServerConfig{Port: "0", APIKey: apiKey, MaxUploadBytes: 1 << 20}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(conf, srvCfg, log)
}

func postValidate(t *testing.T, s *Server, body map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(payload))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidate_ReturnsFindings(t *testing.T) {
	s := testServer("")
	rec := postValidate(t, s, map[string]any{
		"content": "This sentence is definitely longer than ten characters.",
		"format":  "plain",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Documents []struct {
			File   string `json:"file"`
			Errors []struct {
				Rule    string `json:"rule"`
				Message string `json:"message"`
				Line    int    `json:"line"`
			} `json:"errors"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "input", resp.Documents[0].File)
	require.Len(t, resp.Documents[0].Errors, 1)
	assert.Equal(t, "SentenceLength", resp.Documents[0].Errors[0].Rule)
}

func TestHandleValidate_CleanContent(t *testing.T) {
	s := testServer("")
	rec := postValidate(t, s, map[string]any{"content": "Short."}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Documents []struct {
			Errors []any `json:"errors"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 1)
	assert.Empty(t, resp.Documents[0].Errors)
}

func TestHandleValidate_MissingContent(t *testing.T) {
	s := testServer("")
	rec := postValidate(t, s, map[string]any{"format": "plain"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidate_UnknownFormat(t *testing.T) {
	s := testServer("")
	rec := postValidate(t, s, map[string]any{"content": "Hi.", "format": "binary"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidate_AuthRequired(t *testing.T) {
	s := testServer("secret")

	rec := postValidate(t, s, map[string]any{"content": "Hi."}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postValidate(t, s, map[string]any{"content": "Hi."}, map[string]string{
		"Authorization": "Bearer secret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	s := testServer("secret")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
