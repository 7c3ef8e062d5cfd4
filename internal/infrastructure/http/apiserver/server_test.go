package apiserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forkful/garnish/internal/application/annotation"
	"github.com/forkful/garnish/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *APIServer {
	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "Garnish",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerMin: 6000,
			BurstSize:      1000,
		},
	}

	log := zap.NewNop()
	return New(cfg, log, annotation.NewAnnotationService(log))
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestAnnotateIngredientEndpoint(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server.Router(), "/api/v1/annotate/ingredient", `{
		"name": "unsalted butter",
		"amount": "1.5",
		"unit": "cup",
		"preparation": "melted, alt: margarine, optional"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)

	assert.Equal(t, "Unsalted Butter", data["name"])
	assert.Equal(t, "1½ cup", data["display_amount"])
	assert.Equal(t, "Melted", data["notes"])
	assert.Equal(t, "margarine", data["alternative"])
	assert.Equal(t, true, data["optional"])
	assert.NotEmpty(t, data["id"])
}

func TestAnnotateRecipeEndpoint(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server.Router(), "/api/v1/annotate/recipe", `{
		"ingredients": [
			{"name": "bread flour", "section": "Dough", "baker_percent": "100%"},
			{"name": "honey", "section": "Glaze", "amount": "1/4", "unit": "cup"},
			{"name": "water", "section": "Dough", "amount": "2.0"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Sections []struct {
				Name        string `json:"name"`
				Ingredients []struct {
					Name          string `json:"name"`
					DisplayAmount string `json:"display_amount"`
				} `json:"ingredients"`
			} `json:"sections"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data.Sections, 2)
	assert.Equal(t, "Dough", envelope.Data.Sections[0].Name)
	assert.Equal(t, "Glaze", envelope.Data.Sections[1].Name)
	require.Len(t, envelope.Data.Sections[0].Ingredients, 2)
	assert.Equal(t, "Bread Flour", envelope.Data.Sections[0].Ingredients[0].Name)
	assert.Equal(t, "2", envelope.Data.Sections[0].Ingredients[1].DisplayAmount)
	assert.Equal(t, "¼ cup", envelope.Data.Sections[1].Ingredients[0].DisplayAmount)
}

func TestParseNotesEndpoint(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server.Router(), "/api/v1/parse/notes", `{"notes": "diced (or use shallots)"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)

	assert.Equal(t, "shallots", data["alternative"])
	assert.Equal(t, "diced", data["notes"])
	assert.Equal(t, false, data["optional"])
}

func TestFormatEndpoints(t *testing.T) {
	server := newTestServer()

	t.Run("Amount", func(t *testing.T) {
		rec := postJSON(t, server.Router(), "/api/v1/format/amount", `{"amount": "1/2"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "½", decodeData(t, rec)["amount"])
	})

	t.Run("Direction", func(t *testing.T) {
		rec := postJSON(t, server.Router(), "/api/v1/format/direction", `{"text": "add 1/2 of the flour"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Add ½ of the flour", decodeData(t, rec)["text"])
	})
}

func TestValidationFailure(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server.Router(), "/api/v1/annotate/ingredient", `{"name": ""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestMalformedJSONRejected(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server.Router(), "/api/v1/parse/notes", `{"notes": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNonJSONContentTypeRejected(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/format/amount", bytes.NewBufferString("amount=1/2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer()

	// Generate one request so the counters exist
	postJSON(t, server.Router(), "/api/v1/format/amount", `{"amount": "1"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "garnish_http_requests_total")
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := &config.Config{
		App:       config.AppConfig{Name: "Garnish"},
		Server:    config.ServerConfig{Port: 0},
		RateLimit: config.RateLimitConfig{RequestsPerMin: 60, BurstSize: 2},
	}
	log := zap.NewNop()
	server := New(cfg, log, annotation.NewAnnotationService(log))

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		last = postJSON(t, server.Router(), "/api/v1/format/amount", fmt.Sprintf(`{"amount": "%d"}`, i))
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)

	// Rejections carry the same error envelope as every other error path
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &envelope))
	assert.Equal(t, "TOO_MANY_REQUESTS", envelope.Error.Code)
}
