package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hugohenrick/armazem/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        string `json:"id"`
	StreetID  int64  `json:"streetId"`
	CreatedAt string `json:"createdAt"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{BaseURL: srv.URL, Timeout: time.Second, MaxAttempts: 3, Backoff: time.Millisecond}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg, logger.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_GetNormalizesTopLevelKeys(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, `[{"id":"A1","street_id":3,"created_at":"2024-01-01T00:00:00Z"}]`)
	})

	var items []item
	require.NoError(t, client.Get(context.Background(), "/addresses", &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].StreetID)
	assert.Equal(t, "2024-01-01T00:00:00Z", items[0].CreatedAt)
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Address not found"}`)
	})

	err := client.Get(context.Background(), "/addresses/x", &item{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnavailable(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Recurso não encontrado", apiErr.Message)
}

func TestClient_GetRetriesServerErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			writeJSON(w, http.StatusBadGateway, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"ok"}`)
	})

	var out item
	require.NoError(t, client.Get(context.Background(), "/streets/1", &out))
	assert.Equal(t, "ok", out.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GetGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	})

	err := client.Get(context.Background(), "/streets", nil)
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_MutationsAreNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusInternalServerError, `{}`)
	})

	err := client.Put(context.Background(), "/addresses/A1", map[string]string{"status": "filled"}, nil)
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Rua A", body["name"])

		writeJSON(w, http.StatusCreated, `{"id":"S1","created_at":"2024-02-02T00:00:00Z"}`)
	})

	var out item
	require.NoError(t, client.Post(context.Background(), "/streets", map[string]string{"name": "Rua A"}, &out))
	assert.Equal(t, "S1", out.ID)
	assert.Equal(t, "2024-02-02T00:00:00Z", out.CreatedAt)
}

func TestClient_ClientErrorCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message":["name must be a string","name should not be empty"]}`)
	})

	err := client.Post(context.Background(), "/streets", map[string]string{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "name must be a string; name should not be empty", apiErr.Message)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsUnavailable(err))
}

func TestClient_NonJSONResponseIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "OK")
	})

	out := item{ID: "untouched"}
	require.NoError(t, client.Delete(context.Background(), "/streets/1"))
	require.NoError(t, client.Get(context.Background(), "/streets/1", &out))
	assert.Equal(t, "untouched", out.ID)
}

func TestClient_TimeoutIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
		cfg.MaxAttempts = 1
	})

	err := client.Get(context.Background(), "/take-ups", nil)
	assert.True(t, IsUnavailable(err))
}

func TestClient_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url, Timeout: time.Second, MaxAttempts: 2, Backoff: time.Millisecond}, logger.NewNop())
	err := client.Ping(context.Background())
	assert.True(t, IsUnavailable(err))
}
