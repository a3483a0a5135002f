package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/difakses/difakses-go/model"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestEnvelopeUnwrap(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"data": map[string]any{"text": "halo", "blocks": []string{"halo"}},
			"meta": map[string]any{"next": "/public/articles?page=2"},
		})
	}))

	resp := do[model.OCRResult](context.Background(), c, http.MethodGet, "/x", nil)
	require.False(t, resp.Failed())
	assert.Equal(t, "halo", resp.Data.Text)
	assert.Equal(t, "/public/articles?page=2", resp.Meta["next"])
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestErrorBodyParsing(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"error field", http.StatusBadRequest, `{"error":"judul wajib diisi"}`, "judul wajib diisi"},
		{"message field", http.StatusConflict, `{"message":"email already registered"}`, "email already registered"},
		{"unparseable falls back to status text", http.StatusBadGateway, `<html>oops</html>`, "Bad Gateway"},
		{"empty body falls back to status text", http.StatusNotFound, ``, "Not Found"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			resp := do[struct{}](context.Background(), c, http.MethodGet, "/x", nil)
			assert.True(t, resp.Failed())
			assert.Equal(t, tc.wantErr, resp.Err)
			assert.Equal(t, tc.status, resp.Status)
		})
	}
}

func TestUnparseableSuccessBody(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))

	resp := do[struct{}](context.Background(), c, http.MethodGet, "/x", nil)
	assert.Equal(t, errUnknown, resp.Err)
}

func TestEmptySuccessBody(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp := do[struct{}](context.Background(), c, http.MethodDelete, "/x", nil)
	assert.False(t, resp.Failed())
	assert.Equal(t, http.StatusNoContent, resp.Status)
}

func TestTimeoutYieldsExactMessage(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	c.timeout = 20 * time.Millisecond

	resp := do[struct{}](context.Background(), c, http.MethodGet, "/slow", nil)
	assert.Equal(t, errRequestTimeout, resp.Err)
	var zero struct{}
	assert.Equal(t, zero, resp.Data)
}

func TestHeaderInjection(t *testing.T) {
	t.Parallel()
	var gotAuth, gotRequestID, gotContentType string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		writeEnvelope(t, w, http.StatusOK, map[string]any{"data": nil})
	}))
	c.setToken(context.Background(), "tok-123")

	do[struct{}](context.Background(), c, http.MethodPost, "/x", map[string]string{"a": "b"})

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	t.Parallel()
	var authHeaders []string
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusUnauthorized, map[string]any{"error": "token expired"})
	}))
	ctx := context.Background()
	c.setToken(ctx, "dead-token")

	resp := do[struct{}](ctx, c, http.MethodGet, "/protected", nil)
	require.True(t, resp.Failed())
	assert.Equal(t, "token expired", resp.Err)
	assert.False(t, c.HasToken())

	// The durable mirror is gone too.
	_, err := store.Load(ctx, "auth_token")
	assert.Error(t, err)

	// A subsequent call carries no Authorization header.
	do[struct{}](ctx, c, http.MethodGet, "/protected", nil)
	require.Len(t, authHeaders, 2)
	assert.Equal(t, "Bearer dead-token", authHeaders[0])
	assert.Empty(t, authHeaders[1])
}

func TestAbsoluteURLBypassesBase(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(t, w, http.StatusOK, map[string]any{"data": []map[string]any{}})
	}))
	t.Cleanup(other.Close)

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("base server should not be hit")
	}))

	resp := doURL[[]map[string]any](context.Background(), c, http.MethodGet, other.URL+"/page2", nil)
	assert.False(t, resp.Failed())
	assert.Equal(t, int32(1), hits.Load())
}

func TestTwoInFlightCallsStayIndependent(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"data": map[string]any{"status": "ok"}})
	}))

	done := make(chan Response[model.AIHealth], 2)
	for range 2 {
		go func() {
			done <- c.AIHealth(context.Background())
		}()
	}
	for range 2 {
		resp := <-done
		assert.False(t, resp.Failed())
		assert.Equal(t, "ok", resp.Data.Status)
	}
}
