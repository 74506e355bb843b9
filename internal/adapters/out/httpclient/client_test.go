package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	Value string `json:"value"`
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "x", r.URL.Query().Get("q"))
		assert.Equal(t, "tester/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second, WithHeader("User-Agent", "tester/1.0"))

	var out echoBody
	require.NoError(t, c.GetJSON(context.Background(), "/things?q=x", &out))
	assert.Equal(t, "ok", out.Value)
	assert.Equal(t, srv.URL, c.BaseURL())
}

func TestClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echoBody
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(echoBody{Value: in.Value + "!"})
	}))
	defer srv.Close()

	var out echoBody
	err := New(srv.URL, time.Second).PostJSON(context.Background(), "/echo", echoBody{Value: "hi"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"value":"late"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithRetry(3, time.Millisecond))

	var out echoBody
	require.NoError(t, c.GetJSON(context.Background(), "/", &out))
	assert.Equal(t, "late", out.Value)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad input", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithRetry(3, time.Millisecond))
	err := c.GetJSON(context.Background(), "/", &echoBody{})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "bad input", se.Body)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GivesUpAfterLastAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second, WithRetry(2, time.Millisecond)).GetJSON(context.Background(), "/", nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":`))
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second).GetJSON(context.Background(), "/", &echoBody{})
	assert.ErrorContains(t, err, "decode response")
}

func TestClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New("http://127.0.0.1:1", time.Second).GetJSON(ctx, "/", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_EmptyBodyLeavesTargetUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out := echoBody{Value: "before"}
	require.NoError(t, New(srv.URL, time.Second).GetJSON(context.Background(), "/", &out))
	assert.Equal(t, "before", out.Value)
}

func TestClient_BodyLimit(t *testing.T) {
	payload := `{"value":"` + strings.Repeat("x", 64) + `"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	t.Run("oversized answer is rejected", func(t *testing.T) {
		var out echoBody
		err := New(srv.URL, time.Second, WithMaxBodySize(32)).GetJSON(context.Background(), "/", &out)

		require.ErrorIs(t, err, ErrBodyTooLarge)
		assert.Empty(t, out.Value)
	})

	t.Run("answer at the limit is decoded", func(t *testing.T) {
		var out echoBody
		err := New(srv.URL, time.Second, WithMaxBodySize(int64(len(payload)))).GetJSON(context.Background(), "/", &out)

		require.NoError(t, err)
		assert.Len(t, out.Value, 64)
	})
}
