package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-courses/internal/core/port"
	"training-courses/internal/requestctx"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDoForwardsTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/things", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "v", in["k"])
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, discardLogger())
	ctx := requestctx.WithCaller(context.Background(), requestctx.Caller{Token: "tok"})

	var out struct{ ID string }
	err := c.Do(ctx, http.MethodPost, "/api/things", map[string]string{"k": "v"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID)
}

func TestDoWithoutCallerSendsNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, discardLogger())
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/x", nil, nil))
}

func TestDoStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/conflict":
			http.Error(w, "exists", http.StatusConflict)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()
	c := NewClient(srv.URL, time.Second, discardLogger())

	err := c.Do(context.Background(), http.MethodPost, "/conflict", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrAlreadyExists))
	assert.Equal(t, http.StatusConflict, StatusCode(err))

	err = c.Do(context.Background(), http.MethodPost, "/other", nil, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, port.ErrAlreadyExists))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestDoNotFoundAndConfiguredExistsStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.Error(w, "no such campaign", http.StatusNotFound)
		default:
			http.Error(w, "interviewer already present", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	plain := NewClient(srv.URL, time.Second, discardLogger())
	err := plain.Do(context.Background(), http.MethodDelete, "/missing", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.NotErrorIs(t, err, port.ErrAlreadyExists)

	err = plain.Do(context.Background(), http.MethodPost, "/interviewers", nil, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrAlreadyExists)

	lenient := NewClient(srv.URL, time.Second, discardLogger()).WithExistsStatuses(http.StatusBadRequest)
	err = lenient.Do(context.Background(), http.MethodPost, "/interviewers", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrAlreadyExists)
	assert.NotErrorIs(t, err, port.ErrNotFound)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestStatusCodeOfTransportError(t *testing.T) {
	assert.Equal(t, 0, StatusCode(errors.New("dial tcp: refused")))
}
