package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/sync/remote"
)

func TestClient_ListYCreate(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/products":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"p1","name":"Milk"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/products":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"p2","name":"Rice"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	list, err := c.List(ctx, remote.ResourceProducts)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Milk", list[0]["name"])

	created, err := c.Create(ctx, remote.ResourceProducts, map[string]any{"name": "Rice"})
	require.NoError(t, err)
	assert.Equal(t, "p2", created["id"])
	assert.Equal(t, "Rice", gotBody["name"])
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"producto no encontrado"}`))
	}))
	defer srv.Close()

	_, err := remote.NewClient(srv.URL, time.Second).Get(context.Background(), remote.ResourceProducts, "nope")
	require.Error(t, err)

	var apiErr *remote.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.True(t, remote.IsNotFound(err))
	assert.False(t, errors.Is(err, remote.ErrTransport), "un 404 no es error de transporte")
}

func TestClient_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := remote.NewClient(url, time.Second).List(context.Background(), remote.ResourceReminders)
	require.Error(t, err)
	assert.ErrorIs(t, err, remote.ErrTransport)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := remote.NewClient(srv.URL, 20*time.Millisecond).List(context.Background(), remote.ResourceProducts)
	assert.ErrorIs(t, err, remote.ErrTransport)
}

func TestClient_MarkReturnedDeleteImport(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":"b1","returned":1}`))
		case http.MethodPost:
			var payload remote.ImportPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Len(t, payload.Products, 1)
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, time.Second)
	ctx := context.Background()

	got, err := c.MarkReturned(ctx, "b1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got["returned"])

	require.NoError(t, c.Delete(ctx, remote.ResourceReminders, "r1"))
	require.NoError(t, c.Import(ctx, remote.ImportPayload{Products: []map[string]any{{"id": "p1"}}}))

	assert.Equal(t, []string{
		"PUT /api/borrowed/b1/return",
		"DELETE /api/reminders/r1",
		"POST /api/init",
	}, paths)
}
