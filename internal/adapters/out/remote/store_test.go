package remote_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"atelier/internal/adapters/out/remote"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu        sync.Mutex
	documents map[string][]byte
	failPut   bool
	puts      int
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/atelier/atelier-1":
		doc, ok := b.documents["atelier-1"]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	case r.Method == http.MethodPut && r.URL.Path == "/atelier/atelier-1/data":
		b.puts++
		if b.failPut {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		b.documents["atelier-1"] = body
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "unexpected route", http.StatusTeapot)
	}
}

func (b *fakeBackend) putCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.puts
}

func newStore(t *testing.T, backend *fakeBackend) *remote.Store {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	store, err := remote.NewStore(srv.URL+"/", srv.Client())
	require.NoError(t, err)
	return store
}

func TestStore_FetchMissingIsNotFound(t *testing.T) {
	store := newStore(t, &fakeBackend{documents: map[string][]byte{}})

	_, err := store.Fetch(t.Context(), "atelier-1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_ReplaceThenFetch(t *testing.T) {
	backend := &fakeBackend{documents: map[string][]byte{}}
	store := newStore(t, backend)

	a, err := atelier.NewAtelier("atelier-1", atelier.NewProfile("Couture Awa", "1234", atelier.Subscription{}))
	require.NoError(t, err)
	require.NoError(t, store.Replace(t.Context(), a))
	assert.Equal(t, 1, backend.putCount())

	fetched, err := store.Fetch(t.Context(), "atelier-1")
	require.NoError(t, err)
	assert.Equal(t, "Couture Awa", fetched.Profile().Name())
}

func TestStore_ReplaceFailureIsReported(t *testing.T) {
	store := newStore(t, &fakeBackend{documents: map[string][]byte{}, failPut: true})

	a, err := atelier.NewAtelier("atelier-1", atelier.Profile{})
	require.NoError(t, err)

	err = store.Replace(t.Context(), a)
	var statusErr *remote.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, statusErr.Body, "database unavailable")
}

func TestStore_FetchUnexpectedStatus(t *testing.T) {
	store := newStore(t, &fakeBackend{documents: map[string][]byte{}})

	_, err := store.Fetch(t.Context(), "other")
	var statusErr *remote.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.Code)
}

func TestNewStore_RequiresBaseURL(t *testing.T) {
	_, err := remote.NewStore("  ", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
