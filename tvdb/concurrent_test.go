package tvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showPayload(id int64, name string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"slug": %q,
		"status": {"id": 2, "name": "Ended"},
		"aliases": [],
		"companies": [{"id": 124, "name": "ABC (US)"}]
	}`, id, name, strings.ToLower(name))
}

func TestShowInfoAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", loginHandler(t, "test-token"))
	mux.HandleFunc("/series/1/extended", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + showPayload(1, "First") + `}`))
	})
	mux.HandleFunc("/series/2/extended", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + showPayload(2, "Second") + `}`))
	})
	mux.HandleFunc("/series/3/extended", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + showPayload(3, "Third") + `}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)

	shows, err := client.ShowInfoAll(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, shows, 3)

	// Results keep the order of the requested identifiers.
	assert.Equal(t, "First", shows[0].Name)
	assert.Equal(t, "Second", shows[1].Name)
	assert.Equal(t, "Third", shows[2].Name)
}

func TestShowInfoAllEmpty(t *testing.T) {
	client := newTestClient(t, "http://example.invalid")

	shows, err := client.ShowInfoAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, shows)
}

func TestShowInfoAllPropagatesErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", loginHandler(t, "test-token"))
	mux.HandleFunc("/series/1/extended", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + showPayload(1, "First") + `}`))
	})
	mux.HandleFunc("/series/2/extended", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"Error": "Resource not found"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.ShowInfoAll(context.Background(), []int64{1, 2})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
