package tvdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchFixture mirrors the shape of the search endpoint for a query
// matching a single show.
const searchFixture = `{
	"data": [{
		"objectID": "series-84021",
		"tvdb_id": "84021",
		"name": "Better Off Ted",
		"slug": "better-off-ted",
		"type": "series",
		"status": "Ended",
		"year": "2009",
		"first_air_time": "2009-03-18",
		"aliases": ["Better off Ted - Die Chaos AG", "Везунчик Тэд", "Mejor Ted"],
		"network": "ABC (US)",
		"overview": "As the head of research and development at Veridian Dynamics, Ted loves his job.",
		"image_url": "https://artworks.thetvdb.com/banners/posters/84021-2.jpg",
		"thumbnail": "https://artworks.thetvdb.com/banners/posters/84021-2_t.jpg",
		"country": "usa",
		"primary_language": "eng",
		"translations": {"eng": "Better Off Ted", "deu": "Better off Ted - Die Chaos AG"},
		"name_translated": "{\"deu\": \"Better off Ted - Die Chaos AG\"}",
		"remote_ids": [{"id": "tt1235547", "type": 2, "sourceName": "IMDB"}]
	}],
	"links": {"next": null}
}`

func TestSearchShowsEmptyName(t *testing.T) {
	// No server: an empty query must not touch the network.
	client := newTestClient(t, "http://example.invalid")

	results, err := client.SearchShows(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchShows(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", loginHandler(t, "test-token"))
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Better Off Ted", r.URL.Query().Get("query"))
		assert.Equal(t, "series", r.URL.Query().Get("type"))
		w.Write([]byte(searchFixture))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)

	results, err := client.SearchShows(context.Background(), "Better Off Ted")
	require.NoError(t, err)
	require.Len(t, results, 1)

	show := results[0]
	assert.Equal(t, StringID("84021"), show.Identifier)
	assert.Equal(t, "Better Off Ted", show.Name)
	assert.Equal(t, "better-off-ted", show.Slug)
	assert.Equal(t, StatusEnded, show.Status)
	assert.Equal(t, time.Date(2009, 3, 18, 0, 0, 0, 0, time.UTC), show.FirstAirTime.Time)
	assert.Equal(t, []string{"Better off Ted - Die Chaos AG", "Везунчик Тэд", "Mejor Ted"}, show.Aliases)
	assert.Equal(t, "ABC (US)", show.Network)
	require.NotNil(t, show.Overview)
	assert.Equal(t, "As the head of research and de", (*show.Overview)[:30])
	assert.Equal(t, "https://artworks.thetvdb.com/banners/posters/84021-2.jpg", show.ImageURL)

	// Translation maps decode whether sent as objects or string-encoded.
	assert.Equal(t, "Better Off Ted", show.Translations["eng"])
	assert.Equal(t, "Better off Ted - Die Chaos AG", show.NameTranslated["deu"])

	require.Len(t, show.RemoteIDs, 1)
	assert.Equal(t, "tt1235547", show.RemoteIDs[0].Identifier)
}

func TestSearchShowsEncodesQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", loginHandler(t, "test-token"))
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		// net/url decodes the escaped query back to the original.
		assert.Equal(t, "Mr. & Mrs. Smith", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)

	results, err := client.SearchShows(context.Background(), "Mr. & Mrs. Smith")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchShowsPaginated(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/login", loginHandler(t, "test-token"))
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{
					"objectID": "series-2", "tvdb_id": "2", "name": "Second", "slug": "second", "status": "Continuing",
				}},
				"links": map[string]any{"next": nil},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{
				"objectID": "series-1", "tvdb_id": "1", "name": "First", "slug": "first", "status": "Ended",
			}},
			"links": map[string]any{"next": server.URL + "/search?query=x&type=series&page=2"},
		})
	})

	client := newTestClient(t, server.URL)

	results, err := client.SearchShows(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Name)
	assert.Equal(t, "Second", results[1].Name)
}

func TestSearchResultValidation(t *testing.T) {
	_, err := decodeValue[SearchResult](json.RawMessage(`{"name": "No ID", "slug": "no-id"}`), "SearchResult")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "SearchResult", decodeErr.Type)
	assert.Equal(t, "tvdb_id", decodeErr.Field)
}
