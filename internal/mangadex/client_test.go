package mangadex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mgd/internal/domain"
	"mgd/internal/sharedhttp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		client:  srv.Client(),
		baseURL: srv.URL,
	}
}

func TestAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manga/99b8eaeb-9041-4bfd-8eb7-d72addc88eb7/aggregate", r.URL.Path)
		assert.Equal(t, []string{"176cb6b9-16e0-465b-b129-de55a2f2f366"}, r.URL.Query()["group[]"])
		assert.Equal(t, []string{"en"}, r.URL.Query()["translatedLanguage[]"])

		w.Write([]byte(`{
			"result": "ok",
			"volumes": {
				"1": {
					"volume": "1",
					"count": 2,
					"chapters": {
						"1": {"chapter": "1", "id": "2d178e99-c6ed-4f05-a22b-627d10b1bbf5", "others": [], "count": 1},
						"2": {"chapter": "2", "id": "4c9b35bb-e02f-4e3f-9298-a7c33a48f1d1", "others": [], "count": 1}
					}
				},
				"none": {
					"volume": "none",
					"count": 1,
					"chapters": {
						"none": {"chapter": "none", "id": "29272df6-67ab-4b31-a584-9637d51f4370", "others": [], "count": 1}
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	volumes, err := client.Aggregate(context.Background(), AggregateQuery{
		MangaID:   "99b8eaeb-9041-4bfd-8eb7-d72addc88eb7",
		Groups:    []string{"176cb6b9-16e0-465b-b129-de55a2f2f366"},
		Languages: []string{"en"},
	})
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	total := 0
	unnumbered := 0
	for _, volume := range volumes {
		total += len(volume.Chapters)
		for _, chapter := range volume.Chapters {
			if _, ok := chapter.Number.Value(); !ok {
				unnumbered++
			}
		}
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, unnumbered)
}

func TestAggregateEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `{"result": "ok", "volumes": []}`},
		{name: "empty mapping", body: `{"result": "ok", "volumes": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			volumes, err := newTestClient(srv).Aggregate(context.Background(), AggregateQuery{MangaID: "x"})
			require.NoError(t, err)
			assert.Empty(t, volumes)
		})
	}
}

func TestAggregateMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing volumes", body: `{"result": "ok"}`},
		{name: "null volumes", body: `{"result": "ok", "volumes": null}`},
		{name: "string volumes", body: `{"result": "ok", "volumes": "nope"}`},
		{name: "populated array", body: `{"result": "ok", "volumes": [1, 2]}`},
		{name: "numeric volume", body: `{"result": "ok", "volumes": {"1": {"volume": 1}}}`},
		{name: "not json", body: `result: ok`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).Aggregate(context.Background(), AggregateQuery{MangaID: "x"})

			var decodeErr *domain.DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestAggregateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Aggregate(context.Background(), AggregateQuery{MangaID: "x"})

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/at-home/server/29272df6-67ab-4b31-a584-9637d51f4370", r.URL.Path)
		assert.Equal(t, sharedhttp.UserAgent, r.Header.Get("User-Agent"))

		w.Write([]byte(`{
			"result": "ok",
			"baseUrl": "https://uploads.mangadex.org",
			"chapter": {
				"hash": "3303dd03ac8d27452cce3f2a882e94b2",
				"data": ["1-orig.png", "2-orig.png"],
				"dataSaver": ["1-small.jpg", "2-small.jpg"]
			}
		}`))
	}))
	defer srv.Close()

	manifest, err := newTestClient(srv).Manifest(context.Background(), "29272df6-67ab-4b31-a584-9637d51f4370")
	require.NoError(t, err)

	assert.Equal(t, "https://uploads.mangadex.org", manifest.BaseURL)
	assert.Equal(t, "3303dd03ac8d27452cce3f2a882e94b2", manifest.Hash)
	assert.Equal(t, []string{"1-orig.png", "2-orig.png"}, manifest.Data)
	assert.Equal(t, []string{"1-small.jpg", "2-small.jpg"}, manifest.DataSaver)
}

func TestManifestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Manifest(context.Background(), "missing")

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}
