package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/domain"
)

type recorded struct {
	method string
	path   string
	body   string
}

func fakeES(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*elasticsearch.Client, *[]recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recorded{method: r.Method, path: r.URL.Path, body: string(b)})
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, &reqs
}

func TestArtistIndex_NilClient(t *testing.T) {
	idx := NewArtistIndex(nil, "")
	ctx := context.Background()

	assert.False(t, idx.Enabled())
	assert.NoError(t, idx.Index(ctx, &domain.Artist{UserID: "u1"}))
	assert.NoError(t, idx.Delete(ctx, "u1"))

	ids, err := idx.Search(ctx, "koi", 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestArtistIndex_IndexAndDelete(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
		}
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})
	idx := NewArtistIndex(es, "artists_test")
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, &domain.Artist{ID: "a1", UserID: "u1", FullName: "Jane Ink", TattooStyles: []string{"koi"}}))
	require.NoError(t, idx.Delete(ctx, "u1"))

	require.Len(t, *reqs, 2)
	assert.Equal(t, "/artists_test/_doc/u1", (*reqs)[0].path)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte((*reqs)[0].body), &doc))
	assert.Equal(t, "Jane Ink", doc["fullName"])
	assert.Equal(t, http.MethodDelete, (*reqs)[1].method)
}

func TestArtistIndex_Search(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_source":{"id":"a2"}},{"_source":{"id":"a1"}}]}}`))
	})
	idx := NewArtistIndex(es, "")

	ids, err := idx.Search(context.Background(), "koi", 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1"}, ids)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "/artists/_search", (*reqs)[0].path)
	assert.True(t, strings.Contains((*reqs)[0].body, `"size":50`), "oversized requests are capped")
}

func TestArtistIndex_SearchSize(t *testing.T) {
	cases := map[string]struct {
		size int
		want string
	}{
		"default":  {0, `"size":10`},
		"negative": {-3, `"size":10`},
		"in range": {25, `"size":25`},
		"at cap":   {50, `"size":50`},
		"over cap": {100, `"size":50`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			es, reqs := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"hits":{"hits":[]}}`))
			})

			_, err := NewArtistIndex(es, "").Search(context.Background(), "koi", tc.size)
			require.NoError(t, err)

			require.Len(t, *reqs, 1)
			assert.Contains(t, (*reqs)[0].body, tc.want)
		})
	}
}
