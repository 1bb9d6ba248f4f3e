// Package search keeps a full-text index of artist profiles in Elasticsearch.
package search

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"tattoohub/internal/domain"
)

const (
	DefaultIndex = "artists"
	defaultSize  = 10
	maxSize      = 50
	callTimeout  = 3 * time.Second
)

// NewClient returns nil, nil when no addresses are configured.
func NewClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
}

// ArtistIndex is safe to use with a nil client: writes are skipped and
// searches return nothing.
type ArtistIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewArtistIndex(es *elasticsearch.Client, index string) *ArtistIndex {
	if index == "" {
		index = DefaultIndex
	}
	return &ArtistIndex{es: es, index: index}
}

func (a *ArtistIndex) Enabled() bool { return a != nil && a.es != nil }

type artistDoc struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user"`
	FullName     string   `json:"fullName"`
	Biography    string   `json:"biography"`
	TattooStyles []string `json:"tattooStyles"`
	Workplaces   []string `json:"workplaces"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Index stores the artist under its user id, so each user has one document.
func (a *ArtistIndex) Index(ctx context.Context, artist *domain.Artist) error {
	if !a.Enabled() {
		return nil
	}
	body, err := json.Marshal(artistDoc{
		ID:           artist.ID,
		UserID:       artist.UserID,
		FullName:     artist.FullName,
		Biography:    artist.Biography,
		TattooStyles: artist.TattooStyles,
		Workplaces:   artist.Workplaces,
		UpdatedAt:    artist.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req := esapi.IndexRequest{Index: a.index, DocumentID: artist.UserID, Body: bytes.NewReader(body), Refresh: "false"}
	res, err := req.Do(c, a.es)
	if err != nil {
		return fmt.Errorf("es index: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Delete removes the artist document of userID. A missing document is not an error.
func (a *ArtistIndex) Delete(ctx context.Context, userID string) error {
	if !a.Enabled() {
		return nil
	}
	c, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req := esapi.DeleteRequest{Index: a.index, DocumentID: userID}
	res, err := req.Do(c, a.es)
	if err != nil {
		return fmt.Errorf("es delete: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over name, biography and styles and returns
// artist ids in relevance order.
func (a *ArtistIndex) Search(ctx context.Context, q string, size int) ([]string, error) {
	if !a.Enabled() || strings.TrimSpace(q) == "" {
		return []string{}, nil
	}
	switch {
	case size <= 0:
		size = defaultSize
	case size > maxSize:
		size = maxSize
	}

	query, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"fullName^3", "tattooStyles^2", "biography", "workplaces"},
				"fuzziness": "AUTO",
			},
		},
		"size":    size,
		"_source": []string{"id"},
	})
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := a.es.Search(
		a.es.Search.WithContext(c),
		a.es.Search.WithIndex(a.index),
		a.es.Search.WithBody(bytes.NewReader(query)),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source artistDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("es search decode: %w", err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		if h.Source.ID != "" {
			ids = append(ids, h.Source.ID)
		}
	}
	return ids, nil
}
