// Package catalog looks up card records in the YGOPRODeck card database.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the card info endpoint; records are looked up by ?id=
	DefaultBaseURL = "https://db.ygoprodeck.com/api/v7/cardinfo.php"
	// DefaultRequestDelay keeps lookups at or under 10 requests per second
	DefaultRequestDelay = 100 * time.Millisecond
)

var (
	// ErrNotFound means the catalog answered but had no data for the id
	ErrNotFound = errors.New("card not found in catalog")
	// ErrOffline is returned by the Offline client for every lookup
	ErrOffline = errors.New("catalog lookups disabled")
)

// Client resolves one card id to its raw catalog record
type Client interface {
	Lookup(ctx context.Context, id string) (json.RawMessage, error)
}

// HTTPClient queries the catalog over HTTP. No timeout is set beyond the
// transport defaults.
type HTTPClient struct {
	rc      *resty.Client
	baseURL string
}

// NewHTTPClient creates a client for baseURL (DefaultBaseURL if empty)
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		rc:      resty.New().SetHeader("Accept", "application/json"),
		baseURL: baseURL,
	}
}

// Close releases idle connections
func (c *HTTPClient) Close() error {
	return c.rc.Close()
}

// Lookup fetches the record for id. The catalog reports unknown ids with
// an error status and a JSON body lacking "data", so the body is inspected
// regardless of status.
func (c *HTTPClient) Lookup(ctx context.Context, id string) (json.RawMessage, error) {
	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("requesting card %s: %w", id, err)
	}

	raw, err := parseResponse([]byte(res.String()))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("card %s: %w", id, err)
		}
		return nil, fmt.Errorf("card %s (status %d): %w", id, res.StatusCode(), err)
	}
	return raw, nil
}

type response struct {
	Data  *[]json.RawMessage `json:"data"`
	Error string             `json:"error"`
}

// parseResponse extracts the first record from a cardinfo response body.
// A body without "data" is ErrNotFound; an empty "data" list is an error.
func parseResponse(body []byte) (json.RawMessage, error) {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("parsing catalog response: %w", err)
	}
	if r.Data == nil {
		return nil, ErrNotFound
	}
	if len(*r.Data) == 0 {
		return nil, fmt.Errorf("catalog response has empty data")
	}
	return (*r.Data)[0], nil
}

// Offline is a Client that never reaches the network
type Offline struct{}

// Lookup always fails with ErrOffline
func (Offline) Lookup(_ context.Context, id string) (json.RawMessage, error) {
	return nil, fmt.Errorf("card %s: %w", id, ErrOffline)
}
