package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const darkMagician = `{"id":46986414,"name":"Dark Magician","type":"Normal Monster","frameType":"normal",` +
	`"atk":2500,"def":2100,"level":7,"race":"Spellcaster","attribute":"DARK"}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLookup_Found(t *testing.T) {
	var gotID string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[` + darkMagician + `]}`))
	})

	raw, err := c.Lookup(context.Background(), "46986414")
	require.NoError(t, err)
	assert.Equal(t, "46986414", gotID)
	assert.JSONEq(t, darkMagician, string(raw))
}

func TestLookup_NotFoundStatus400(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"No card matching your query was found in the database."}`))
	})

	_, err := c.Lookup(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
	assert.Contains(t, err.Error(), "card 1")
}

func TestLookup_MalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.Lookup(context.Background(), "2")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "status 502")
}

func TestLookup_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url)
	defer c.Close()
	_, err := c.Lookup(context.Background(), "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requesting card 3")
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		notFound bool
		wantErr  bool
	}{
		{name: "first record returned", body: `{"data":[{"name":"a","type":"x"},{"name":"b","type":"y"}]}`},
		{name: "missing data key", body: `{"error":"nope"}`, notFound: true, wantErr: true},
		{name: "empty object", body: `{}`, notFound: true, wantErr: true},
		{name: "empty data list", body: `{"data":[]}`, wantErr: true},
		{name: "not json", body: `nope`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := parseResponse([]byte(tt.body))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.JSONEq(t, `{"name":"a","type":"x"}`, string(raw))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
		})
	}
}

func TestOffline(t *testing.T) {
	_, err := Offline{}.Lookup(context.Background(), "46986414")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOffline))
}

func TestDecode(t *testing.T) {
	c, err := Decode(json.RawMessage(darkMagician))
	require.NoError(t, err)
	assert.Equal(t, "Dark Magician", c.Name)
	assert.Equal(t, "Spellcaster", c.Race)
	assert.True(t, c.IsMonster())
	require.NotNil(t, c.Atk)
	assert.Equal(t, 2500, *c.Atk)
	require.NotNil(t, c.Level)
	assert.Equal(t, 7, *c.Level)
}

func TestDecode_LinkMonsterHasNoDefOrLevel(t *testing.T) {
	c, err := Decode(json.RawMessage(`{"name":"Knightmare Phoenix","type":"Link Monster","atk":1900,"race":"Fiend","attribute":"FIRE","linkval":2}`))
	require.NoError(t, err)
	assert.Nil(t, c.Def)
	assert.Nil(t, c.Level)
	assert.True(t, c.IsMonster())
}

func TestDecode_Spell(t *testing.T) {
	c, err := Decode(json.RawMessage(`{"name":"Pot of Greed","type":"Spell Card","race":"Normal"}`))
	require.NoError(t, err)
	assert.False(t, c.IsMonster())
}

func TestDecode_MissingRequiredKeys(t *testing.T) {
	_, err := Decode(json.RawMessage(`{"name":"Nameless"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'type' field")

	_, err = Decode(json.RawMessage(`{"type":"Effect Monster"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'name' field")

	_, err = Decode(json.RawMessage(`[1,2]`))
	require.Error(t, err)
}
