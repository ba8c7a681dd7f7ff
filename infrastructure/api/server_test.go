package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiseek/wikiseek"
	"github.com/wikiseek/wikiseek/infrastructure/api/v1/dto"
)

const wikipediaPayload = `{
	"query": {
		"pages": {
			"201": {
				"pageid": 201,
				"title": "Sea of Okhotsk",
				"index": 1,
				"extract": "The Sea of Okhotsk is a marginal sea of the western Pacific Ocean.",
				"thumbnail": {"source": "https://upload.example/sea.png"},
				"pageprops": {"wikibase_item": "Q43693"},
				"coordinates": [{"lat": 55.0, "lon": 150.0}],
				"categories": [{"title": "Category:Seas"}]
			},
			"202": {
				"pageid": 202,
				"title": "Okhotsk",
				"index": 2,
				"extract": "Okhotsk is a town in Khabarovsk Krai."
			}
		}
	}
}`

const wikidataPayload = `{
	"entities": {
		"Q43693": {
			"descriptions": {
				"en": {"language": "en", "value": "marginal sea of the Pacific Ocean"}
			}
		}
	}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	wikipediaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(wikipediaPayload))
	}))
	t.Cleanup(wikipediaSrv.Close)

	wikidataSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(wikidataPayload))
	}))
	t.Cleanup(wikidataSrv.Close)

	client, err := wikiseek.New(
		wikiseek.WithWikipediaBaseURL(wikipediaSrv.URL),
		wikiseek.WithWikidataBaseURL(wikidataSrv.URL),
		wikiseek.WithDefaultLanguage("en"),
	)
	require.NoError(t, err)

	return NewServer("127.0.0.1:0", client)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "/api/v1/search?q=okhotsk")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "okhotsk", resp.Query)
	assert.Equal(t, "en", resp.Language.Code)
	require.Equal(t, 2, resp.Count)

	first := resp.Results[0]
	assert.Equal(t, "Sea of Okhotsk", first.Title)
	assert.Equal(t, "marginal sea of the Pacific Ocean", first.Description)
	assert.Contains(t, first.Message, "📖")
	assert.Contains(t, first.Message, "🔗")
	assert.Equal(t, "https://upload.example/sea.png", first.ImageURL)
	assert.Equal(t, "Q43693", first.WikidataID)
	require.NotNil(t, first.Coordinates)
	assert.InDelta(t, 55.0, first.Coordinates.Lat, 0.001)
	assert.Equal(t, []string{"Seas"}, first.Categories)

	assert.LessOrEqual(t, len(first.Description), 100)
	assert.LessOrEqual(t, len(first.Content), 300)
}

func TestSearchEndpointLanguagePrefix(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "/api/v1/search?q=de:+ochotskisches+meer")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "de", resp.Language.Code)
}

func TestSearchEndpointMissingQuery(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "/api/v1/search")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no_results", body["error"])
	assert.NotEmpty(t, body["message"])
	assert.NotEmpty(t, body["markdown"])
}

func TestSearchEndpointNoResultsMarkdown(t *testing.T) {
	emptySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"query": {"pages": {}}}`))
	}))
	t.Cleanup(emptySrv.Close)

	client, err := wikiseek.New(
		wikiseek.WithWikipediaBaseURL(emptySrv.URL),
		wikiseek.WithWikidataBaseURL(emptySrv.URL),
		wikiseek.WithDefaultLanguage("en"),
	)
	require.NoError(t, err)
	s := NewServer("127.0.0.1:0", client)

	rec := doRequest(t, s, "/api/v1/search?q=zzzzzz")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no_results", body["error"])
	assert.Contains(t, body["markdown"], "English")
}

func TestSearchEndpointUpstreamDown(t *testing.T) {
	downSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(downSrv.Close)

	client, err := wikiseek.New(
		wikiseek.WithWikipediaBaseURL(downSrv.URL),
		wikiseek.WithWikidataBaseURL(downSrv.URL),
	)
	require.NoError(t, err)
	s := NewServer("127.0.0.1:0", client)

	rec := doRequest(t, s, "/api/v1/search?q=okhotsk")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLanguagesEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "/api/v1/languages")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LanguagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Default)
	assert.NotEmpty(t, resp.Popular)
	assert.Greater(t, len(resp.Languages), len(resp.Popular))
}

func TestCorrelationIDEchoed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "fixed-id")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get("X-Correlation-ID"))

	rec = doRequest(t, s, "/health")
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
