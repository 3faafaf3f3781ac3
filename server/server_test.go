package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digdirlab/atlasdcat/glossary"
	"github.com/digdirlab/atlasdcat/mapper"
)

type fakeStore struct {
	terms   []*glossary.Term
	listErr error
}

func (s *fakeStore) ListTerms(_ context.Context, _ string) ([]*glossary.Term, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*glossary.Term, len(s.terms))
	copy(out, s.terms)
	return out, nil
}

func (s *fakeStore) UpsertTerms(_ context.Context, _ string, terms []*glossary.Term) ([]*glossary.Term, error) {
	s.terms = terms
	return terms, nil
}

func newTestServer(t *testing.T, store glossary.Store) *Server {
	t.Helper()
	m, err := mapper.New(store, mapper.Options{
		GlossaryID:       "glossary-1",
		CatalogURI:       "https://example.com/catalog",
		CatalogTitle:     map[string]string{"nb": "Katalog"},
		CatalogPublisher: "https://example.com/org/991825827",
	})
	require.NoError(t, err)
	return New(m)
}

func TestGetCatalog(t *testing.T) {
	s := newTestServer(t, &fakeStore{terms: []*glossary.Term{
		{GUID: "term-1", Name: "Datasett 1@nb", Status: glossary.StatusActive},
	}})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/turtle")
	assert.Contains(t, rec.Body.String(), "Datasett 1")
}

func TestGetCatalogStoreDown(t *testing.T) {
	s := newTestServer(t, &fakeStore{listErr: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCatalogSkipsBrokenTerms(t *testing.T) {
	s := newTestServer(t, &fakeStore{terms: []*glossary.Term{
		{GUID: "bad", Name: "Broken@nb", Status: glossary.StatusActive,
			Attributes: map[string]string{"temporalStartDate": "not-a-date"}},
		{GUID: "good", Name: "Fin@nb", Status: glossary.StatusActive},
	}})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code, "broken terms are skipped, not fatal")
	assert.Contains(t, rec.Body.String(), "Fin")
	assert.NotContains(t, rec.Body.String(), "Broken")
}

func TestPostCatalog(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, store)

	ttl := `
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dct: <http://purl.org/dc/terms/> .

<https://example.com/catalog> a dcat:Catalog ;
    dcat:dataset <https://example.com/dataset/1> .

<https://example.com/dataset/1> a dcat:Dataset ;
    dct:title "Importert datasett"@nb .
`
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/catalog", strings.NewReader(ttl)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, store.terms, 1)
	assert.Equal(t, "Importert datasett@nb", store.terms[0].Name)
	assert.Equal(t, glossary.StatusDraft, store.terms[0].Status)
}

func TestPostCatalogInvalidTurtle(t *testing.T) {
	s := newTestServer(t, &fakeStore{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/catalog", bytes.NewBufferString("not turtle at all <<<")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &fakeStore{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeStore{})

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/catalog", nil))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "atlasdcat_request_duration_seconds")
}

func TestSetMapper(t *testing.T) {
	s := newTestServer(t, &fakeStore{})

	m, err := mapper.New(&fakeStore{terms: []*glossary.Term{
		{GUID: "term-1", Name: "Etter reload@nb", Status: glossary.StatusActive},
	}}, mapper.Options{
		GlossaryID:       "glossary-2",
		CatalogURI:       "https://example.com/catalog",
		CatalogTitle:     map[string]string{"nb": "Katalog"},
		CatalogPublisher: "https://example.com/org/991825827",
	})
	require.NoError(t, err)
	s.SetMapper(m)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Contains(t, rec.Body.String(), "Etter reload")
}
