package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCatalog() *Catalog {
	return &Catalog{
		Identifier:  "https://example.com/catalog",
		Title:       map[string]string{"nb": "Katalog", "en": "Catalogue"},
		Description: map[string]string{"nb": "En katalog"},
		Publisher:   "https://example.com/org/991825827",
		Languages:   []string{"http://publications.europa.eu/resource/authority/language/NOB"},
		License:     "http://publications.europa.eu/resource/authority/licence/NLOD20",
		Datasets: []*Dataset{{
			Identifier:   "https://example.com/dataset/1",
			Title:        map[string]string{"nb": "Datasett 1", "en": "Dataset 1"},
			Description:  map[string]string{"nb": "Beskrivelse"},
			Themes:       []string{"https://psi.norge.no/los/tema/kultur"},
			Keywords:     []string{"kultur", "fritid"},
			AccessRights: "http://publications.europa.eu/resource/authority/access-right/PUBLIC",
			Frequency:    "http://publications.europa.eu/resource/authority/frequency/ANNUAL",
			Publisher:    "https://example.com/org/991825827",
			License:      "http://publications.europa.eu/resource/authority/licence/NLOD20",
			Spatial:      []string{"https://data.geonorge.no/administrativeEnheter/fylke/id/173159"},
			Temporal:     &PeriodOfTime{StartDate: "2020-01-01", EndDate: "2020-12-31"},
			Contact: &Contact{
				Name:  map[string]string{"nb": "Digitaliseringsdirektoratet"},
				Email: "post@example.com",
			},
			Distributions: []*Distribution{{
				Identifier:  "https://example.com/distribution/1",
				Title:       map[string]string{"nb": "CSV-fil"},
				Format:      "CSV",
				License:     "http://publications.europa.eu/resource/authority/licence/NLOD20",
				AccessURL:   "https://example.com/data",
				DownloadURL: "https://example.com/data.csv",
			}},
		}},
	}
}

func TestWriteTurtleParseTurtleRoundTrip(t *testing.T) {
	in := fullCatalog()

	var buf bytes.Buffer
	require.NoError(t, in.WriteTurtle(&buf))

	out, err := ParseTurtle(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteTurtleMinimalCatalog(t *testing.T) {
	in := &Catalog{
		Identifier: "https://example.com/catalog",
		Title:      map[string]string{"nb": "Katalog"},
		Publisher:  "https://example.com/org/991825827",
	}

	var buf bytes.Buffer
	require.NoError(t, in.WriteTurtle(&buf))

	out, err := ParseTurtle(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteTurtleContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fullCatalog().WriteTurtle(&buf))

	ttl := buf.String()
	assert.Contains(t, ttl, "https://example.com/catalog")
	assert.Contains(t, ttl, "Datasett 1")
	assert.Contains(t, ttl, "@nb")
	assert.Contains(t, ttl, "mailto:post@example.com")
}

func TestWriteTurtleRejectsInvalidIdentifier(t *testing.T) {
	c := &Catalog{Identifier: ""}
	assert.Error(t, c.WriteTurtle(&bytes.Buffer{}))
}

func TestParseTurtleNoCatalog(t *testing.T) {
	ttl := `<https://example.com/dataset/1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/dcat#Dataset> .`
	_, err := ParseTurtle(strings.NewReader(ttl))
	assert.Error(t, err)
}

func TestParseTurtleHandDocument(t *testing.T) {
	ttl := `
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dct: <http://purl.org/dc/terms/> .

<https://example.com/catalog> a dcat:Catalog ;
    dct:title "Katalog"@nb ;
    dct:publisher <https://example.com/org/991825827> ;
    dcat:dataset <https://example.com/dataset/1> .

<https://example.com/dataset/1> a dcat:Dataset ;
    dct:title "Datasett 1"@nb ;
    dcat:keyword "kultur", "fritid" .
`
	cat, err := ParseTurtle(strings.NewReader(ttl))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/catalog", cat.Identifier)
	assert.Equal(t, map[string]string{"nb": "Katalog"}, cat.Title)
	require.Len(t, cat.Datasets, 1)
	assert.Equal(t, map[string]string{"nb": "Datasett 1"}, cat.Datasets[0].Title)
	assert.ElementsMatch(t, []string{"kultur", "fritid"}, cat.Datasets[0].Keywords)
}
