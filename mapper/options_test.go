package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() Options {
	return Options{
		GlossaryID:       "glossary-1",
		CatalogURI:       "https://example.com/catalog",
		CatalogTitle:     map[string]string{"nb": "Katalog"},
		CatalogPublisher: "https://example.com/org/991825827",
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := validOptions()
	require.NoError(t, opts.validate())
	assert.Equal(t, "nb", opts.DefaultLanguage)
	assert.Contains(t, opts.DatasetURITemplate, GUIDPlaceholder)
	assert.Contains(t, opts.DistributionURITemplate, GUIDPlaceholder)
}

func TestOptionsValidateMissing(t *testing.T) {
	tests := []struct {
		option string
		mutate func(*Options)
	}{
		{"GlossaryID", func(o *Options) { o.GlossaryID = "" }},
		{"CatalogURI", func(o *Options) { o.CatalogURI = "" }},
		{"CatalogTitle", func(o *Options) { o.CatalogTitle = nil }},
		{"CatalogPublisher", func(o *Options) { o.CatalogPublisher = "" }},
		{"DatasetURITemplate", func(o *Options) { o.DatasetURITemplate = "https://example.com/fixed" }},
		{"DistributionURITemplate", func(o *Options) { o.DistributionURITemplate = "no-placeholder" }},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			err := opts.validate()
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestOptionsKeepsExplicitValues(t *testing.T) {
	opts := validOptions()
	opts.DefaultLanguage = "en"
	opts.DatasetURITemplate = "https://data.example.org/ds/{guid}"

	require.NoError(t, opts.validate())
	assert.Equal(t, "en", opts.DefaultLanguage)
	assert.Equal(t, "https://data.example.org/ds/{guid}", opts.DatasetURITemplate)
}
