package mapper

import "strings"

// Options configures a Mapper. The zero value is not usable; New validates
// and rejects incomplete options with a ConfigurationError.
type Options struct {
	// GlossaryID is the GUID of the Atlas glossary to map.
	GlossaryID string

	// CatalogURI identifies the catalog produced by the glossary→catalog
	// direction.
	CatalogURI string

	// CatalogTitle maps language code to the catalog title. At least one
	// language is required.
	CatalogTitle map[string]string

	// CatalogDescription maps language code to the catalog description.
	CatalogDescription map[string]string

	// CatalogPublisher is the URI of the publishing agent.
	CatalogPublisher string

	// CatalogLanguages lists language authority IRIs for the catalog.
	CatalogLanguages []string

	// CatalogLicense is the catalog license IRI, if any.
	CatalogLicense string

	// DatasetURITemplate mints dataset identifiers for terms that have none
	// recorded. It must contain the "{guid}" placeholder.
	DatasetURITemplate string

	// DistributionURITemplate mints distribution identifiers. It must
	// contain the "{guid}" placeholder.
	DistributionURITemplate string

	// DefaultLanguage tags text that carries no language marker.
	// Defaults to "nb".
	DefaultLanguage string

	// AttrMapping renames term attributes; nil keeps the default names.
	AttrMapping AttrMapping
}

// DefaultDatasetURITemplate and DefaultDistributionURITemplate are applied
// when the corresponding template is left empty.
const (
	DefaultDatasetURITemplate      = "https://example.com/dataset/{guid}"
	DefaultDistributionURITemplate = "https://example.com/distribution/{guid}"
)

func (o *Options) validate() error {
	if o.GlossaryID == "" {
		return &ConfigurationError{Option: "GlossaryID", Reason: "required"}
	}
	if o.CatalogURI == "" {
		return &ConfigurationError{Option: "CatalogURI", Reason: "required"}
	}
	if len(o.CatalogTitle) == 0 {
		return &ConfigurationError{Option: "CatalogTitle", Reason: "at least one language required"}
	}
	if o.CatalogPublisher == "" {
		return &ConfigurationError{Option: "CatalogPublisher", Reason: "required"}
	}

	if o.DatasetURITemplate == "" {
		o.DatasetURITemplate = DefaultDatasetURITemplate
	}
	if o.DistributionURITemplate == "" {
		o.DistributionURITemplate = DefaultDistributionURITemplate
	}
	if !strings.Contains(o.DatasetURITemplate, GUIDPlaceholder) {
		return &ConfigurationError{Option: "DatasetURITemplate", Reason: "missing " + GUIDPlaceholder + " placeholder"}
	}
	if !strings.Contains(o.DistributionURITemplate, GUIDPlaceholder) {
		return &ConfigurationError{Option: "DistributionURITemplate", Reason: "missing " + GUIDPlaceholder + " placeholder"}
	}

	if o.DefaultLanguage == "" {
		o.DefaultLanguage = "nb"
	}
	return nil
}
