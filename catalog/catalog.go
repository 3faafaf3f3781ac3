// Package catalog holds the DCAT entity graph: a Catalog owning Datasets,
// which in turn own Distributions. Values are plain in-memory records with a
// Turtle codec; they carry no persistence of their own.
package catalog

// Catalog is the root of a DCAT dataset catalog.
type Catalog struct {
	// Identifier is the catalog URI.
	Identifier string

	// Title and Description map language code to text. Absent entries are
	// omitted, never stored as empty strings.
	Title       map[string]string
	Description map[string]string

	// Publisher is the URI of the publishing agent.
	Publisher string

	// Languages lists language authority IRIs for the catalog.
	Languages []string

	// License is the catalog license IRI, if any.
	License string

	// Datasets are exclusively owned by this catalog.
	Datasets []*Dataset
}

// Dataset describes one dataset listed in a catalog.
type Dataset struct {
	// Identifier is the dataset URI.
	Identifier string

	Title       map[string]string
	Description map[string]string

	// Themes are theme concept IRIs.
	Themes []string

	// Keywords are free-text keywords.
	Keywords []string

	// AccessRights is an access-right authority IRI.
	AccessRights string

	// Frequency is an update-frequency authority IRI.
	Frequency string

	// Publisher is the dataset publisher URI, when it differs from the
	// catalog publisher.
	Publisher string

	// License is the dataset license IRI.
	License string

	// Spatial lists geographic coverage IRIs.
	Spatial []string

	// Temporal is the temporal coverage interval, if any.
	Temporal *PeriodOfTime

	// Contact is the dataset contact point, if any.
	Contact *Contact

	// Distributions are exclusively owned by this dataset.
	Distributions []*Distribution
}

// Distribution describes one downloadable or accessible form of a dataset.
type Distribution struct {
	// Identifier is the distribution URI.
	Identifier string

	Title       map[string]string
	Description map[string]string

	// Format is the file format of this distribution.
	Format string

	// License is the distribution license IRI.
	License string

	// AccessURL is the page or service giving access to the data.
	AccessURL string

	// DownloadURL is the direct download link, if any.
	DownloadURL string
}

// Contact is a dataset contact point. It is embedded in its dataset and has
// no identifier of its own.
type Contact struct {
	// Name maps language code to the contact organization name.
	Name map[string]string

	// Email is the contact email address, without a mailto: prefix.
	Email string
}

// PeriodOfTime is a temporal coverage interval. Dates are ISO 8601 dates
// (YYYY-MM-DD); either end may be empty for an open interval.
type PeriodOfTime struct {
	StartDate string
	EndDate   string
}
