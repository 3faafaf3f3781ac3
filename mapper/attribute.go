package mapper

// Attribute names the glossary term attributes that carry DCAT fields. The
// glossary schema has no nested structure, so every DCAT relationship is
// flattened into one of these entries (see codec.go for the conventions).
type Attribute string

// Default attribute names, matching the Atlas term templates used by
// DCAT-AP-NO publishers.
const (
	// AttrIdentifier records the dataset URI minted for a term, so repeated
	// mapping passes reuse it instead of forking identifiers.
	AttrIdentifier Attribute = "identifier"

	AttrTheme         Attribute = "theme"
	AttrKeyword       Attribute = "keyword"
	AttrAccessRights  Attribute = "accessRights"
	AttrFrequency     Attribute = "frequency"
	AttrPublisher     Attribute = "publisher"
	AttrLicense       Attribute = "license"
	AttrSpatial       Attribute = "spatial"
	AttrTemporalStart Attribute = "temporalStartDate"
	AttrTemporalEnd   Attribute = "temporalEndDate"
	AttrContactName   Attribute = "contactName"
	AttrContactEmail  Attribute = "contactEmail"

	// AttrDistribution holds the term's distribution entries, one encoded
	// entry per line.
	AttrDistribution Attribute = "distribution"
)

// Distribution entry field keys (see encodeDistribution/decodeDistribution).
const (
	fieldIdentifier  = "identifier"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldFormat      = "format"
	fieldLicense     = "license"
	fieldAccessURL   = "accessURL"
	fieldDownloadURL = "downloadURL"
)

// AttrMapping optionally renames attributes, so organizations using
// localized Atlas term templates (e.g. "Tittel" for "title") can keep their
// existing glossaries. Unmapped attributes keep their default name.
type AttrMapping map[Attribute]string

// Name returns the concrete attribute name for attr under this mapping.
func (m AttrMapping) Name(attr Attribute) string {
	if name, ok := m[attr]; ok {
		return name
	}
	return string(attr)
}
