package dcat

// Namespace is the base IRI prefix for the DCAT vocabulary.
const Namespace = "http://www.w3.org/ns/dcat#"

// DCTNamespace is the base IRI prefix for Dublin Core Terms.
const DCTNamespace = "http://purl.org/dc/terms/"

// VCardNamespace is the base IRI prefix for the vCard ontology.
const VCardNamespace = "http://www.w3.org/2006/vcard/ns#"

// RDFType is the rdf:type predicate IRI.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Class IRIs for the DCAT entities this module produces.
const (
	// ClassCatalog represents a curated collection of datasets.
	ClassCatalog = Namespace + "Catalog"

	// ClassDataset represents a single dataset's metadata record.
	ClassDataset = Namespace + "Dataset"

	// ClassDistribution represents one accessible form of a dataset.
	ClassDistribution = Namespace + "Distribution"

	// ClassPeriodOfTime represents a temporal coverage interval.
	ClassPeriodOfTime = DCTNamespace + "PeriodOfTime"

	// ClassOrganization is the vCard class used for contact points.
	ClassOrganization = VCardNamespace + "Organization"
)

// DCAT property IRIs.
const (
	// PropDataset links a catalog to a dataset it lists.
	PropDataset = Namespace + "dataset"

	// PropDistribution links a dataset to a distribution.
	PropDistribution = Namespace + "distribution"

	// PropTheme links a dataset to a theme concept IRI.
	PropTheme = Namespace + "theme"

	// PropKeyword is a free-text keyword for a dataset.
	PropKeyword = Namespace + "keyword"

	// PropContactPoint links a dataset to its contact point.
	PropContactPoint = Namespace + "contactPoint"

	// PropAccessURL is the landing or access URL of a distribution.
	PropAccessURL = Namespace + "accessURL"

	// PropDownloadURL is the direct download URL of a distribution.
	PropDownloadURL = Namespace + "downloadURL"

	// PropStartDate is the start of a temporal coverage interval.
	PropStartDate = Namespace + "startDate"

	// PropEndDate is the end of a temporal coverage interval.
	PropEndDate = Namespace + "endDate"
)

// Dublin Core property IRIs.
const (
	// PropTitle is the title of a catalog, dataset, or distribution.
	PropTitle = DCTNamespace + "title"

	// PropDescription is the free-text description.
	PropDescription = DCTNamespace + "description"

	// PropPublisher links a resource to its publishing agent IRI.
	PropPublisher = DCTNamespace + "publisher"

	// PropLanguage links a resource to a language authority IRI.
	PropLanguage = DCTNamespace + "language"

	// PropLicense links a resource to its license IRI.
	PropLicense = DCTNamespace + "license"

	// PropAccessRights links a dataset to an access-right authority IRI.
	PropAccessRights = DCTNamespace + "accessRights"

	// PropFrequency links a dataset to an update-frequency authority IRI.
	PropFrequency = DCTNamespace + "accrualPeriodicity"

	// PropSpatial links a dataset to a geographic coverage IRI.
	PropSpatial = DCTNamespace + "spatial"

	// PropTemporal links a dataset to its temporal coverage node.
	PropTemporal = DCTNamespace + "temporal"

	// PropFormat is the file format of a distribution.
	PropFormat = DCTNamespace + "format"
)

// vCard property IRIs used for contact points.
const (
	// PropFormattedName is the display name of a contact.
	PropFormattedName = VCardNamespace + "fn"

	// PropHasEmail links a contact to a mailto: IRI.
	PropHasEmail = VCardNamespace + "hasEmail"
)
