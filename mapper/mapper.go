// Package mapper transforms Apache Atlas glossary terms into a DCAT dataset
// catalog and back. The glossary side is a flat attribute bag per term; the
// catalog side is the entity graph in the catalog package. All structure the
// bag cannot express is carried through the flattening conventions in
// codec.go.
//
// A Mapper holds an in-memory snapshot of one glossary's terms. Fetch
// populates it, the two Map directions read or mutate it, and Save persists
// it. The Mapper is not safe for concurrent use; callers owning a shared
// instance serialize access themselves.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/digdirlab/atlasdcat/catalog"
	"github.com/digdirlab/atlasdcat/glossary"
)

// Mapper is the bidirectional transformation engine for one glossary.
type Mapper struct {
	store   glossary.Store
	opts    Options
	terms   []*glossary.Term
	fetched bool
}

// New validates opts and returns a Mapper over the given store.
func New(store glossary.Store, opts Options) (*Mapper, error) {
	if store == nil {
		return nil, &ConfigurationError{Option: "store", Reason: "required"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Mapper{store: store, opts: opts}, nil
}

// Fetch replaces the term snapshot with the store's current view.
func (m *Mapper) Fetch(ctx context.Context) error {
	terms, err := m.store.ListTerms(ctx, m.opts.GlossaryID)
	if err != nil {
		return err
	}
	m.terms = terms
	m.fetched = true
	return nil
}

// Save pushes the snapshot back through the store and adopts the confirmed
// terms, so GUIDs assigned to newly created terms land in the snapshot. On a
// partial failure the snapshot is kept as-is: the store has already written
// assigned GUIDs into the succeeded terms, so fixing the failed terms and
// calling Save again updates rather than re-creates them.
func (m *Mapper) Save(ctx context.Context) error {
	if !m.fetched {
		return ErrNotFetched
	}
	confirmed, err := m.store.UpsertTerms(ctx, m.opts.GlossaryID, m.terms)
	if err != nil {
		return err
	}
	m.terms = confirmed
	return nil
}

// Terms exposes the current snapshot. Callers must not mutate it; use the
// Map directions instead.
func (m *Mapper) Terms() []*glossary.Term {
	return m.terms
}

func (m *Mapper) attr(a Attribute) string {
	return m.opts.AttrMapping.Name(a)
}

// MapGlossaryTermsToDatasetCatalog maps the snapshot to a catalog, one
// dataset per eligible term. Terms with malformed attribute data are skipped
// and reported as joined MappingErrors; the returned catalog is valid either
// way. Minted identifiers are recorded back onto the snapshot terms, so a
// following Save makes the identifiers durable.
func (m *Mapper) MapGlossaryTermsToDatasetCatalog() (*catalog.Catalog, error) {
	if !m.fetched {
		return nil, ErrNotFetched
	}

	cat := &catalog.Catalog{
		Identifier:  m.opts.CatalogURI,
		Title:       m.opts.CatalogTitle,
		Description: m.opts.CatalogDescription,
		Publisher:   m.opts.CatalogPublisher,
		Languages:   m.opts.CatalogLanguages,
		License:     m.opts.CatalogLicense,
	}

	var errs []error
	for _, term := range m.terms {
		if !term.Status.Eligible() {
			continue
		}
		ds, err := m.termToDataset(term)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cat.Datasets = append(cat.Datasets, ds)
	}
	return cat, errors.Join(errs...)
}

func (m *Mapper) termToDataset(term *glossary.Term) (*catalog.Dataset, error) {
	if term.Attributes == nil {
		term.Attributes = make(map[string]string)
	}

	ds := &catalog.Dataset{
		Identifier:   ensureIdentifier(term.Attributes, m.attr(AttrIdentifier), m.opts.DatasetURITemplate),
		Title:        parseText(term.Name, m.opts.DefaultLanguage),
		Description:  parseText(term.LongDescription, m.opts.DefaultLanguage),
		Themes:       splitList(term.Attr(m.attr(AttrTheme))),
		Keywords:     splitList(term.Attr(m.attr(AttrKeyword))),
		AccessRights: term.Attr(m.attr(AttrAccessRights)),
		Frequency:    term.Attr(m.attr(AttrFrequency)),
		Publisher:    term.Attr(m.attr(AttrPublisher)),
		License:      term.Attr(m.attr(AttrLicense)),
		Spatial:      splitList(term.Attr(m.attr(AttrSpatial))),
	}

	temporal, err := m.termTemporal(term)
	if err != nil {
		return nil, err
	}
	ds.Temporal = temporal

	name := term.Attr(m.attr(AttrContactName))
	email := term.Attr(m.attr(AttrContactEmail))
	if name != "" && email != "" {
		ds.Contact = &catalog.Contact{
			Name:  parseText(name, m.opts.DefaultLanguage),
			Email: email,
		}
	}

	dists, err := m.termDistributions(term)
	if err != nil {
		return nil, err
	}
	ds.Distributions = dists

	return ds, nil
}

func (m *Mapper) termTemporal(term *glossary.Term) (*catalog.PeriodOfTime, error) {
	start := term.Attr(m.attr(AttrTemporalStart))
	end := term.Attr(m.attr(AttrTemporalEnd))
	if start == "" && end == "" {
		return nil, nil
	}
	for _, d := range []struct {
		attr Attribute
		date string
	}{{AttrTemporalStart, start}, {AttrTemporalEnd, end}} {
		if d.date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.date); err != nil {
			return nil, &MappingError{
				TermGUID:      term.GUID,
				QualifiedName: term.QualifiedName,
				Attribute:     m.attr(d.attr),
				Reason:        fmt.Sprintf("invalid date %q, want YYYY-MM-DD", d.date),
			}
		}
	}
	return &catalog.PeriodOfTime{StartDate: start, EndDate: end}, nil
}

// termDistributions decodes the term's distribution entries. Entries missing
// an identifier get one minted and re-recorded, so the attribute value on the
// term stays in step with the catalog it produced.
func (m *Mapper) termDistributions(term *glossary.Term) ([]*catalog.Distribution, error) {
	raw := term.Attr(m.attr(AttrDistribution))
	if raw == "" {
		return nil, nil
	}

	entries := splitEntries(raw)
	dists := make([]*catalog.Distribution, 0, len(entries))
	encoded := make([]string, 0, len(entries))
	for _, entry := range entries {
		fields, err := decodeFields(entry)
		if err != nil {
			return nil, &MappingError{
				TermGUID:      term.GUID,
				QualifiedName: term.QualifiedName,
				Attribute:     m.attr(AttrDistribution),
				Reason:        err.Error(),
			}
		}
		ensureIdentifier(fields, fieldIdentifier, m.opts.DistributionURITemplate)

		dists = append(dists, &catalog.Distribution{
			Identifier:  fields[fieldIdentifier],
			Title:       parseText(fields[fieldTitle], m.opts.DefaultLanguage),
			Description: parseText(fields[fieldDescription], m.opts.DefaultLanguage),
			Format:      fields[fieldFormat],
			License:     fields[fieldLicense],
			AccessURL:   fields[fieldAccessURL],
			DownloadURL: fields[fieldDownloadURL],
		})
		encoded = append(encoded, encodeFields(fields))
	}
	term.SetAttr(m.attr(AttrDistribution), joinEntries(encoded))
	return dists, nil
}

// MapDatasetCatalogToGlossaryTerms folds a catalog into the snapshot.
// Datasets whose identifier matches a term's recorded identifier attribute
// update that term in place; the rest are appended as new draft terms with a
// name-derived qualified name unique within the snapshot. Datasets and
// distributions without an identifier get one minted into the given catalog
// in place, so the caller's value and the recorded attributes agree.
// Nothing is persisted; call Save for that.
func (m *Mapper) MapDatasetCatalogToGlossaryTerms(cat *catalog.Catalog) error {
	if !m.fetched {
		return ErrNotFetched
	}

	idKey := m.attr(AttrIdentifier)
	byIdentifier := make(map[string]*glossary.Term, len(m.terms))
	taken := make(map[string]bool, len(m.terms))
	for _, term := range m.terms {
		if id := term.Attr(idKey); id != "" {
			byIdentifier[id] = term
		}
		taken[term.QualifiedName] = true
	}

	for _, ds := range cat.Datasets {
		if ds.Identifier == "" {
			ds.Identifier = mintIdentifier(m.opts.DatasetURITemplate)
		}
		term := byIdentifier[ds.Identifier]
		if term == nil {
			term = &glossary.Term{
				Status:        glossary.StatusDraft,
				QualifiedName: m.uniqueQualifiedName(ds, taken),
			}
			taken[term.QualifiedName] = true
			byIdentifier[ds.Identifier] = term
			m.terms = append(m.terms, term)
		}
		m.datasetToTerm(ds, term)
	}
	return nil
}

func (m *Mapper) datasetToTerm(ds *catalog.Dataset, term *glossary.Term) {
	term.Name = flattenText(ds.Title)
	term.LongDescription = flattenText(ds.Description)

	term.SetAttr(m.attr(AttrIdentifier), ds.Identifier)
	term.SetAttr(m.attr(AttrTheme), joinList(ds.Themes))
	term.SetAttr(m.attr(AttrKeyword), joinList(ds.Keywords))
	term.SetAttr(m.attr(AttrAccessRights), ds.AccessRights)
	term.SetAttr(m.attr(AttrFrequency), ds.Frequency)
	term.SetAttr(m.attr(AttrPublisher), ds.Publisher)
	term.SetAttr(m.attr(AttrLicense), ds.License)
	term.SetAttr(m.attr(AttrSpatial), joinList(ds.Spatial))

	var start, end string
	if ds.Temporal != nil {
		start, end = ds.Temporal.StartDate, ds.Temporal.EndDate
	}
	term.SetAttr(m.attr(AttrTemporalStart), start)
	term.SetAttr(m.attr(AttrTemporalEnd), end)

	var contactName, contactEmail string
	if ds.Contact != nil {
		contactName = flattenText(ds.Contact.Name)
		contactEmail = ds.Contact.Email
	}
	term.SetAttr(m.attr(AttrContactName), contactName)
	term.SetAttr(m.attr(AttrContactEmail), contactEmail)

	entries := make([]string, 0, len(ds.Distributions))
	for _, dist := range ds.Distributions {
		if dist.Identifier == "" {
			dist.Identifier = mintIdentifier(m.opts.DistributionURITemplate)
		}
		entries = append(entries, encodeFields(map[string]string{
			fieldIdentifier:  dist.Identifier,
			fieldTitle:       flattenText(dist.Title),
			fieldDescription: flattenText(dist.Description),
			fieldFormat:      dist.Format,
			fieldLicense:     dist.License,
			fieldAccessURL:   dist.AccessURL,
			fieldDownloadURL: dist.DownloadURL,
		}))
	}
	term.SetAttr(m.attr(AttrDistribution), joinEntries(entries))
}

// uniqueQualifiedName derives "slug@glossaryID" from the dataset title,
// numbering the slug when taken.
func (m *Mapper) uniqueQualifiedName(ds *catalog.Dataset, taken map[string]bool) string {
	slug := slugify(preferredText(ds.Title, m.opts.DefaultLanguage))
	if slug == "" {
		slug = "dataset"
	}
	qn := slug + "@" + m.opts.GlossaryID
	for n := 2; taken[qn]; n++ {
		qn = fmt.Sprintf("%s-%d@%s", slug, n, m.opts.GlossaryID)
	}
	return qn
}

// preferredText picks the defaultLang variant, falling back to the first
// language in sorted order.
func preferredText(m map[string]string, defaultLang string) string {
	if text := m[defaultLang]; text != "" {
		return text
	}
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if m[lang] != "" {
			return m[lang]
		}
	}
	return ""
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
