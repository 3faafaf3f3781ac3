package catalog

import (
	"fmt"
	"io"

	"github.com/knakk/rdf"

	"github.com/digdirlab/atlasdcat/vocabulary/dcat"
)

// WriteTurtle serializes the catalog graph as Turtle. The output parses back
// into an equal Catalog value via ParseTurtle for every field this package
// models; absent fields produce no triples.
func (c *Catalog) WriteTurtle(w io.Writer) error {
	b := &tripleBuilder{}

	cat, err := rdf.NewIRI(c.Identifier)
	if err != nil {
		return fmt.Errorf("catalog identifier: %w", err)
	}
	b.typeOf(cat, dcat.ClassCatalog)
	b.langLiterals(cat, dcat.PropTitle, c.Title)
	b.langLiterals(cat, dcat.PropDescription, c.Description)
	b.iri(cat, dcat.PropPublisher, c.Publisher)
	b.iri(cat, dcat.PropLicense, c.License)
	for _, lang := range c.Languages {
		b.iri(cat, dcat.PropLanguage, lang)
	}

	for i, ds := range c.Datasets {
		subj, err := rdf.NewIRI(ds.Identifier)
		if err != nil {
			return fmt.Errorf("dataset %d identifier: %w", i, err)
		}
		b.object(cat, dcat.PropDataset, subj)
		if err := b.dataset(subj, ds, i); err != nil {
			return err
		}
	}

	if b.err != nil {
		return b.err
	}

	enc := rdf.NewTripleEncoder(w, rdf.Turtle)
	if err := enc.EncodeAll(b.triples); err != nil {
		return fmt.Errorf("encode turtle: %w", err)
	}
	return enc.Close()
}

func (b *tripleBuilder) dataset(subj rdf.IRI, ds *Dataset, i int) error {
	b.typeOf(subj, dcat.ClassDataset)
	b.langLiterals(subj, dcat.PropTitle, ds.Title)
	b.langLiterals(subj, dcat.PropDescription, ds.Description)
	for _, theme := range ds.Themes {
		b.iri(subj, dcat.PropTheme, theme)
	}
	for _, kw := range ds.Keywords {
		b.literal(subj, dcat.PropKeyword, kw)
	}
	b.iri(subj, dcat.PropAccessRights, ds.AccessRights)
	b.iri(subj, dcat.PropFrequency, ds.Frequency)
	b.iri(subj, dcat.PropPublisher, ds.Publisher)
	b.iri(subj, dcat.PropLicense, ds.License)
	for _, loc := range ds.Spatial {
		b.iri(subj, dcat.PropSpatial, loc)
	}

	if ds.Temporal != nil {
		node, err := rdf.NewBlank(fmt.Sprintf("temporal%d", i))
		if err != nil {
			return fmt.Errorf("temporal node: %w", err)
		}
		b.object(subj, dcat.PropTemporal, node)
		b.typeOf(node, dcat.ClassPeriodOfTime)
		b.literal(node, dcat.PropStartDate, ds.Temporal.StartDate)
		b.literal(node, dcat.PropEndDate, ds.Temporal.EndDate)
	}

	if ds.Contact != nil {
		node, err := rdf.NewBlank(fmt.Sprintf("contact%d", i))
		if err != nil {
			return fmt.Errorf("contact node: %w", err)
		}
		b.object(subj, dcat.PropContactPoint, node)
		b.typeOf(node, dcat.ClassOrganization)
		b.langLiterals(node, dcat.PropFormattedName, ds.Contact.Name)
		b.iri(node, dcat.PropHasEmail, mailto(ds.Contact.Email))
	}

	for j, dist := range ds.Distributions {
		distSubj, err := rdf.NewIRI(dist.Identifier)
		if err != nil {
			return fmt.Errorf("dataset %d distribution %d identifier: %w", i, j, err)
		}
		b.object(subj, dcat.PropDistribution, distSubj)
		b.typeOf(distSubj, dcat.ClassDistribution)
		b.langLiterals(distSubj, dcat.PropTitle, dist.Title)
		b.langLiterals(distSubj, dcat.PropDescription, dist.Description)
		b.literal(distSubj, dcat.PropFormat, dist.Format)
		b.iri(distSubj, dcat.PropLicense, dist.License)
		b.iri(distSubj, dcat.PropAccessURL, dist.AccessURL)
		b.iri(distSubj, dcat.PropDownloadURL, dist.DownloadURL)
	}

	return nil
}

func mailto(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// tripleBuilder accumulates triples and captures the first construction
// error so call sites stay flat.
type tripleBuilder struct {
	triples []rdf.Triple
	err     error
}

func (b *tripleBuilder) add(subj rdf.Subject, pred string, obj rdf.Object) {
	if b.err != nil {
		return
	}
	p, err := rdf.NewIRI(pred)
	if err != nil {
		b.err = fmt.Errorf("predicate %s: %w", pred, err)
		return
	}
	b.triples = append(b.triples, rdf.Triple{Subj: subj, Pred: p, Obj: obj})
}

func (b *tripleBuilder) object(subj rdf.Subject, pred string, obj rdf.Object) {
	b.add(subj, pred, obj)
}

func (b *tripleBuilder) typeOf(subj rdf.Subject, class string) {
	b.iri(subj, dcat.RDFType, class)
}

// iri emits an IRI-valued triple, skipping empty values.
func (b *tripleBuilder) iri(subj rdf.Subject, pred, value string) {
	if b.err != nil || value == "" {
		return
	}
	obj, err := rdf.NewIRI(value)
	if err != nil {
		b.err = fmt.Errorf("object IRI %s: %w", value, err)
		return
	}
	b.add(subj, pred, obj)
}

// literal emits a plain literal triple, skipping empty values.
func (b *tripleBuilder) literal(subj rdf.Subject, pred, value string) {
	if b.err != nil || value == "" {
		return
	}
	obj, err := rdf.NewLiteral(value)
	if err != nil {
		b.err = fmt.Errorf("literal %q: %w", value, err)
		return
	}
	b.add(subj, pred, obj)
}

// langLiterals emits one language-tagged literal per map entry.
func (b *tripleBuilder) langLiterals(subj rdf.Subject, pred string, values map[string]string) {
	for lang, text := range values {
		if b.err != nil {
			return
		}
		if text == "" {
			continue
		}
		obj, err := rdf.NewLangLiteral(text, lang)
		if err != nil {
			b.err = fmt.Errorf("literal %q@%s: %w", text, lang, err)
			return
		}
		b.add(subj, pred, obj)
	}
}
