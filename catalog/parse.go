package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"

	"github.com/digdirlab/atlasdcat/vocabulary/dcat"
)

// ParseTurtle reads a Turtle document and rebuilds the Catalog graph rooted
// at the (single) subject typed dcat:Catalog. Datasets and distributions are
// kept in document order of their linking triples.
func ParseTurtle(r io.Reader) (*Catalog, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decode turtle: %w", err)
	}

	g := newGraph(triples)

	root := g.subjectOfType(dcat.ClassCatalog)
	if root == nil {
		return nil, fmt.Errorf("no dcat:Catalog subject in document")
	}

	c := &Catalog{
		Identifier:  root.iriValue(),
		Title:       root.langMap(dcat.PropTitle),
		Description: root.langMap(dcat.PropDescription),
		Publisher:   root.firstIRI(dcat.PropPublisher),
		License:     root.firstIRI(dcat.PropLicense),
		Languages:   root.allIRIs(dcat.PropLanguage),
	}

	for _, ref := range root.all(dcat.PropDataset) {
		node := g.resolve(ref)
		if node == nil {
			continue
		}
		c.Datasets = append(c.Datasets, parseDataset(g, node))
	}

	return c, nil
}

func parseDataset(g *graph, n *node) *Dataset {
	ds := &Dataset{
		Identifier:   n.iriValue(),
		Title:        n.langMap(dcat.PropTitle),
		Description:  n.langMap(dcat.PropDescription),
		Themes:       n.allIRIs(dcat.PropTheme),
		Keywords:     n.allLiterals(dcat.PropKeyword),
		AccessRights: n.firstIRI(dcat.PropAccessRights),
		Frequency:    n.firstIRI(dcat.PropFrequency),
		Publisher:    n.firstIRI(dcat.PropPublisher),
		License:      n.firstIRI(dcat.PropLicense),
		Spatial:      n.allIRIs(dcat.PropSpatial),
	}

	if ref := n.first(dcat.PropTemporal); ref != nil {
		if t := g.resolve(ref); t != nil {
			ds.Temporal = &PeriodOfTime{
				StartDate: t.firstLiteral(dcat.PropStartDate),
				EndDate:   t.firstLiteral(dcat.PropEndDate),
			}
		}
	}

	if ref := n.first(dcat.PropContactPoint); ref != nil {
		if ct := g.resolve(ref); ct != nil {
			ds.Contact = &Contact{
				Name:  ct.langMap(dcat.PropFormattedName),
				Email: strings.TrimPrefix(ct.firstIRI(dcat.PropHasEmail), "mailto:"),
			}
		}
	}

	for _, ref := range n.all(dcat.PropDistribution) {
		dn := g.resolve(ref)
		if dn == nil {
			continue
		}
		ds.Distributions = append(ds.Distributions, &Distribution{
			Identifier:  dn.iriValue(),
			Title:       dn.langMap(dcat.PropTitle),
			Description: dn.langMap(dcat.PropDescription),
			Format:      dn.firstLiteral(dcat.PropFormat),
			License:     dn.firstIRI(dcat.PropLicense),
			AccessURL:   dn.firstIRI(dcat.PropAccessURL),
			DownloadURL: dn.firstIRI(dcat.PropDownloadURL),
		})
	}

	return ds
}

// graph indexes triples by subject for property lookups.
type graph struct {
	nodes map[string]*node
	order []*node
}

// node is one subject and its outgoing properties in document order.
type node struct {
	subject rdf.Subject
	preds   map[string][]rdf.Object
}

func newGraph(triples []rdf.Triple) *graph {
	g := &graph{nodes: make(map[string]*node)}
	for _, t := range triples {
		key := t.Subj.Serialize(rdf.NTriples)
		n, ok := g.nodes[key]
		if !ok {
			n = &node{subject: t.Subj, preds: make(map[string][]rdf.Object)}
			g.nodes[key] = n
			g.order = append(g.order, n)
		}
		pred := t.Pred.String()
		n.preds[pred] = append(n.preds[pred], t.Obj)
	}
	return g
}

// subjectOfType returns the first subject carrying rdf:type class.
func (g *graph) subjectOfType(class string) *node {
	for _, n := range g.order {
		for _, obj := range n.preds[dcat.RDFType] {
			if obj.Type() == rdf.TermIRI && obj.String() == class {
				return n
			}
		}
	}
	return nil
}

// resolve follows an object reference (IRI or blank node) to its node.
func (g *graph) resolve(obj rdf.Object) *node {
	return g.nodes[obj.Serialize(rdf.NTriples)]
}

// iriValue returns the subject IRI, or "" for blank nodes.
func (n *node) iriValue() string {
	if n.subject.Type() == rdf.TermIRI {
		return n.subject.String()
	}
	return ""
}

func (n *node) all(pred string) []rdf.Object {
	return n.preds[pred]
}

func (n *node) first(pred string) rdf.Object {
	if objs := n.preds[pred]; len(objs) > 0 {
		return objs[0]
	}
	return nil
}

func (n *node) firstIRI(pred string) string {
	for _, obj := range n.preds[pred] {
		if obj.Type() == rdf.TermIRI {
			return obj.String()
		}
	}
	return ""
}

func (n *node) firstLiteral(pred string) string {
	for _, obj := range n.preds[pred] {
		if obj.Type() == rdf.TermLiteral {
			return obj.String()
		}
	}
	return ""
}

func (n *node) allIRIs(pred string) []string {
	var out []string
	for _, obj := range n.preds[pred] {
		if obj.Type() == rdf.TermIRI {
			out = append(out, obj.String())
		}
	}
	return out
}

func (n *node) allLiterals(pred string) []string {
	var out []string
	for _, obj := range n.preds[pred] {
		if obj.Type() == rdf.TermLiteral {
			out = append(out, obj.String())
		}
	}
	return out
}

// langMap collects language-tagged literal values keyed by language.
func (n *node) langMap(pred string) map[string]string {
	var m map[string]string
	for _, obj := range n.preds[pred] {
		if obj.Type() != rdf.TermLiteral {
			continue
		}
		lit, ok := obj.(rdf.Literal)
		if !ok {
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[lit.Lang()] = lit.String()
	}
	return m
}
