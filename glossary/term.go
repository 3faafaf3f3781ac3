// Package glossary models Apache Atlas glossary terms and the store they
// live in. A term is a flat key/attribute bag; all DCAT-specific structure
// is carried as flattened attribute values (see the mapper package).
package glossary

// Status is the lifecycle state of a glossary term.
type Status string

// Term statuses as carried on the Atlas wire.
const (
	StatusDraft      Status = "DRAFT"
	StatusActive     Status = "ACTIVE"
	StatusDeprecated Status = "DEPRECATED"
)

// Eligible reports whether a term with this status participates in catalog
// mapping. Terms without a status are treated as drafts.
func (s Status) Eligible() bool {
	switch s {
	case StatusDraft, StatusActive, "":
		return true
	}
	return false
}

// Term is one glossary entry. GUID is assigned by the store on creation and
// is empty for terms not yet persisted. Attributes is a flat mapping with no
// nested structure; absent attributes are omitted, never empty strings.
type Term struct {
	GUID             string            `json:"guid,omitempty"`
	Name             string            `json:"name"`
	QualifiedName    string            `json:"qualifiedName,omitempty"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	LongDescription  string            `json:"longDescription,omitempty"`
	Status           Status            `json:"status,omitempty"`
	Attributes       map[string]string `json:"additionalAttributes,omitempty"`
	Anchor           *Anchor           `json:"anchor,omitempty"`
}

// Anchor ties a term to its glossary.
type Anchor struct {
	GlossaryGUID string `json:"glossaryGuid"`
}

// Attr returns the named attribute, or "" when absent.
func (t *Term) Attr(name string) string {
	return t.Attributes[name]
}

// SetAttr records an attribute value. Empty values remove the entry so the
// bag never holds empty strings.
func (t *Term) SetAttr(name, value string) {
	if value == "" {
		delete(t.Attributes, name)
		return
	}
	if t.Attributes == nil {
		t.Attributes = make(map[string]string)
	}
	t.Attributes[name] = value
}
