package mapper

import (
	"errors"
	"fmt"
)

// ErrNotFetched is returned when a mapping direction is invoked before the
// term snapshot has been populated with Fetch.
var ErrNotFetched = errors.New("glossary terms not fetched; call Fetch first")

// ConfigurationError reports an invalid or missing Mapper option. It is
// raised at construction, never deferred to mapping time.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mapper configuration: %s: %s", e.Option, e.Reason)
}

// MappingError reports structurally invalid attribute data on one term. The
// glossary→catalog direction skips only that term's contribution and keeps
// processing; the error identifies the record for the caller to investigate.
type MappingError struct {
	// TermGUID identifies the offending term; empty for terms not yet
	// persisted, in which case QualifiedName locates the record.
	TermGUID      string
	QualifiedName string
	// Attribute is the concrete (possibly remapped) attribute name.
	Attribute string
	Reason    string
}

func (e *MappingError) Error() string {
	ref := e.TermGUID
	if ref == "" {
		ref = e.QualifiedName
	}
	return fmt.Sprintf("mapping term %s: attribute %s: %s", ref, e.Attribute, e.Reason)
}
