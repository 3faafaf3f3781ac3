package mapper

import (
	"strings"

	"github.com/google/uuid"
)

// GUIDPlaceholder marks where a minted identifier fragment goes in a URI
// template.
const GUIDPlaceholder = "{guid}"

// mintIdentifier fills the template's placeholder with a random UUID.
func mintIdentifier(template string) string {
	return strings.Replace(template, GUIDPlaceholder, uuid.NewString(), 1)
}

// ensureIdentifier returns the identifier already recorded under key in
// attrs, or mints a new URI from template and records it. Recording the
// minted URI is what keeps repeated mapping passes from forking identifiers.
func ensureIdentifier(attrs map[string]string, key, template string) string {
	if id := attrs[key]; id != "" {
		return id
	}
	id := mintIdentifier(template)
	attrs[key] = id
	return id
}
