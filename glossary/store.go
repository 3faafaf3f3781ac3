package glossary

import "context"

// Store fetches and persists the terms of one glossary. Implementations own
// all transport concerns (auth, retries, timeouts); the mapper surfaces
// their errors unchanged.
type Store interface {
	// ListTerms returns all terms currently in the named glossary.
	ListTerms(ctx context.Context, glossaryID string) ([]*Term, error)

	// UpsertTerms creates or updates each given term and returns the terms
	// as confirmed by the store, with server-assigned GUIDs filled in.
	// Implementations also write assigned GUIDs back into the given terms
	// as each create succeeds, so a caller retrying after a partial failure
	// does not create the succeeded terms twice. Partial failure is
	// reported per term where the transport allows.
	UpsertTerms(ctx context.Context, glossaryID string, terms []*Term) ([]*Term, error)
}
