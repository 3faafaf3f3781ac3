// Package graph publishes catalog updates for downstream harvesters.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/digdirlab/atlasdcat/catalog"
)

// CatalogUpdate is the message published after a catalog changes. The turtle
// document is the full serialized catalog; the counts let consumers skip
// deserializing when nothing relevant changed.
type CatalogUpdate struct {
	CatalogURI    string    `json:"catalog_uri"`
	Datasets      int       `json:"datasets"`
	Distributions int       `json:"distributions"`
	Turtle        string    `json:"turtle"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCatalogUpdate serializes cat into an update message.
func NewCatalogUpdate(cat *catalog.Catalog) (*CatalogUpdate, error) {
	var buf bytes.Buffer
	if err := cat.WriteTurtle(&buf); err != nil {
		return nil, fmt.Errorf("serialize catalog: %w", err)
	}

	var dists int
	for _, ds := range cat.Datasets {
		dists += len(ds.Distributions)
	}

	return &CatalogUpdate{
		CatalogURI:    cat.Identifier,
		Datasets:      len(cat.Datasets),
		Distributions: dists,
		Turtle:        buf.String(),
		UpdatedAt:     time.Now().UTC(),
	}, nil
}

// PublishCatalogUpdate publishes cat on the given JetStream subject.
func PublishCatalogUpdate(ctx context.Context, js jetstream.JetStream, subject string, cat *catalog.Catalog) error {
	if js == nil {
		return nil // Skip publishing if no JetStream client (graceful degradation)
	}

	update, err := NewCatalogUpdate(cat)
	if err != nil {
		return err
	}

	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal catalog update: %w", err)
	}

	if _, err := js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish catalog update: %w", err)
	}

	return nil
}

// Connect dials NATS and returns a JetStream handle. An empty URL disables
// publishing; both return values are nil.
func Connect(url string) (jetstream.JetStream, *nats.Conn, error) {
	if url == "" {
		return nil, nil, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create jetstream context: %w", err)
	}

	return js, nc, nil
}
