package glossary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StoreError is a connectivity or protocol failure against the glossary
// store. It is surfaced unchanged to the mapper's caller and never retried
// by the core.
type StoreError struct {
	// Op is the failing operation ("list terms", "create term", "update term").
	Op string
	// StatusCode is the HTTP status, or 0 when the request never completed.
	StatusCode int
	Err        error
}

func (e *StoreError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("glossary store: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("glossary store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// AtlasClient is a Store backed by the Apache Atlas v2 glossary REST API.
type AtlasClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// AtlasOption configures an AtlasClient.
type AtlasOption func(*AtlasClient)

// WithBasicAuth sets basic-auth credentials for every request.
func WithBasicAuth(username, password string) AtlasOption {
	return func(c *AtlasClient) {
		c.username = username
		c.password = password
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) AtlasOption {
	return func(c *AtlasClient) {
		c.httpClient = hc
	}
}

// NewAtlasClient creates a client for the Atlas instance at baseURL
// (e.g. "http://atlas:21000").
func NewAtlasClient(baseURL string, opts ...AtlasOption) *AtlasClient {
	c := &AtlasClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Store = (*AtlasClient)(nil)

// ListTerms returns every term in the glossary via
// GET /api/atlas/v2/glossary/{glossaryID}/terms.
func (c *AtlasClient) ListTerms(ctx context.Context, glossaryID string) ([]*Term, error) {
	endpoint := fmt.Sprintf("%s/api/atlas/v2/glossary/%s/terms", c.baseURL, url.PathEscape(glossaryID))

	var terms []*Term
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &terms, "list terms"); err != nil {
		return nil, err
	}
	return terms, nil
}

// UpsertTerms creates terms without a GUID via POST /api/atlas/v2/glossary/term
// and updates the rest via PUT /api/atlas/v2/glossary/term/{guid}. Terms that
// fail are reported individually; the confirmed terms are returned in input
// order, holding the store's view. Server-assigned GUIDs are also written
// back into the given terms as each create succeeds, so a retry after a
// partial failure updates the created terms instead of creating them again.
func (c *AtlasClient) UpsertTerms(ctx context.Context, glossaryID string, terms []*Term) ([]*Term, error) {
	confirmed := make([]*Term, 0, len(terms))
	var errs []error

	for _, term := range terms {
		if term.Anchor == nil {
			term.Anchor = &Anchor{GlossaryGUID: glossaryID}
		}

		var (
			endpoint string
			method   string
			op       string
		)
		if term.GUID == "" {
			method = http.MethodPost
			endpoint = c.baseURL + "/api/atlas/v2/glossary/term"
			op = "create term"
		} else {
			method = http.MethodPut
			endpoint = fmt.Sprintf("%s/api/atlas/v2/glossary/term/%s", c.baseURL, url.PathEscape(term.GUID))
			op = "update term"
		}

		var result Term
		if err := c.do(ctx, method, endpoint, term, &result, op); err != nil {
			errs = append(errs, fmt.Errorf("term %q: %w", term.QualifiedName, err))
			continue
		}
		term.GUID = result.GUID
		confirmed = append(confirmed, &result)
	}

	return confirmed, errors.Join(errs...)
}

func (c *AtlasClient) do(ctx context.Context, method, endpoint string, body, out any, op string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &StoreError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StoreError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", bytes.TrimSpace(data)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &StoreError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
