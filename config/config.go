// Package config provides configuration loading and management for the
// glossary catalog service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Catalog CatalogConfig `yaml:"catalog"`
	HTTP    HTTPConfig    `yaml:"http"`
	NATS    NATSConfig    `yaml:"nats"`
}

// AtlasConfig configures the Apache Atlas connection
type AtlasConfig struct {
	// Endpoint is the Atlas base URL (e.g. http://localhost:21000)
	Endpoint string `yaml:"endpoint"`
	// Username and Password are basic-auth credentials; empty disables auth
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// GlossaryID is the GUID of the glossary to map
	GlossaryID string `yaml:"glossary_id"`
	// Timeout is the maximum time to wait for Atlas responses
	Timeout time.Duration `yaml:"timeout"`
}

// CatalogConfig configures the published catalog and the identifier minting
type CatalogConfig struct {
	// URI identifies the catalog
	URI string `yaml:"uri"`
	// Title and Description map language code to text
	Title       map[string]string `yaml:"title"`
	Description map[string]string `yaml:"description"`
	// Publisher is the URI of the publishing agent
	Publisher string `yaml:"publisher"`
	// Languages lists language authority IRIs
	Languages []string `yaml:"languages"`
	// License is the catalog license IRI
	License string `yaml:"license"`
	// DatasetURITemplate and DistributionURITemplate mint identifiers for
	// records that have none; both must contain the {guid} placeholder
	DatasetURITemplate      string `yaml:"dataset_uri_template"`
	DistributionURITemplate string `yaml:"distribution_uri_template"`
	// DefaultLanguage tags text without a language marker
	DefaultLanguage string `yaml:"default_language"`
	// AttrMapping renames glossary term attributes (default name -> used name)
	AttrMapping map[string]string `yaml:"attr_mapping"`
}

// HTTPConfig configures the example server
type HTTPConfig struct {
	// Addr is the listen address (e.g. ":8080")
	Addr string `yaml:"addr"`
}

// NATSConfig configures catalog publishing over JetStream
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Subject is the JetStream subject catalog updates are published on
	Subject string `yaml:"subject"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Atlas: AtlasConfig{
			Endpoint: "http://localhost:21000",
			Timeout:  30 * time.Second,
		},
		Catalog: CatalogConfig{
			DatasetURITemplate:      "https://example.com/dataset/{guid}",
			DistributionURITemplate: "https://example.com/distribution/{guid}",
			DefaultLanguage:         "nb",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		NATS: NATSConfig{
			Subject: "catalog.updated",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Atlas.Endpoint == "" {
		return fmt.Errorf("atlas.endpoint is required")
	}
	if c.Catalog.DefaultLanguage == "" {
		return fmt.Errorf("catalog.default_language is required")
	}
	for _, tmpl := range []struct{ name, value string }{
		{"catalog.dataset_uri_template", c.Catalog.DatasetURITemplate},
		{"catalog.distribution_uri_template", c.Catalog.DistributionURITemplate},
	} {
		if !strings.Contains(tmpl.value, "{guid}") {
			return fmt.Errorf("%s must contain the {guid} placeholder", tmpl.name)
		}
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Atlas
	if other.Atlas.Endpoint != "" {
		c.Atlas.Endpoint = other.Atlas.Endpoint
	}
	if other.Atlas.Username != "" {
		c.Atlas.Username = other.Atlas.Username
	}
	if other.Atlas.Password != "" {
		c.Atlas.Password = other.Atlas.Password
	}
	if other.Atlas.GlossaryID != "" {
		c.Atlas.GlossaryID = other.Atlas.GlossaryID
	}
	if other.Atlas.Timeout != 0 {
		c.Atlas.Timeout = other.Atlas.Timeout
	}

	// Catalog
	if other.Catalog.URI != "" {
		c.Catalog.URI = other.Catalog.URI
	}
	if len(other.Catalog.Title) > 0 {
		c.Catalog.Title = other.Catalog.Title
	}
	if len(other.Catalog.Description) > 0 {
		c.Catalog.Description = other.Catalog.Description
	}
	if other.Catalog.Publisher != "" {
		c.Catalog.Publisher = other.Catalog.Publisher
	}
	if len(other.Catalog.Languages) > 0 {
		c.Catalog.Languages = other.Catalog.Languages
	}
	if other.Catalog.License != "" {
		c.Catalog.License = other.Catalog.License
	}
	if other.Catalog.DatasetURITemplate != "" {
		c.Catalog.DatasetURITemplate = other.Catalog.DatasetURITemplate
	}
	if other.Catalog.DistributionURITemplate != "" {
		c.Catalog.DistributionURITemplate = other.Catalog.DistributionURITemplate
	}
	if other.Catalog.DefaultLanguage != "" {
		c.Catalog.DefaultLanguage = other.Catalog.DefaultLanguage
	}
	if len(other.Catalog.AttrMapping) > 0 {
		c.Catalog.AttrMapping = other.Catalog.AttrMapping
	}

	// HTTP
	if other.HTTP.Addr != "" {
		c.HTTP.Addr = other.HTTP.Addr
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
}
