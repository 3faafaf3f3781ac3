package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Atlas.Endpoint != "http://localhost:21000" {
		t.Errorf("expected default endpoint http://localhost:21000, got %s", cfg.Atlas.Endpoint)
	}
	if cfg.Atlas.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Atlas.Timeout)
	}
	if cfg.Catalog.DefaultLanguage != "nb" {
		t.Errorf("expected default language nb, got %s", cfg.Catalog.DefaultLanguage)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.HTTP.Addr)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing atlas endpoint",
			modify:  func(c *Config) { c.Atlas.Endpoint = "" },
			wantErr: true,
		},
		{
			name:    "missing default language",
			modify:  func(c *Config) { c.Catalog.DefaultLanguage = "" },
			wantErr: true,
		},
		{
			name:    "dataset template without placeholder",
			modify:  func(c *Config) { c.Catalog.DatasetURITemplate = "https://example.com/fixed" },
			wantErr: true,
		},
		{
			name:    "distribution template without placeholder",
			modify:  func(c *Config) { c.Catalog.DistributionURITemplate = "no-placeholder" },
			wantErr: true,
		},
		{
			name:    "nats url without subject",
			modify:  func(c *Config) { c.NATS.URL = "nats://localhost:4222"; c.NATS.Subject = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
atlas:
  endpoint: "http://atlas.test:21000"
  username: "admin"
  password: "secret"
  glossary_id: "glossary-1"
  timeout: 1m
catalog:
  uri: "https://data.test/catalog"
  title:
    nb: "Katalog"
    en: "Catalogue"
  publisher: "https://data.test/org/991825827"
  default_language: "en"
  attr_mapping:
    title: "Tittel"
nats:
  url: "nats://test:4222"
  subject: "catalog.test"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Atlas.Endpoint != "http://atlas.test:21000" {
		t.Errorf("expected endpoint http://atlas.test:21000, got %s", cfg.Atlas.Endpoint)
	}
	if cfg.Atlas.GlossaryID != "glossary-1" {
		t.Errorf("expected glossary id glossary-1, got %s", cfg.Atlas.GlossaryID)
	}
	if cfg.Atlas.Timeout != time.Minute {
		t.Errorf("expected timeout 1m, got %v", cfg.Atlas.Timeout)
	}
	if cfg.Catalog.Title["en"] != "Catalogue" {
		t.Errorf("expected english title Catalogue, got %s", cfg.Catalog.Title["en"])
	}
	if cfg.Catalog.DefaultLanguage != "en" {
		t.Errorf("expected default language en, got %s", cfg.Catalog.DefaultLanguage)
	}
	if cfg.Catalog.AttrMapping["title"] != "Tittel" {
		t.Errorf("expected attr mapping Tittel, got %s", cfg.Catalog.AttrMapping["title"])
	}
	if cfg.NATS.Subject != "catalog.test" {
		t.Errorf("expected subject catalog.test, got %s", cfg.NATS.Subject)
	}
	// Defaults survive for fields the file omits
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected addr to remain default, got %s", cfg.HTTP.Addr)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Atlas: AtlasConfig{
			GlossaryID: "glossary-override",
		},
		Catalog: CatalogConfig{
			URI: "https://override/catalog",
		},
	}

	base.Merge(override)

	if base.Atlas.GlossaryID != "glossary-override" {
		t.Errorf("expected glossary id glossary-override, got %s", base.Atlas.GlossaryID)
	}
	// Endpoint should remain from base since override didn't set it
	if base.Atlas.Endpoint != "http://localhost:21000" {
		t.Errorf("expected endpoint to remain default, got %s", base.Atlas.Endpoint)
	}
	if base.Catalog.URI != "https://override/catalog" {
		t.Errorf("expected catalog uri https://override/catalog, got %s", base.Catalog.URI)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Atlas.GlossaryID = "saved-glossary"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Atlas.GlossaryID != "saved-glossary" {
		t.Errorf("expected glossary id saved-glossary, got %s", loaded.Atlas.GlossaryID)
	}
}
