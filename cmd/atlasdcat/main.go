// Package main provides the atlasdcat binary entry point.
// Atlasdcat maps Apache Atlas glossary terms to a DCAT-AP-NO dataset
// catalog and back.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digdirlab/atlasdcat/config"
	"github.com/digdirlab/atlasdcat/glossary"
	"github.com/digdirlab/atlasdcat/mapper"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "atlasdcat"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "atlasdcat",
		Short: "Apache Atlas glossary to DCAT-AP-NO mapper",
		Long: `Atlasdcat maps the terms of an Apache Atlas glossary to a DCAT-AP-NO
dataset catalog and back.

It provides:
- export: fetch the glossary and print the catalog as Turtle
- import: fold a Turtle catalog into the glossary
- serve:  HTTP endpoints serving and accepting the catalog`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(exportCmd(&configPath))
	cmd.AddCommand(importCmd(&configPath))
	cmd.AddCommand(serveCmd(&configPath))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig loads the explicit file when given, the layered defaults
// otherwise.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// buildMapper wires an Atlas-backed mapper from the configuration.
func buildMapper(cfg *config.Config) (*mapper.Mapper, error) {
	var atlasOpts []glossary.AtlasOption
	if cfg.Atlas.Username != "" {
		atlasOpts = append(atlasOpts, glossary.WithBasicAuth(cfg.Atlas.Username, cfg.Atlas.Password))
	}
	if cfg.Atlas.Timeout != 0 {
		atlasOpts = append(atlasOpts, glossary.WithHTTPClient(&http.Client{Timeout: cfg.Atlas.Timeout}))
	}
	client := glossary.NewAtlasClient(cfg.Atlas.Endpoint, atlasOpts...)

	return mapper.New(client, mapperOptions(cfg))
}

func mapperOptions(cfg *config.Config) mapper.Options {
	var attrMapping mapper.AttrMapping
	if len(cfg.Catalog.AttrMapping) > 0 {
		attrMapping = make(mapper.AttrMapping, len(cfg.Catalog.AttrMapping))
		for attr, name := range cfg.Catalog.AttrMapping {
			attrMapping[mapper.Attribute(attr)] = name
		}
	}

	return mapper.Options{
		GlossaryID:              cfg.Atlas.GlossaryID,
		CatalogURI:              cfg.Catalog.URI,
		CatalogTitle:            cfg.Catalog.Title,
		CatalogDescription:      cfg.Catalog.Description,
		CatalogPublisher:        cfg.Catalog.Publisher,
		CatalogLanguages:        cfg.Catalog.Languages,
		CatalogLicense:          cfg.Catalog.License,
		DatasetURITemplate:      cfg.Catalog.DatasetURITemplate,
		DistributionURITemplate: cfg.Catalog.DistributionURITemplate,
		DefaultLanguage:         cfg.Catalog.DefaultLanguage,
		AttrMapping:             attrMapping,
	}
}
