package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/digdirlab/atlasdcat/catalog"
	"github.com/digdirlab/atlasdcat/graph"
)

func importCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Fold a Turtle catalog into the glossary",
		Long: `Import reads a DCAT catalog in Turtle format (from a file or stdin),
updates matching glossary terms and creates draft terms for new datasets,
then saves the glossary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open catalog file: %w", err)
				}
				defer f.Close()
				r = f
			}

			cat, err := catalog.ParseTurtle(r)
			if err != nil {
				return fmt.Errorf("parse catalog: %w", err)
			}

			m, err := buildMapper(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := m.Fetch(ctx); err != nil {
				return fmt.Errorf("fetch glossary: %w", err)
			}
			if err := m.MapDatasetCatalogToGlossaryTerms(cat); err != nil {
				return fmt.Errorf("map catalog: %w", err)
			}
			if err := m.Save(ctx); err != nil {
				return fmt.Errorf("save glossary: %w", err)
			}

			js, nc, err := graph.Connect(cfg.NATS.URL)
			if err != nil {
				slog.Warn("NATS unavailable, skipping catalog publish", "error", err)
			} else if nc != nil {
				defer nc.Close()
				if err := graph.PublishCatalogUpdate(ctx, js, cfg.NATS.Subject, cat); err != nil {
					slog.Warn("Catalog update publish failed", "error", err)
				}
			}

			slog.Info("Catalog imported", "datasets", len(cat.Datasets), "terms", len(m.Terms()))
			return nil
		},
	}

	return cmd
}
