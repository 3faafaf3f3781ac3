package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the glossary and print the catalog as Turtle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			m, err := buildMapper(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := m.Fetch(ctx); err != nil {
				return fmt.Errorf("fetch glossary: %w", err)
			}

			cat, err := m.MapGlossaryTermsToDatasetCatalog()
			if err != nil {
				// Skipped terms are a data-quality signal, not an export failure.
				slog.Warn("Terms skipped during mapping", "error", err)
			}

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := cat.WriteTurtle(w); err != nil {
				return fmt.Errorf("serialize catalog: %w", err)
			}

			slog.Info("Catalog exported", "datasets", len(cat.Datasets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
