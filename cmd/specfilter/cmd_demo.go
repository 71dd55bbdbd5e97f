package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spprichard/Generics-Medium-Article/internal/catalog"
	"github.com/spprichard/Generics-Medium-Article/internal/config"
	"github.com/spprichard/Generics-Medium-Article/internal/metrics"
	"github.com/spprichard/Generics-Medium-Article/internal/models"
	"github.com/spprichard/Generics-Medium-Article/internal/spec"
)

// demoStep is one titled result of the demo scenario.
type demoStep struct {
	Title    string           `json:"title"`
	Products []models.Product `json:"products"`
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample scenario: small products, then red and small products",
		Long: "demo filters the built-in sample catalog (a large green tree, a small green frog and a small red strawberry). " +
			"It always uses the sample catalog; --catalog and catalog.path are ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			if cfg != nil && cfg.Catalog.Path != "" {
				logger.Debug("demo ignores configured catalog", "path", cfg.Catalog.Path)
			}
			c := catalog.Sample()

			criteria := []struct {
				title     string
				criterion spec.Specification[models.Product]
			}{
				{"Small products", spec.BySize[models.Product](models.SizeSmall)},
				{"Red and small products", spec.And[models.Product](
					spec.ByColor[models.Product](models.ColorRed),
					spec.BySize[models.Product](models.SizeSmall),
				)},
			}

			steps := make([]demoStep, 0, len(criteria))
			for i, cr := range criteria {
				matches := c.Find(cr.criterion)
				metrics.RecordFilter(c.Len(), len(matches))
				logger.Debug("demo step", "step", i+1, "matched", len(matches))
				steps = append(steps, demoStep{Title: cr.title, Products: matches})
			}

			if err := printDemo(cmd.OutOrStdout(), steps, outputFormat()); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
	}
}

// printDemo writes the steps as one JSON document or as titled text blocks.
func printDemo(w io.Writer, steps []demoStep, format string) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(steps); err != nil {
			return fmt.Errorf("encoding demo: %w", err)
		}
		return nil
	}

	for i, step := range steps {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", step.Title); err != nil {
			return err
		}
		if err := printProducts(w, step.Products, format); err != nil {
			return err
		}
	}
	return nil
}
