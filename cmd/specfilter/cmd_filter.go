package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spprichard/Generics-Medium-Article/internal/metrics"
	"github.com/spprichard/Generics-Medium-Article/internal/models"
	"github.com/spprichard/Generics-Medium-Article/internal/spec"
)

func filterCmd() *cobra.Command {
	var (
		color string
		size  string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the products matching every given criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			s, err := buildSpec(color, size)
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}

			c, err := loadCatalog(logger)
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}

			matches := c.Find(s)
			metrics.RecordFilter(c.Len(), len(matches))
			logger.Debug("filter applied", "color", color, "size", size, "tested", c.Len(), "matched", len(matches))

			return printProducts(cmd.OutOrStdout(), matches, outputFormat())
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "filter by color (red|green|blue)")
	cmd.Flags().StringVar(&size, "size", "", "filter by size (small|medium|large)")
	return cmd
}

// buildSpec turns the filter flags into a specification. Each non-empty flag
// contributes one criterion; several criteria are joined with And. With no
// flags every product matches.
func buildSpec(color, size string) (spec.Specification[models.Product], error) {
	var criteria []spec.Specification[models.Product]

	if color != "" {
		c, err := models.ParseColor(color)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, spec.ByColor[models.Product](c))
	}
	if size != "" {
		sz, err := models.ParseSize(size)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, spec.BySize[models.Product](sz))
	}

	if len(criteria) == 0 {
		return spec.Func[models.Product](func(models.Product) bool { return true }), nil
	}
	s := criteria[0]
	for _, next := range criteria[1:] {
		s = spec.And(s, next)
	}
	return s, nil
}
