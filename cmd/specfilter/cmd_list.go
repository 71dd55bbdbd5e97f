package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every product in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			c, err := loadCatalog(logger)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			return printProducts(cmd.OutOrStdout(), c.Products(), outputFormat())
		},
	}
}
