package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/spprichard/Generics-Medium-Article/internal/catalog"
	"github.com/spprichard/Generics-Medium-Article/internal/config"
	"github.com/spprichard/Generics-Medium-Article/internal/models"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specfilter",
		Short: "Filter a product catalog with composable specifications",
		Long:  "specfilter selects products from a catalog by color and size, combining criteria with logical AND.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "path to a YAML product catalog (default: built-in sample)")
	rootCmd.PersistentFlags().String("output", config.OutputText, "output format (text|json)")

	rootCmd.AddCommand(
		listCmd(),
		filterCmd(),
		demoCmd(),
	)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	var logger *slog.Logger
	if cfg != nil && cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return logger.With("run_id", uuid.NewString())
}

func loadCatalog(logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg == nil || cfg.Catalog.Path == "" {
		logger.Debug("using sample catalog")
		return catalog.Sample(), nil
	}
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "path", cfg.Catalog.Path, "products", c.Len())
	return c, nil
}

func outputFormat() string {
	if cfg == nil {
		return config.OutputText
	}
	return cfg.Output.Format
}

// printProducts writes products in the configured output format.
func printProducts(w io.Writer, products []models.Product, format string) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(products); err != nil {
			return fmt.Errorf("encoding products: %w", err)
		}
		return nil
	}

	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}
	for i := range products {
		if _, err := fmt.Fprintln(w, products[i].String()); err != nil {
			return err
		}
	}
	return nil
}
