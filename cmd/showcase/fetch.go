package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/five82/showcase/internal/app"
	"github.com/five82/showcase/internal/logging"
)

func newFetchCmd(flags *rootFlags) *cobra.Command {
	var (
		format   string
		resolved bool
	)
	cmd := &cobra.Command{
		Use:       "fetch homepage|product",
		Short:     "Fetch one content record and print it",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"homepage", "product"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}

			cfg, err := app.LoadConfig(flags.options(cmd))
			if err != nil {
				return err
			}
			logger, err := logging.NewConsole(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			deps, err := app.Build(cfg, logger)
			if err != nil {
				return err
			}

			var record any
			switch args[0] {
			case "homepage":
				home, err := deps.Content.FetchHomepage(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch homepage: %w", err)
				}
				record = *home
				if resolved {
					record = home.Resolved()
				}
			case "product":
				product, err := deps.Content.FetchProduct(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch product: %w", err)
				}
				record = *product
				if resolved {
					record = product.Resolved()
				}
			}
			logger.Debug("fetched content", zap.String("source", args[0]), zap.Bool("resolved", resolved))
			return writeRecord(cmd.OutOrStdout(), format, record)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&resolved, "resolved", false, "print the published or draft fields the UI would show")
	return cmd
}

func writeRecord(w io.Writer, format string, record any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
