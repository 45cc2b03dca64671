package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/showcase/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		return 1
	}
	return 0
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	prefsPath  string
	preview    bool
	pageQuery  string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Terminal viewer for the product showcase CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options(cmd))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/showcase/prefs.toml)")
	pf.BoolVar(&flags.preview, "preview", false, "request draft content when the page query allows it")
	pf.StringVar(&flags.pageQuery, "page-query", "", `page query string, e.g. "type=mainPage,product"`)
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	root.AddCommand(newFetchCmd(flags), newTokenCmd(flags))
	return root
}

// options converts flags into app options. Flags left unset keep the config
// file's values.
func (f *rootFlags) options(cmd *cobra.Command) app.Options {
	opts := app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		LogLevel:   f.logLevel,
	}
	if f.verbose {
		opts.LogLevel = "debug"
	}
	if cmd.Flags().Changed("preview") {
		preview := f.preview
		opts.Preview = &preview
	}
	if cmd.Flags().Changed("page-query") {
		query := f.pageQuery
		opts.PageQuery = &query
	}
	return opts
}
