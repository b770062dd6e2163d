package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pebsconsulting/createphp/config"
	"github.com/pebsconsulting/createphp/entity"
	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metadata"
	"github.com/pebsconsulting/createphp/metric"
	"github.com/pebsconsulting/createphp/typefactory"
	"github.com/pebsconsulting/createphp/vocabulary"
)

// classMapper resolves fully qualified names such as \Blog\Article and
// Blog\Article to the same class
var classMapper = entity.MapperFunc(func(className string) string {
	return strings.TrimLeft(className, `\`)
})

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Resolve RDF mapping metadata of classes",
		SilenceUsage: true,
	}
	opts.register(root)

	root.AddCommand(
		newResolveCmd(opts),
		newCheckCmd(opts),
		newFilenameCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newResolveCmd(opts *cliOptions) *cobra.Command {
	var (
		output string
		expand bool
	)

	cmd := &cobra.Command{
		Use:   "resolve CLASS",
		Short: "Print the type descriptor of a class",
		Example: `  rdfmeta resolve --dir ./metadata 'Blog\Article'
  rdfmeta resolve -d ./overrides -d ./metadata --output json --expand 'Blog\Article'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" {
				return errors.WrapInvalid(errors.ErrInvalidConfig, "cli", "resolve",
					fmt.Sprintf("unknown output format %q, want json or yaml", output))
			}

			cfg, err := opts.loadConfig(true)
			if err != nil {
				return err
			}
			logger := setupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

			factory, err := newFactory(cfg, logger)
			if err != nil {
				return err
			}

			typ, err := factory.GetType(args[0])
			if err != nil {
				logger.Debug("resolution failed", "class", args[0], "error", err)
				return err
			}

			desc := typ.Describe()
			if expand {
				expandDescription(&desc, typ.Vocabularies(), vocabulary.NewStandardRegistry())
			}
			return writeDescription(cmd.OutOrStdout(), output, desc)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml, json")
	cmd.Flags().BoolVar(&expand, "expand", false,
		"Expand prefixed terms to full IRIs, falling back to well-known prefixes")
	return cmd
}

func newCheckCmd(opts *cliOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check CLASS...",
		Short: "Resolve several classes concurrently and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(true)
			if err != nil {
				return err
			}
			logger := setupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

			factory, err := newFactory(cfg, logger)
			if err != nil {
				return err
			}

			results, err := factory.Warm(cmd.Context(), args, workers)
			if err != nil {
				return err
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					failed++
					_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", r.Class, r.Err)
					continue
				}
				_, _ = fmt.Fprintf(out, "ok   %s (%d fields)\n", r.Class, r.Type.Len())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d classes failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of concurrent resolutions")
	return cmd
}

func newFilenameCmd(opts *cliOptions) *cobra.Command {
	var locate bool

	cmd := &cobra.Command{
		Use:   "filename CLASS",
		Short: "Print the metadata file name of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			className := classMapper.CanonicalName(args[0])
			if !locate {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), metadata.ClassFilename(className))
				return err
			}

			cfg, err := opts.loadConfig(true)
			if err != nil {
				return err
			}
			logger := setupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

			locator := metadata.NewLocator(cfg.Directories, metadata.WithLogger(logger))
			path, ok := locator.Find(className)
			if !ok {
				return fmt.Errorf("%s not found in %s: %w",
					metadata.ClassFilename(className),
					strings.Join(locator.Directories(), ", "),
					errors.ErrTypeNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().BoolVar(&locate, "locate", false, "Print the path of the document that would be loaded")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (build %s)\n", appName, Version, BuildTime)
			return err
		},
	}
}

func newFactory(cfg *config.Config, logger *slog.Logger) (*typefactory.Factory, error) {
	registry := metric.NewMetricsRegistry()
	driver := metadata.NewXMLDriver(cfg.Directories,
		metadata.WithLogger(logger),
		metadata.WithMetrics(registry.CoreMetrics()))
	return typefactory.New(driver, classMapper,
		typefactory.WithCache(cfg.Cache),
		typefactory.WithMetrics(registry),
		typefactory.WithLogger(logger))
}

// expandDescription rewrites typeof, property and rel values to full IRIs
// where their prefix is known
func expandDescription(desc *entity.Description, declared *vocabulary.Namespaces, registry *vocabulary.Registry) {
	if desc.RdfType != "" {
		desc.RdfType, _ = registry.Resolve(desc.RdfType, declared)
	}
	for _, f := range desc.Fields {
		for _, key := range []string{entity.KindProperty.TermKey(), entity.KindCollection.TermKey()} {
			if term, ok := f.Attributes[key]; ok {
				f.Attributes[key], _ = registry.Resolve(term, declared)
			}
		}
	}
}

func writeDescription(w io.Writer, format string, desc entity.Description) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return err
	}
	return enc.Close()
}
