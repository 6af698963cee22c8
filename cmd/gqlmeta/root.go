package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/build"
	"gqlmeta/internal/config"
	"gqlmeta/internal/logging"
	"gqlmeta/internal/manifest"
	"gqlmeta/internal/registry"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	dir        string
	logLevel   string
	strict     bool
	noColor    bool
	manifests  []string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gqlmeta",
		Short: "Build GraphQL schema types from annotated Go code",
		Long: `gqlmeta reads Go packages and YAML manifests, resolves GraphQL arguments and
input fields from gql: directives, doc comments and Go signatures, and prints the
resulting schema as SDL.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: gqlmeta.yaml in --dir)")
	flags.StringVar(&a.dir, "dir", "", "directory packages and the default config are read from")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.strict, "strict", false, "treat warnings as errors")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.StringSliceVarP(&a.manifests, "manifest", "m", nil, "manifest file to load (repeatable)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newSDLCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))

	return rootCmd
}

// setup loads the config and lets flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if a.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(a.configPath, a.dir)
	if err != nil {
		return err
	}

	if a.dir != "" {
		cfg.Dir = a.dir
	} else if cfg.Dir == "" && a.configPath != "" {
		cfg.Dir = filepath.Dir(a.configPath)
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict = a.strict
	}

	// Config manifests are relative to the project directory, flag ones to
	// the working directory.
	for i, path := range cfg.Manifests {
		if !filepath.IsAbs(path) && cfg.Dir != "" {
			cfg.Manifests[i] = filepath.Join(cfg.Dir, path)
		}
	}
	cfg.Manifests = append(cfg.Manifests, a.manifests...)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadGraph analyzes packages (patterns, or the configured ones) and applies
// the configured manifests.
func (a *app) loadGraph(patterns []string) (*analyze.TypeGraph, error) {
	if len(patterns) == 0 {
		patterns = a.cfg.Packages
	}

	if len(patterns) == 0 && !a.cfg.HasSources() {
		return nil, errors.New("nothing to analyze: configure packages or manifests")
	}

	graph := analyze.NewTypeGraph()

	if len(patterns) > 0 {
		a.logger.Info("loading packages", zap.Strings("patterns", patterns), zap.String("dir", a.cfg.Dir))

		loaded, err := analyze.NewAnalyzer(analyze.WithDir(a.cfg.Dir)).LoadPackages(patterns...)
		if err != nil {
			return nil, err
		}
		graph = loaded
	}

	for _, path := range a.cfg.Manifests {
		a.logger.Info("loading manifest", zap.String("path", path))

		mf, err := manifest.LoadFile(path)
		if err != nil {
			return nil, err
		}

		if err := mf.Apply(graph); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	a.logger.Debug("type graph ready",
		zap.Int("packages", len(graph.Packages)),
		zap.Int("types", len(graph.Types)))

	return graph, nil
}

// newSchema installs a builder over graph on the process-wide registry and
// returns a schema builder on top of it.
func (a *app) newSchema(graph *analyze.TypeGraph) *build.Schema {
	reg := registry.Default()
	build.Install(reg, graph,
		build.WithLogger(a.logger.Named("builder")),
		build.WithSetterPrefixes(a.cfg.SetterPrefixes...))

	return build.NewSchema(reg,
		build.WithSchemaLogger(a.logger.Named("schema")),
		build.WithStrict(a.cfg.Strict))
}

// verbose reports whether info diagnostics are shown.
func (a *app) verbose() bool {
	return a.cfg.LogLevel == "debug"
}

// roots returns args, or the configured roots when none are given.
func (a *app) roots(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return a.cfg.Roots
}
