package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/orbyte-dev/orbyte"
	"github.com/orbyte-dev/orbyte/catalog"
	"github.com/orbyte-dev/orbyte/filters"
	"github.com/orbyte-dev/orbyte/internal/envcfg"
)

var (
	// Global flags
	promptsPaths  []string
	defaultLocale string
	extension     string
	sandbox       bool
	noCache       bool
	filtersPath   string
	gettextDir    string
	verbose       bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orbyte",
	Short: "Filesystem-first prompt templating with locale fallback",
	Long: `orbyte resolves a logical prompt identifier plus an optional locale to a
concrete template file on disk and renders it with supplied variables.

Templates are named <identifier>.<locale><ext> or <identifier><ext>; nested
identifiers map to real subdirectories. Resolution tries the requested locale,
then the default locale, then the locale-less file, fully within each search
path before the next one, so nearer directories always win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&promptsPaths, "prompts-path", nil,
		"path to a prompts directory (repeatable; default: $ORBYTE_PROMPTS_PATH or .)")
	pf.StringVar(&defaultLocale, "default-locale", orbyte.DefaultLocale,
		"default locale for fallback resolution")
	pf.StringVar(&extension, "extension", orbyte.DefaultExtension,
		"template file extension")
	pf.BoolVar(&sandbox, "sandbox", false,
		"restrict templates to builtin functions (for untrusted templates)")
	pf.BoolVar(&noCache, "no-cache", false,
		"reparse templates on every render instead of caching by mtime")
	pf.StringVar(&filtersPath, "filters", "",
		"path to a Go file exporting Filters or GetFilters()")
	pf.StringVar(&gettextDir, "gettext-dir", "",
		"directory containing message catalog files")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(renderCmd, explainCmd, listCmd)
}

// buildOrbyte wires search paths, filters, and message catalog into an
// Orbyte instance from the global flags.
func buildOrbyte() (*orbyte.Orbyte, error) {
	paths := envcfg.SearchPaths(promptsPaths)
	opts := []orbyte.Option{
		orbyte.WithDefaultLocale(defaultLocale),
		orbyte.WithExtension(extension),
	}
	if sandbox {
		opts = append(opts, orbyte.WithSandbox())
	}
	if noCache {
		opts = append(opts, orbyte.WithoutCache())
	}
	if filtersPath != "" {
		fl, err := filters.Load(filtersPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded filters", zap.String("path", filtersPath), zap.Int("count", len(fl)))
		opts = append(opts, orbyte.WithFilters(fl))
	}
	if gettextDir != "" {
		cat, err := catalog.Load(gettextDir, defaultLocale)
		if err != nil {
			return nil, err
		}
		opts = append(opts, orbyte.WithTranslator(cat))
	}
	logger.Debug("configured search paths", zap.Strings("paths", paths))
	return orbyte.New(paths, opts...)
}
