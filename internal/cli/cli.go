// Package cli implements the castcolor command-line interface.
//
// The root command takes an optional mode token: a demo name runs the
// built-in instance through the solver, "to-coloring" and "to-casting"
// convert an instance read from stdin. Anything else (or nothing) reads
// stdin and performs the configured default reduction. Subcommands expose
// the solver, the reductions, the verifier, rendering, an interactive
// solution browser and the HTTP API.
//
// All commands support --verbose (-v) for debug-level logging and --config
// for an alternative configuration file.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/pkg/buildinfo"
	"github.com/matzehuels/castcolor/pkg/cache"
	"github.com/matzehuels/castcolor/pkg/config"
	"github.com/matzehuels/castcolor/pkg/demo"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The configuration file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "castcolor [mode]",
		Short: "Castcolor solves casting instances and reduces them to graph coloring",
		Long: `Castcolor solves the casting problem (assigning actors to roles so that no
actor plays two roles in one scene) and converts between casting instances
and graph-coloring instances.

Modes:
  no, yes, smallest   solve a built-in demo instance
  to-coloring         read a casting instance on stdin, write a coloring instance
  to-casting          read a coloring instance on stdin, write a casting instance

Without a mode, stdin is converted using the configured default reduction.`,
		Version:      buildinfo.Version,
		ValidArgs:    append(demo.Names(), pipeline.DirectionToColoring, pipeline.DirectionToCasting),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ""
			if len(args) > 0 {
				mode = args[0]
			}
			return c.runMode(cmd, mode)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/castcolor/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.reduceCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file and applies its log level.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.SetLogLevel(cfg.Level())
	c.Logger.Debug("loaded config", "path", c.configPath, "default_reduction", cfg.DefaultReduction)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Results are memoized in
// memory for the lifetime of the process only.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(cache.NewMemoryCache(), nil, c.Logger)
}

// =============================================================================
// Input / Output Helpers
// =============================================================================

// readInput returns the contents of path, or of the command's stdin when
// path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// argOrEmpty returns args[0], or "" when there is none.
func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
