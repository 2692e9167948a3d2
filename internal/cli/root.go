package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textframe/pkg/buildinfo"
	"github.com/matzehuels/textframe/pkg/command"
	"github.com/matzehuels/textframe/pkg/config"
	"github.com/matzehuels/textframe/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "textframe"

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
	Logger   *log.Logger
	Config   config.Config
	Registry *command.Registry

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and the built-in
// command registry.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Config:   config.Default(),
		Registry: command.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "textframe draws text inside a width-aware box",
		Long:              `textframe renders multi-line text, including full-width CJK characters, inside a border sized to the longest line.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/textframe/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.invokeCommand())
	root.AddCommand(c.commandsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	observability.SetCommandHooks(observability.LogCommandHooks{Logger: c.Logger})
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "level", level, "server", cfg.Server.Addr)
	return nil
}
