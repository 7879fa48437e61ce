// Package main implements vclass, an interactive console app that keeps
// class and student rosters as plain-text files and presents them as
// bordered cards behind a numbered menu.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/cmd/vclass/config"
	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/cmd/vclass/ui"
	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/internal/logging"
	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/internal/roster"
	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/internal/version"
)

var (
	// Global flags
	verbose   bool
	noColor   bool
	themeName string

	// Loaded preferences
	cfg config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vclass",
	Short: "VCLASS - virtual classroom rosters in your terminal",
	Long: `vclass keeps two plain-text rosters, class names and student names,
and renders them as bordered cards behind a numbered menu.

Entries live in classes.txt and students.txt in the working directory,
one name per line, and are safe to edit by hand between runs. Optional
preferences are read from vclass.yaml next to them.

Run without arguments to start the interactive session. Styling honors
the NO_COLOR convention and degrades to plain text on non-terminals.`,
	Args:    cobra.NoArgs,
	Version: version.Get().String(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !knownTheme(themeName) {
			return fmt.Errorf("invalid --theme %q (valid: auto, light, dark, mono)", themeName)
		}

		var cfgErr error
		cfg, cfgErr = config.Load()

		var err error
		logger, err = logging.New(verbose || cfg.Verbose, logging.DefaultFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfgErr != nil {
			logger.Warn("config load failed, using defaults", zap.Error(cfgErr))
		}
		if !knownTheme(cfg.Theme) {
			logger.Warn("unknown theme in preferences, using auto", zap.String("theme", cfg.Theme))
			cfg.Theme = "auto"
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to "+logging.DefaultFile)
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme: auto, light, dark or mono (default from "+config.File+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable all styling (NO_COLOR is honored too)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSession opens the rosters in the working directory and hands control
// to the interactive menu loop.
func runSession(cmd *cobra.Command, args []string) error {
	logger.Info("vclass starting", zap.String("version", version.Get().Version))

	store, err := roster.Open(roster.DefaultClassesFile, roster.DefaultStudentsFile, logger.Named("roster"))
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}

	sess := newSession(store, buildConsole(), logger.Named("session"))
	return sess.Run()
}

// buildConsole wires the terminal surface to stdin/stdout. On a
// non-terminal stdout the color profile drops to plain text and screen
// clearing is disabled, so piped transcripts stay byte-stable.
func buildConsole() *ui.Console {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	renderer := lipgloss.NewRenderer(os.Stdout)
	if noColor || effectiveTheme() == "mono" || !interactive {
		renderer.SetColorProfile(termenv.Ascii)
	}

	styles := ui.NewStyles(renderer, resolveTheme(effectiveTheme()))
	return ui.NewConsole(os.Stdin, os.Stdout, styles, interactive)
}

// effectiveTheme applies the flag-over-config precedence.
func effectiveTheme() string {
	if themeName != "" {
		return themeName
	}
	return cfg.Theme
}

func resolveTheme(name string) ui.Theme {
	switch name {
	case "light", "mono":
		return ui.LightTheme()
	case "dark":
		return ui.DarkTheme()
	default:
		return ui.DetectTheme()
	}
}

// knownTheme reports whether name is one of the accepted theme values.
// The empty string stands for "not set".
func knownTheme(name string) bool {
	switch name {
	case "", "auto", "light", "dark", "mono":
		return true
	}
	return false
}
