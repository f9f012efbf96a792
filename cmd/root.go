package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audioshelf/internal/app"
)

var (
	rootLibrary   string
	rootConfigDir string
	rootTickRate  float64
	rootFrameRate float64
	rootDebug     bool
	rootDemo      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audioshelf",
	Short: "Browse an audiobook library in the terminal",
	Long: `audioshelf opens an audiobook library export in an interactive
terminal browser.

The library is read once at startup. Keys are bound per mode in
config.yaml, loaded from ~/.config/audioshelf and ./.audioshelf, or from
the directory given with --config. Use 'audioshelf keys' to list the
active bindings.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable library, malformed keybindings)
	SilenceUsage: true,
}

// newAppConfig builds the application configuration from the persistent
// flags; rates only override the configuration when they were given.
func newAppConfig(cmd *cobra.Command) *app.Config {
	cfg := app.NewConfig(rootLibrary, rootConfigDir, rootDebug, rootDemo)
	if f := cmd.Flags().Lookup("tick-rate"); f != nil && f.Changed {
		rate := rootTickRate
		cfg.TickRate = &rate
	}
	if f := cmd.Flags().Lookup("frame-rate"); f != nil && f.Changed {
		rate := rootFrameRate
		cfg.FrameRate = &rate
	}
	return cfg
}

// runRoot is the main entry point: it loads everything and runs the TUI
func runRoot(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(newAppConfig(cmd))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "audioshelf version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootLibrary, "library", "l", "", "Library export (JSON) to open")
	flags.StringVar(&rootConfigDir, "config", "", "Load config.yaml from this directory only")
	flags.Float64VarP(&rootTickRate, "tick-rate", "t", 4.0, "Tick rate, i.e. number of ticks per second")
	flags.Float64VarP(&rootFrameRate, "frame-rate", "f", 60.0, "Frame rate, i.e. number of frames per second")
	flags.BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	flags.BoolVar(&rootDemo, "demo", false, "Open the built-in demo library")
}
