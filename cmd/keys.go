package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"audioshelf/internal/app"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/utils"
	"audioshelf/pkg/logging"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the active keybindings",
		Long: `Prints every key sequence bound in the loaded configuration,
grouped by mode, the same way the help line in the browser shows them.`,
		Args: cobra.NoArgs,
		RunE: runKeys,
	}
}

func runKeys(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if rootDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	keys, err := app.LoadKeys(newAppConfig(cmd))
	if err != nil {
		return err
	}
	printKeys(cmd.OutOrStdout(), keys)
	return nil
}

// printKeys writes one block per mode, one line per action.
func printKeys(w io.Writer, keys *keymap.Table) {
	for i, mode := range keys.Modes() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", mode)

		bindings := keys.HelpBindings(mode)
		var sequences []string
		for _, b := range bindings {
			sequences = append(sequences, b.Help().Key)
		}
		width := utils.MaxWidth(sequences, 0)
		for _, b := range bindings {
			h := b.Help()
			fmt.Fprintf(w, "  %s%*s  %s\n", h.Key, width-utils.Width(h.Key), "", h.Desc)
		}
	}
}
