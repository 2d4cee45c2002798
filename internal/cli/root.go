package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Healthire/wasm-bin/internal/tools"
)

var (
	configPath string
	outputJSON bool
)

// Execute runs the root cobra command. A missing package manager is the one
// unrecoverable condition: nothing the caller retries can fix it, so it
// aborts here with a user-facing message instead of a plain error line.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var fatal *tools.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(os.Stderr, fatal.Message)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wasm-bin",
		Short:         "Package compiled wasm modules for the browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "wasmbin.yaml", "Path to configuration file")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newPackageCmd())
	cmd.AddCommand(newToolsCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}
