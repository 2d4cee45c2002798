package cli

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/Healthire/wasm-bin/internal/bundle"
	"github.com/Healthire/wasm-bin/internal/config"
	"github.com/Healthire/wasm-bin/internal/logx"
	"github.com/Healthire/wasm-bin/internal/paths"
	"github.com/Healthire/wasm-bin/internal/prompt"
	"github.com/Healthire/wasm-bin/internal/tools"
)

var (
	packageYes  bool
	packageMode string
)

func newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package <target-name> <module-path>",
		Short: "Bundle a compiled wasm module into a browser deliverable",
		Args:  cobra.ExactArgs(2),
		RunE:  runPackage,
	}

	cmd.Flags().BoolVar(&packageYes, "yes", false, "Install missing tools without prompting")
	cmd.Flags().StringVar(&packageMode, "mode", "", "Bundler mode (overrides config)")

	return cmd
}

func runPackage(cmd *cobra.Command, args []string) error {
	targetName, modulePath := args[0], args[1]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closer, err := newRunLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("wasm-bin package: target=%s module=%s", targetName, modulePath)

	toolchain := cfg.Toolchain()
	deps := tools.Deps{
		Runner:    tools.CmdRunner{},
		Confirmer: prompt.TTY{},
		Toolchain: toolchain,
		Diag:      cmd.ErrOrStderr(),
		Logger:    logger,
	}
	if err := tools.InstallIfRequired(cmd.Context(), deps, packageYes); err != nil {
		return err
	}

	mode := cfg.Bundle.Mode
	if packageMode != "" {
		mode = packageMode
	}
	outFile, err := bundle.Package(cmd.Context(), bundle.Deps{
		Runner:    tools.CmdRunner{},
		Toolchain: toolchain,
		Mode:      mode,
		Stdout:    cmd.OutOrStdout(),
		Logger:    logger,
	}, targetName, modulePath)
	if err != nil {
		return err
	}

	logger.Printf("packaged %s", outFile)
	cmd.Println(outFile)
	return nil
}

func newRunLogger() (*log.Logger, io.Closer, error) {
	logsDir, err := paths.LogsRoot()
	if err != nil {
		return nil, nil, err
	}
	return logx.New(logsDir)
}
