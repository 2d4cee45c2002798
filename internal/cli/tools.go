package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Healthire/wasm-bin/internal/config"
	"github.com/Healthire/wasm-bin/internal/prompt"
	"github.com/Healthire/wasm-bin/internal/tools"
)

var toolsInstallYes bool

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage the JavaScript toolchain",
	}

	cmd.AddCommand(newToolsListCmd())
	cmd.AddCommand(newToolsInstallCmd())

	return cmd
}

func newToolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List toolchain availability and versions",
		RunE:  runToolsList,
	}
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	infos := tools.Inspect(cmd.Context(), cfg.Toolchain())

	if outputJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printToolTable(cmd, infos)
	return nil
}

func printToolTable(cmd *cobra.Command, infos []tools.ToolInfo) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("TOOL")+"\t"+headerStyle.Render("STATUS")+"\t"+headerStyle.Render("VERSION")+"\t"+headerStyle.Render("PATH"))
	for _, info := range infos {
		status := okStyle.Render("available")
		if !info.Available {
			status = errStyle.Render("missing")
		} else if info.Error != "" {
			status = warnStyle.Render("degraded")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, status, info.Version, info.Path)
	}
	w.Flush()
}

func newToolsInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the bundler if it is missing",
		RunE:  runToolsInstall,
	}

	cmd.Flags().BoolVar(&toolsInstallYes, "yes", false, "Install without prompting")

	return cmd
}

func runToolsInstall(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closer, err := newRunLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	deps := tools.Deps{
		Runner:    tools.CmdRunner{},
		Confirmer: prompt.TTY{},
		Toolchain: cfg.Toolchain(),
		Diag:      cmd.ErrOrStderr(),
		Logger:    logger,
	}
	if err := tools.InstallIfRequired(cmd.Context(), deps, toolsInstallYes); err != nil {
		return err
	}

	cmd.Printf("%s is installed\n", cfg.Tools.Bundler)
	return nil
}
