package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Healthire/wasm-bin/internal/config"
	"github.com/Healthire/wasm-bin/internal/tools"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check toolchain and configuration health",
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	var checks []healthCheck

	cfg, cfgErr := config.Load(configPath)
	if cfgErr != nil {
		checks = append(checks, healthCheck{Name: "config", Status: "error", Summary: cfgErr.Error()})
		cfg = config.Default()
	} else {
		checks = append(checks, healthCheck{Name: "config", Status: "ok", Summary: configPath})
	}

	for _, info := range tools.Inspect(cmd.Context(), cfg.Toolchain()) {
		checks = append(checks, toolCheck(cfg, info))
	}

	return writeDoctorResult(cmd, checks)
}

func toolCheck(cfg config.Config, info tools.ToolInfo) healthCheck {
	check := healthCheck{Name: info.Name}
	switch {
	case !info.Available && info.Name == cfg.Tools.PackageManager:
		check.Status = "error"
		check.Summary = fmt.Sprintf("%s not found; the pipeline cannot install anything without it", info.Name)
	case !info.Available:
		check.Status = "warning"
		check.Summary = fmt.Sprintf("%s not found; run `wasm-bin tools install`", info.Name)
	case info.Error != "":
		check.Status = "warning"
		check.Summary = fmt.Sprintf("%s found at %s but version probe failed: %s", info.Name, info.Path, info.Error)
	default:
		check.Status = "ok"
		check.Summary = fmt.Sprintf("%s %s at %s", info.Name, info.Version, info.Path)
	}
	return check
}

func writeDoctorResult(cmd *cobra.Command, checks []healthCheck) error {
	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	failed := false
	for _, check := range checks {
		label := okStyle.Render("ok")
		switch check.Status {
		case "warning":
			label = warnStyle.Render("warning")
		case "error":
			label = errStyle.Render("error")
			failed = true
		}
		cmd.Printf("%s\t%s\t%s\n", label, check.Name, check.Summary)
	}

	if failed {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}
