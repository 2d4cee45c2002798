package tools

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ToolInfo captures availability and version details for an external tool.
type ToolInfo struct {
	Name      string `json:"name"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// Inspect discovers availability and version information for every tool in
// the toolchain. Unlike Probe it resolves paths through PATH lookup and reads
// version output, so it is for reporting, not for pipeline gating.
func Inspect(ctx context.Context, tc Toolchain) []ToolInfo {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}

	defs := []Definition{tc.PackageManager, tc.Bundler}
	infos := make([]ToolInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, inspectOne(ctx, def))
	}
	return infos
}

func inspectOne(ctx context.Context, def Definition) ToolInfo {
	path, err := exec.LookPath(def.Executable())
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ToolInfo{Name: def.Name, Available: false, Error: "not found"}
		}
		return ToolInfo{Name: def.Name, Available: false, Error: err.Error()}
	}

	version, err := readVersion(ctx, path, def)
	if err != nil {
		return ToolInfo{Name: def.Name, Path: path, Available: true, Error: err.Error()}
	}
	return ToolInfo{Name: def.Name, Path: path, Version: version, Available: true}
}

func readVersion(ctx context.Context, path string, def Definition) (string, error) {
	cmd := exec.CommandContext(ctx, path, def.VersionSwitch)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return firstLine(strings.TrimSpace(string(output))), nil
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
