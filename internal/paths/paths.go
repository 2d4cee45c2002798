package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// BundleLayout captures the canonical locations the packaging pipeline writes
// to, all derived from the compiled module's path.
type BundleLayout struct {
	// BuildDir is the directory containing the compiled module; the JS
	// bootstrap is written here.
	BuildDir string
	// OutDir is the parent of BuildDir; the bundled script and host page
	// land here.
	OutDir string
	// IndexJS is the bundler entry point inside BuildDir.
	IndexJS string
	// OutFile is the final bundled script path.
	OutFile string
	// HTMLFile is the host page path.
	HTMLFile string
}

// ForModule derives the bundle layout for a target. The target name must be a
// bare filename stem and the compiled module's directory must already exist.
func ForModule(targetName, modulePath string) (BundleLayout, error) {
	if err := validateTargetName(targetName); err != nil {
		return BundleLayout{}, err
	}

	buildDir := filepath.Dir(modulePath)
	info, err := os.Stat(buildDir)
	if err != nil {
		return BundleLayout{}, fmt.Errorf("stat build dir: %w", err)
	}
	if !info.IsDir() {
		return BundleLayout{}, fmt.Errorf("build dir is not a directory: %s", buildDir)
	}

	outDir := filepath.Dir(buildDir)
	return BundleLayout{
		BuildDir: buildDir,
		OutDir:   outDir,
		IndexJS:  filepath.Join(buildDir, "index.js"),
		OutFile:  filepath.Join(outDir, targetName+".js"),
		HTMLFile: filepath.Join(outDir, targetName+".html"),
	}, nil
}

func validateTargetName(name string) error {
	if name == "" {
		return fmt.Errorf("target name is empty")
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("target name must be a bare filename stem: %s", name)
	}
	return nil
}

// LogsRoot determines the per-user directory for run logs.
func LogsRoot() (string, error) {
	if override, ok := os.LookupEnv("WASM_BIN_LOGS_DIR"); ok && override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve WASM_BIN_LOGS_DIR: %w", err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "wasm-bin"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "wasm-bin", "logs"), nil
		}
		return filepath.Join(home, "AppData", "Local", "wasm-bin", "logs"), nil
	default:
		return filepath.Join(home, ".local", "state", "wasm-bin", "logs"), nil
	}
}
