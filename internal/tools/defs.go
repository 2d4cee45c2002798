package tools

import "runtime"

// Definition contains the metadata required to invoke a managed tool.
type Definition struct {
	Name          string
	VersionSwitch string
}

// Toolchain groups the tools the packaging pipeline depends on.
type Toolchain struct {
	PackageManager Definition
	Bundler        Definition
	// BundlerCLI is the companion package installed alongside the bundler.
	BundlerCLI string
}

// DefaultToolchain returns the yarn/webpack toolchain.
func DefaultToolchain() Toolchain {
	return Toolchain{
		PackageManager: Definition{Name: "yarn", VersionSwitch: "-v"},
		Bundler:        Definition{Name: "webpack", VersionSwitch: "-v"},
		BundlerCLI:     "webpack-cli",
	}
}

// InstallPackages lists the packages the package manager globally adds when
// installing the bundler.
func (tc Toolchain) InstallPackages() []string {
	return []string{tc.Bundler.Name, tc.BundlerCLI}
}

// Executable returns the name used to spawn the tool directly. Windows
// toolchain entry points are batch scripts, so the .cmd suffix is required.
func (d Definition) Executable() string {
	return executableForGOOS(runtime.GOOS, d.Name)
}

// Command returns the program and leading arguments for actually running the
// tool. Batch scripts cannot be spawned as child processes on Windows, so the
// invocation is routed through cmd there; everywhere else the tool runs
// directly. Only fixed tool names ever pass through here.
func (d Definition) Command() (string, []string) {
	return commandForGOOS(runtime.GOOS, d.Name)
}

func executableForGOOS(goos, name string) string {
	if goos == "windows" {
		return name + ".cmd"
	}
	return name
}

func commandForGOOS(goos, name string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/k", name + ".cmd"}
	}
	return name, nil
}
