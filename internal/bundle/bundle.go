// Package bundle runs the packaging pipeline: scaffold the JS bootstrap,
// invoke the bundler against it, then scaffold the HTML host page around the
// bundled output.
package bundle

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/Healthire/wasm-bin/internal/paths"
	"github.com/Healthire/wasm-bin/internal/scaffold"
	"github.com/Healthire/wasm-bin/internal/tools"
)

// ErrPackageFailed is returned when the bundler exited non-zero. No output
// file is guaranteed to exist in that case.
var ErrPackageFailed = errors.New("bundler failed to package the module")

// DefaultMode is the bundling mode used when none is configured. Development
// mode skips minification; this tool exists for local iteration.
const DefaultMode = "development"

// Deps carries the pipeline collaborators.
type Deps struct {
	Runner    tools.Runner
	Toolchain tools.Toolchain
	// Mode selects the bundler mode; empty means DefaultMode.
	Mode string
	// Stdout receives the bundler's output on success. Defaults to discard.
	Stdout io.Writer
	Logger *log.Logger
}

func (d Deps) mode() string {
	if d.Mode == "" {
		return DefaultMode
	}
	return d.Mode
}

func (d Deps) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// Package bundles the compiled module at modulePath into a single browser
// deliverable. It writes the JS bootstrap next to the module, runs the
// bundler into the parent directory, writes the host page there, and returns
// the bundled script's path. Every step short-circuits on failure; the host
// page is only written after a successful bundle.
func Package(ctx context.Context, deps Deps, targetName, modulePath string) (string, error) {
	layout, err := paths.ForModule(targetName, modulePath)
	if err != nil {
		return "", err
	}

	if _, err := scaffold.WriteJSIndex(targetName, layout.BuildDir); err != nil {
		return "", err
	}

	name, args := deps.Toolchain.Bundler.Command()
	args = append(args, layout.IndexJS, "--output", layout.OutFile, "--mode", deps.mode())

	deps.logf("bundling %s: %s %v", targetName, name, args)
	result, err := deps.Runner.Run(ctx, name, args, tools.RunOptions{})
	if err != nil {
		return "", &tools.CommandError{Tool: deps.Toolchain.Bundler.Name, Err: err}
	}
	if result.ExitCode != 0 {
		deps.logf("bundler exited %d: %s", result.ExitCode, result.Stderr)
		return "", ErrPackageFailed
	}
	if deps.Stdout != nil {
		deps.Stdout.Write(result.Stdout)
	}

	if _, err := scaffold.WriteHTMLIndex(targetName, layout.OutDir); err != nil {
		return "", err
	}

	return layout.OutFile, nil
}
