package tools

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// Confirmer asks the user a single yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Deps carries the collaborators for presence checks and installation.
type Deps struct {
	Runner    Runner
	Confirmer Confirmer
	Toolchain Toolchain
	// Diag receives captured stderr from failed installs. Defaults to
	// io.Discard when nil.
	Diag   io.Writer
	Logger *log.Logger
}

func (d Deps) diag() io.Writer {
	if d.Diag == nil {
		return io.Discard
	}
	return d.Diag
}

func (d Deps) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// EnsurePackageManager verifies the package manager is reachable. Absence is
// unrecoverable for the pipeline, so it surfaces as a FatalError for the CLI
// boundary to abort on; any other probe failure is an ordinary error.
func EnsurePackageManager(ctx context.Context, deps Deps) error {
	pm := deps.Toolchain.PackageManager
	presence, err := Probe(ctx, deps.Runner, pm)
	if err != nil {
		return err
	}
	if presence == PresenceAbsent {
		msg := fmt.Sprintf("No installation of %s found. %s is required to install %s.",
			pm.Name, pm.Name, deps.Toolchain.Bundler.Name)
		if hints := InstallHints(pm.Name); len(hints) > 0 {
			msg += "\n" + strings.Join(hints, "\n")
		}
		return &FatalError{Message: msg}
	}
	return nil
}

// InstallIfRequired makes sure the bundler is available, installing it through
// the package manager when missing. With skipPrompt set the confirmation step
// is bypassed entirely; otherwise the user is asked exactly once, and only
// when the bundler is actually absent.
func InstallIfRequired(ctx context.Context, deps Deps, skipPrompt bool) error {
	if err := EnsurePackageManager(ctx, deps); err != nil {
		return err
	}

	presence, err := Probe(ctx, deps.Runner, deps.Toolchain.Bundler)
	if err != nil {
		return err
	}
	if presence == PresencePresent {
		deps.logf("bundler %s present", deps.Toolchain.Bundler.Name)
		return nil
	}

	if !skipPrompt {
		ok, err := deps.Confirmer.Confirm(fmt.Sprintf(
			"No installation of %s found. Do you want to install %s?",
			deps.Toolchain.Bundler.Name, deps.Toolchain.Bundler.Name))
		if err != nil {
			return fmt.Errorf("confirm install: %w", err)
		}
		if !ok {
			return ErrInstallDeclined
		}
	}

	return install(ctx, deps)
}

func install(ctx context.Context, deps Deps) error {
	name, args := deps.Toolchain.PackageManager.Command()
	args = append(args, "global", "add")
	args = append(args, deps.Toolchain.InstallPackages()...)

	deps.logf("installing: %s %s", name, strings.Join(args, " "))
	result, err := deps.Runner.Run(ctx, name, args, RunOptions{})
	if err != nil {
		return &CommandError{Tool: deps.Toolchain.PackageManager.Name, Err: err}
	}
	if result.ExitCode != 0 {
		fmt.Fprintln(deps.diag(), string(result.Stderr))
		return ErrInstallFailed
	}
	return nil
}
