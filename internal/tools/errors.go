package tools

import (
	"errors"
	"fmt"
)

var (
	// ErrInstallDeclined is returned when the bundler is missing and the user
	// declined to install it.
	ErrInstallDeclined = errors.New("bundler missing and install declined")
	// ErrInstallFailed is returned when the package manager exited non-zero
	// while installing the bundler.
	ErrInstallFailed = errors.New("bundler install failed")
)

// FatalError marks a condition no caller can remediate, such as a missing
// package manager. The pipeline returns it like any other error; only the CLI
// boundary turns it into a process abort.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

// CommandError wraps an OS-level spawn failure for a tool invocation.
type CommandError struct {
	Tool string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s command: %v", e.Tool, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
