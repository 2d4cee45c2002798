package tools

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Presence classifies the outcome of probing a tool.
type Presence int

const (
	PresenceUnknown Presence = iota
	PresencePresent
	PresenceAbsent
)

// Probe runs the tool's version switch and reports whether the tool is
// reachable. The probe deliberately uses the bare executable name instead of
// the cmd-wrapped invocation: a Windows batch script will not actually execute
// this way, but the spawn still fails with a not-found error when the script
// is missing, which is the only signal the probe needs. Output is discarded;
// a tool that runs and exits non-zero still counts as present.
func Probe(ctx context.Context, runner Runner, def Definition) (Presence, error) {
	_, err := runner.Run(ctx, def.Executable(), []string{def.VersionSwitch}, RunOptions{})
	if err == nil {
		return PresencePresent, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return PresenceAbsent, nil
	}
	return PresenceUnknown, &CommandError{Tool: def.Name, Err: err}
}
