package tools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
)

func TestCmdRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	result, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, RunOptions{})
	if err != nil {
		t.Fatalf("non-zero exit must not be a runner error, got %v", err)
	}
	if result.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", result.ExitCode)
	}
	if !bytes.Contains(result.Stdout, []byte("out")) {
		t.Fatalf("expected captured stdout, got %q", result.Stdout)
	}
	if !bytes.Contains(result.Stderr, []byte("err")) {
		t.Fatalf("expected captured stderr, got %q", result.Stderr)
	}
}

func TestCmdRunnerMissingBinary(t *testing.T) {
	_, err := CmdRunner{}.Run(context.Background(), "definitely-not-a-real-binary-xyz", nil, RunOptions{})
	if err == nil {
		t.Fatal("expected a spawn error")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected exec.ErrNotFound, got %v", err)
	}
}

func TestCmdRunnerEchoesToWriters(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	var stdout bytes.Buffer
	result, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", "echo hello"}, RunOptions{Stdout: &stdout})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d", result.ExitCode)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("hello")) {
		t.Fatalf("expected echoed stdout, got %q", stdout.String())
	}
}
