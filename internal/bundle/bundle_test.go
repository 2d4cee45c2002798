package bundle

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Healthire/wasm-bin/internal/tools"
)

type fakeRunner struct {
	calls  [][]string
	result tools.RunResult
	err    error
}

func (f *fakeRunner) Run(_ context.Context, command string, args []string, _ tools.RunOptions) (tools.RunResult, error) {
	f.calls = append(f.calls, append([]string{command}, args...))
	return f.result, f.err
}

func buildTree(t *testing.T) (root, modulePath string) {
	t.Helper()
	root = t.TempDir()
	buildDir := filepath.Join(root, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		t.Fatalf("mkdir build: %v", err)
	}
	modulePath = filepath.Join(buildDir, "foo.wasm")
	if err := os.WriteFile(modulePath, []byte("\x00asm"), 0o644); err != nil {
		t.Fatalf("write module: %v", err)
	}
	return root, modulePath
}

func testDeps(runner tools.Runner) Deps {
	return Deps{Runner: runner, Toolchain: tools.DefaultToolchain()}
}

func TestPackageSuccess(t *testing.T) {
	root, modulePath := buildTree(t)
	runner := &fakeRunner{result: tools.RunResult{Stdout: []byte("bundled 3 modules")}}

	var stdout bytes.Buffer
	deps := testDeps(runner)
	deps.Stdout = &stdout

	outFile, err := Package(context.Background(), deps, "foo", modulePath)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}

	if outFile != filepath.Join(root, "foo.js") {
		t.Fatalf("expected %s, got %s", filepath.Join(root, "foo.js"), outFile)
	}

	indexContent, err := os.ReadFile(filepath.Join(root, "build", "index.js"))
	if err != nil {
		t.Fatalf("bootstrap missing: %v", err)
	}
	if !strings.Contains(string(indexContent), `import("./foo")`) {
		t.Fatalf("bootstrap does not import the module:\n%s", indexContent)
	}

	htmlContent, err := os.ReadFile(filepath.Join(root, "foo.html"))
	if err != nil {
		t.Fatalf("host page missing: %v", err)
	}
	if !strings.Contains(string(htmlContent), "<script src='./foo.js'>") {
		t.Fatalf("host page does not reference the bundle:\n%s", htmlContent)
	}

	if !strings.Contains(stdout.String(), "bundled 3 modules") {
		t.Fatalf("bundler stdout should be echoed, got %q", stdout.String())
	}
}

func TestPackageInvokesBundlerWithLayout(t *testing.T) {
	root, modulePath := buildTree(t)
	runner := &fakeRunner{}

	if _, err := Package(context.Background(), testDeps(runner), "foo", modulePath); err != nil {
		t.Fatalf("Package: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one bundler invocation, got %d", len(runner.calls))
	}
	joined := strings.Join(runner.calls[0], " ")
	wantEntry := filepath.Join(root, "build", "index.js")
	wantOut := filepath.Join(root, "foo.js")
	if !strings.Contains(joined, wantEntry) {
		t.Fatalf("bundler entry %s missing from %q", wantEntry, joined)
	}
	if !strings.Contains(joined, "--output "+wantOut) {
		t.Fatalf("--output %s missing from %q", wantOut, joined)
	}
	if !strings.Contains(joined, "--mode development") {
		t.Fatalf("default mode missing from %q", joined)
	}
}

func TestPackageModeConfigurable(t *testing.T) {
	_, modulePath := buildTree(t)
	runner := &fakeRunner{}

	deps := testDeps(runner)
	deps.Mode = "production"

	if _, err := Package(context.Background(), deps, "foo", modulePath); err != nil {
		t.Fatalf("Package: %v", err)
	}
	if joined := strings.Join(runner.calls[0], " "); !strings.Contains(joined, "--mode production") {
		t.Fatalf("configured mode missing from %q", joined)
	}
}

func TestPackageBundlerFailureSkipsHostPage(t *testing.T) {
	root, modulePath := buildTree(t)
	runner := &fakeRunner{result: tools.RunResult{ExitCode: 2, Stderr: []byte("module not found")}}

	_, err := Package(context.Background(), testDeps(runner), "foo", modulePath)
	if !errors.Is(err, ErrPackageFailed) {
		t.Fatalf("expected ErrPackageFailed, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "foo.html")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("host page must not be written after a failed bundle")
	}
}

func TestPackageSpawnFailureWrapped(t *testing.T) {
	_, modulePath := buildTree(t)
	spawnErr := errors.New("fork failed")
	runner := &fakeRunner{err: spawnErr}

	_, err := Package(context.Background(), testDeps(runner), "foo", modulePath)
	var cmdErr *tools.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *tools.CommandError, got %v", err)
	}
	if !errors.Is(err, spawnErr) {
		t.Fatalf("expected wrapped spawn error, got %v", err)
	}
}

func TestPackageRejectsBadTargetName(t *testing.T) {
	_, modulePath := buildTree(t)
	runner := &fakeRunner{}

	if _, err := Package(context.Background(), testDeps(runner), "foo/bar", modulePath); err == nil {
		t.Fatal("expected rejection of target name with separator")
	}
	if len(runner.calls) != 0 {
		t.Fatal("bundler must not run for an invalid request")
	}
}
