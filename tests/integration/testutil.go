// Package integration exercises larder through its public API and the
// built CLI binary.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// larderBin is the path to the built larder binary.
	larderBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// BuildError wraps a build error with the compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot walks up from the working directory looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// testConfigYAML is the config.yaml written into each CLI test
// environment. It declares the User model the CLI tests operate on.
const testConfigYAML = `backend: sqlite
models:
  - name: User
    table: users
    columns:
      - property: id
        type: INTEGER
        primary_key: true
      - property: email
        type: TEXT
        not_null: true
      - property: name
        type: TEXT
      - property: age
        type: INTEGER
`

// TestEnv is an isolated CLI test environment with its own config and
// data directories.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates an isolated environment and writes its config.yaml.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("building larder: %v", buildErr)
	}
	if larderBin == "" {
		t.Fatal("larder binary not built")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	dataDir := filepath.Join(tempDir, "data")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("writing config.yaml: %v", err)
	}

	return &TestEnv{t: t, ConfigDir: configDir, DataDir: dataDir}
}

// CmdResult holds the outcome of one CLI invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunLarder executes the larder CLI against this environment.
func (e *TestEnv) RunLarder(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(larderBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("running larder: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunLarder executes the CLI and fails the test on non-zero exit.
func (e *TestEnv) MustRunLarder(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunLarder(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("larder %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses CLI JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("parsing JSON %q: %v", jsonStr, err)
	}
	return result
}
