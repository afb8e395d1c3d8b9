//go:build basic

package integration

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionCommand verifies the binary reports version details.
func TestVersionCommand(t *testing.T) {
	out := runForOutput(t, "version")
	assert.Contains(t, out, "oddhash CLI")
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Runtime:")
}

// TestScanDefaultView runs a plain scan against the project repo.
func TestScanDefaultView(t *testing.T) {
	out := runForOutput(t, "scan", "--cache-backend", "none")
	assert.Contains(t, out, "Repo:")
}

// TestScanInvalidTier verifies tier validation surfaces as a command failure.
func TestScanInvalidTier(t *testing.T) {
	oddhashPath := getOddhashBinary()
	cmd := exec.Command(oddhashPath, "scan", "--tier", "legendary")
	cmd.Dir = "../"
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "invalid tier")
}

// TestScanAllAndTierConflict verifies the flags are mutually exclusive.
func TestScanAllAndTierConflict(t *testing.T) {
	oddhashPath := getOddhashBinary()
	cmd := exec.Command(oddhashPath, "scan", "--all", "--tier", "rare")
	cmd.Dir = "../"
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

// runForOutput runs the binary from the project root and returns combined output.
func runForOutput(t *testing.T, args ...string) string {
	t.Helper()
	oddhashPath := getOddhashBinary()
	cmd := exec.Command(oddhashPath, args...)
	cmd.Dir = "../"
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	require.NoError(t, cmd.Run())
	return buf.String()
}
