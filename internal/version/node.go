package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// DefaultNodeConstraint is the oldest Node.js release the generator and
// Tailwind tooling support.
const DefaultNodeConstraint = ">=17"

// nodeVersionRegex matches `node --version` output like "v20.11.1".
var nodeVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// Seams for tests.
var (
	lookPath    = exec.LookPath
	nodeVersion = runNodeVersion
)

// RuntimeInfo describes the Node.js binary found on PATH.
type RuntimeInfo struct {
	// Version is the detected version, with a "v" prefix.
	Version string `json:"version"`

	// Path is the path to the node binary.
	Path string `json:"path"`

	// Found indicates if node was found on PATH.
	Found bool `json:"found"`

	// Satisfies indicates if Version meets the constraint.
	Satisfies bool `json:"satisfies"`

	// Message explains the result.
	Message string `json:"message,omitempty"`
}

// String returns a human-readable runtime info string.
func (r RuntimeInfo) String() string {
	if !r.Found {
		return "  Version: not found\n  Path:    -"
	}
	return fmt.Sprintf("  Version: %s (%s)\n  Path:    %s", r.Version, r.Message, r.Path)
}

// DetectNode finds node on PATH and checks its version against constraint.
// An invalid constraint is returned as an error; everything else is
// reported through RuntimeInfo.
func DetectNode(ctx context.Context, constraint string) (RuntimeInfo, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return RuntimeInfo{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid Node.js version constraint %q", constraint),
			"", "preflight.node", "use a semver constraint such as \">=17\"")
	}

	path, err := lookPath("node")
	if err != nil {
		return RuntimeInfo{Message: "node not found in PATH"}, nil
	}

	out, err := nodeVersion(ctx, path)
	if err != nil {
		return RuntimeInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get node version: " + err.Error(),
		}, nil
	}

	raw, err := extractVersion(out)
	if err != nil {
		return RuntimeInfo{Path: path, Found: true, Message: err.Error()}, nil
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return RuntimeInfo{Version: raw, Path: path, Found: true, Message: err.Error()}, nil
	}

	info := RuntimeInfo{
		Version:   raw,
		Path:      path,
		Found:     true,
		Satisfies: c.Check(v),
	}
	if info.Satisfies {
		info.Message = "ok"
	} else {
		info.Message = "requires " + constraint
	}
	return info, nil
}

// CheckNode fails unless a node binary satisfying constraint is available.
func CheckNode(ctx context.Context, constraint string) error {
	info, err := DetectNode(ctx, constraint)
	if err != nil {
		return err
	}

	switch {
	case !info.Found:
		return &oerrors.DetailError{
			Type:    "runtime not found",
			Message: "Node.js is required but was not found in PATH",
			Hint:    "Install Node.js " + constraint + " from https://nodejs.org",
			Cause:   oerrors.ErrNotFound,
		}
	case !info.Satisfies:
		found := info.Version
		if found == "" {
			found = "unknown"
		}
		return &oerrors.DetailError{
			Type:     "runtime version mismatch",
			Message:  fmt.Sprintf("Node.js %s is required, found %s", constraint, found),
			Location: info.Path,
			Hint:     "Upgrade Node.js, or pass --skip-preflight to continue anyway",
			Cause:    oerrors.ErrVersion,
		}
	}
	return nil
}

func runNodeVersion(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// extractVersion pulls the first version number out of command output.
func extractVersion(output string) (string, error) {
	match := nodeVersionRegex.FindString(strings.TrimSpace(output))
	if match == "" {
		return "", fmt.Errorf("failed to parse node version from output: %q", output)
	}
	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}
