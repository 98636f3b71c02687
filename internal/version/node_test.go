package version

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// fakeNode replaces the PATH lookup and version command for one test.
func fakeNode(t *testing.T, found bool, output string, runErr error) {
	t.Helper()
	origLook, origVersion := lookPath, nodeVersion
	t.Cleanup(func() { lookPath, nodeVersion = origLook, origVersion })

	lookPath = func(string) (string, error) {
		if !found {
			return "", exec.ErrNotFound
		}
		return "/usr/local/bin/node", nil
	}
	nodeVersion = func(context.Context, string) (string, error) {
		return output, runErr
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"v20.11.1\n", "v20.11.1", false},
		{"18.0.0", "v18.0.0", false},
		{"v22.0.0-nightly2024\n", "v22.0.0-nightly2024", false},
		{"garbage", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, err := extractVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectNode(t *testing.T) {
	tests := []struct {
		name          string
		found         bool
		output        string
		runErr        error
		wantFound     bool
		wantSatisfies bool
		wantVersion   string
	}{
		{"new enough", true, "v20.11.1\n", nil, true, true, "v20.11.1"},
		{"exactly minimum", true, "v17.0.0\n", nil, true, true, "v17.0.0"},
		{"too old", true, "v16.20.2\n", nil, true, false, "v16.20.2"},
		{"missing", false, "", nil, false, false, ""},
		{"command fails", true, "", errors.New("exit status 1"), true, false, ""},
		{"unparseable", true, "hello", nil, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeNode(t, tt.found, tt.output, tt.runErr)

			info, err := DetectNode(context.Background(), DefaultNodeConstraint)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, info.Found)
			assert.Equal(t, tt.wantSatisfies, info.Satisfies)
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.NotEmpty(t, info.Message)
		})
	}
}

func TestDetectNode_InvalidConstraint(t *testing.T) {
	fakeNode(t, true, "v20.0.0", nil)

	_, err := DetectNode(context.Background(), "not a constraint")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestCheckNode(t *testing.T) {
	t.Run("satisfied", func(t *testing.T) {
		fakeNode(t, true, "v20.0.0", nil)
		assert.NoError(t, CheckNode(context.Background(), ">=17"))
	})

	t.Run("too old", func(t *testing.T) {
		fakeNode(t, true, "v16.0.0", nil)
		err := CheckNode(context.Background(), ">=17")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrVersion)
		assert.Contains(t, err.Error(), "found v16.0.0")
		assert.Equal(t, oerrors.ExitVersionMismatch, oerrors.ExitCodeFromError(err))
	})

	t.Run("not found", func(t *testing.T) {
		fakeNode(t, false, "", nil)
		err := CheckNode(context.Background(), ">=17")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})

	t.Run("custom constraint", func(t *testing.T) {
		fakeNode(t, true, "v18.5.0", nil)
		err := CheckNode(context.Background(), ">=20")
		assert.ErrorIs(t, err, oerrors.ErrVersion)
	})
}
