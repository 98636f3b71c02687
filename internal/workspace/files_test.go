package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/templates"
)

func TestWriteFile_CreatesParentsAndOverwrites(t *testing.T) {
	root := t.TempDir()
	f := templates.File{Path: "src/index.css", Content: "new\n"}

	require.NoError(t, WriteFile(root, f))
	assert.FileExists(t, filepath.Join(root, "src", "index.css"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "index.css"), []byte("a much longer existing body\n"), 0o644))
	require.NoError(t, WriteFile(root, f))

	got, err := os.ReadFile(filepath.Join(root, "src", "index.css"))
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestWriteFile_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o500))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	err := WriteFile(root, templates.File{Path: "tailwind.config.js", Content: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFilesystem))
	assert.True(t, errors.Is(err, oerrors.ErrPermission))
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.css")
	require.NoError(t, os.WriteFile(path, []byte("body{}"), 0o644))

	removed, err := RemoveIfExists(path)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, path)

	removed, err = RemoveIfExists(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
