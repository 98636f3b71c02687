package workspace

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

type stubConfirmer struct {
	answer bool
	err    error
	calls  int
	titles []string
	onAsk  func()
}

func (s *stubConfirmer) Confirm(title string, defaultYes bool) (bool, error) {
	s.calls++
	s.titles = append(s.titles, title)
	if defaultYes {
		panic("overwrite prompt must default to no")
	}
	if s.onAsk != nil {
		s.onAsk()
	}
	return s.answer, s.err
}

// snapshot maps every path under root to its content ("" for directories).
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			out[rel+"/"] = ""
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[rel] = string(b)
		return nil
	})
	require.NoError(t, err)
	return out
}

func seedProject(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"demo"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "App.jsx"), []byte("old"), 0o644))
}

func TestResolve_AbsentPathIsCleanWithoutPrompt(t *testing.T) {
	c := &stubConfirmer{}
	r := NewResolver(c)
	target := filepath.Join(t.TempDir(), "demo")

	for i := 0; i < 3; i++ {
		action, err := r.Resolve(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, ActionClean, action)
	}

	assert.Zero(t, c.calls, "must not prompt when nothing exists")
	assert.NoDirExists(t, target)
}

func TestResolve_DeclineLeavesTreeUntouched(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	seedProject(t, target)
	before := snapshot(t, target)

	c := &stubConfirmer{answer: false}
	action, err := NewResolver(c).Resolve(context.Background(), target)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	assert.Equal(t, ActionClean, action)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "Directory 'demo' already exists. Overwrite?", c.titles[0])
	assert.Equal(t, before, snapshot(t, target))
}

func TestResolve_ConfirmRemovesTree(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	seedProject(t, target)

	action, err := NewResolver(&stubConfirmer{answer: true}).Resolve(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, ActionOverwritten, action)
	assert.NoDirExists(t, target)
}

func TestResolve_ExistingFileIsAConflictToo(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	action, err := NewResolver(&stubConfirmer{answer: true}).Resolve(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, ActionOverwritten, action)
	assert.NoFileExists(t, target)
}

func TestResolve_ConcurrentDisappearanceIsNotAnError(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	seedProject(t, target)

	c := &stubConfirmer{answer: true, onAsk: func() {
		require.NoError(t, os.RemoveAll(target))
	}}
	action, err := NewResolver(c).Resolve(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, ActionOverwritten, action)
}

func TestResolve_PromptErrorPropagates(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	seedProject(t, target)

	want := errors.New("terminal closed")
	_, err := NewResolver(&stubConfirmer{err: want}).Resolve(context.Background(), target)

	assert.ErrorIs(t, err, want)
	assert.DirExists(t, target)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "clean", ActionClean.String())
	assert.Equal(t, "overwritten", ActionOverwritten.String())
	assert.Equal(t, "Action(7)", Action(7).String())
}
