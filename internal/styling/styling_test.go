package styling

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactfaststart/cli/internal/project"
	"github.com/reactfaststart/cli/internal/runner"
	"github.com/reactfaststart/cli/internal/templates"
	"github.com/reactfaststart/cli/internal/testutil"
	"github.com/reactfaststart/cli/internal/toolchain"
)

func TestConfigure_TypedTemplate(t *testing.T) {
	root := testutil.ViteProject(t, "demo_app", project.TemplateReactTS, true)
	rec := &runner.Recorder{Handler: testutil.FakeTools(project.TemplateReactTS)}

	changes, err := NewConfigurator(rec, toolchain.New(toolchain.NPM)).Configure(context.Background(), root, project.TemplateReactTS)
	require.NoError(t, err)

	assert.Equal(t, []runner.Command{
		{Name: "npm", Args: []string{"install", "-D", "tailwindcss@3", "postcss", "autoprefixer"}, Dir: root},
		{Name: "npx", Args: []string{"tailwindcss", "init", "-p"}, Dir: root},
	}, rec.Calls())

	wantConfig, err := templates.RenderTailwindConfig(templates.DefaultContentGlobs)
	require.NoError(t, err)
	assert.Equal(t, wantConfig.Content, testutil.ReadFile(t, filepath.Join(root, "tailwind.config.js")))
	assert.Equal(t, templates.TailwindDirectives, testutil.ReadFile(t, filepath.Join(root, "src", "index.css")))
	assert.NoFileExists(t, filepath.Join(root, "src", "App.css"))

	wantApp, err := templates.Render(project.TemplateReactTS, true)
	require.NoError(t, err)
	assert.Equal(t, wantApp.Content, testutil.ReadFile(t, filepath.Join(root, "src", "App.tsx")))

	// The pipeline config belongs to the initializer and is left alone.
	assert.Equal(t, "export default {}\n", testutil.ReadFile(t, filepath.Join(root, "postcss.config.js")))

	assert.Equal(t, []Change{
		{Path: "tailwind.config.js", Kind: ChangeWritten},
		{Path: "src/index.css", Kind: ChangeWritten},
		{Path: "src/App.css", Kind: ChangeRemoved},
		{Path: "src/App.tsx", Kind: ChangeWritten},
	}, changes)
}

func TestConfigure_MissingAppCSSAndSrcDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "bare")
	require.NoError(t, os.MkdirAll(root, 0o755))
	rec := &runner.Recorder{Handler: testutil.FakeTools(project.TemplateReactTS)}

	changes, err := NewConfigurator(rec, toolchain.New(toolchain.NPM)).Configure(context.Background(), root, project.TemplateReact)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, "src"))
	assert.Equal(t, templates.TailwindDirectives, testutil.ReadFile(t, filepath.Join(root, "src", "index.css")))
	assert.FileExists(t, filepath.Join(root, "src", "App.jsx"))
	assert.NoFileExists(t, filepath.Join(root, "src", "App.tsx"))
	for _, c := range changes {
		assert.NotEqual(t, ChangeRemoved, c.Kind, "nothing to remove")
	}
}

func TestConfigure_IsRepeatable(t *testing.T) {
	root := testutil.ViteProject(t, "demo_app", project.TemplateReactTS, true)
	c := NewConfigurator(&runner.Recorder{Handler: testutil.FakeTools(project.TemplateReactTS)}, toolchain.New(toolchain.NPM))

	_, err := c.Configure(context.Background(), root, project.TemplateReactTS)
	require.NoError(t, err)
	first := testutil.ReadFile(t, filepath.Join(root, "src", "index.css"))

	_, err = c.Configure(context.Background(), root, project.TemplateReactTS)
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadFile(t, filepath.Join(root, "src", "index.css")))
}

func TestConfigure_InstallFailureShortCircuits(t *testing.T) {
	root := testutil.ViteProject(t, "demo_app", project.TemplateReactTS, true)
	want := &runner.ToolError{Command: runner.Command{Name: "npm"}, ExitCode: 1}
	rec := &runner.Recorder{Handler: func(runner.Command) error { return want }}

	changes, err := NewConfigurator(rec, toolchain.New(toolchain.NPM)).Configure(context.Background(), root, project.TemplateReactTS)

	assert.True(t, errors.Is(err, want))
	assert.Empty(t, changes)
	assert.Len(t, rec.Calls(), 1, "initializer must not run after a failed install")
	assert.FileExists(t, filepath.Join(root, "src", "App.css"))
	assert.Equal(t, testutil.GeneratedStylesheet, testutil.ReadFile(t, filepath.Join(root, "src", "index.css")))
}

func TestConfigure_InitFailureLeavesFilesAlone(t *testing.T) {
	root := testutil.ViteProject(t, "demo_app", project.TemplateReactTS, true)
	rec := &runner.Recorder{Handler: func(cmd runner.Command) error {
		if cmd.Args[0] == "tailwindcss" {
			return &runner.ToolError{Command: cmd, ExitCode: 127}
		}
		return nil
	}}

	_, err := NewConfigurator(rec, toolchain.New(toolchain.NPM)).Configure(context.Background(), root, project.TemplateReact)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "npx tailwindcss init -p failed with exit code 127")
	assert.NoFileExists(t, filepath.Join(root, "tailwind.config.js"))
	assert.FileExists(t, filepath.Join(root, "src", "App.css"))
}

func TestConfigure_CustomContentGlobs(t *testing.T) {
	root := testutil.ViteProject(t, "demo_app", project.TemplateReactTS, false)
	c := NewConfigurator(&runner.Recorder{Handler: testutil.FakeTools(project.TemplateReactTS)}, toolchain.New(toolchain.NPM))
	c.ContentGlobs = []string{"./src/**/*.tsx"}

	_, err := c.Configure(context.Background(), root, project.TemplateReactTS)
	require.NoError(t, err)

	cfg := testutil.ReadFile(t, filepath.Join(root, "tailwind.config.js"))
	assert.Contains(t, cfg, `"./src/**/*.tsx"`)
	assert.NotContains(t, cfg, "index.html")
}
