// Package toolchain maps a package manager to the concrete commands the
// scaffolding flow needs from it.
package toolchain

import (
	"fmt"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/runner"
)

// PackageManager names a supported JavaScript package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// DefaultPackageManager is used when nothing is configured.
const DefaultPackageManager = NPM

// DefaultGenerator is the generator package run through the package runner.
const DefaultGenerator = "create-vite@latest"

// DefaultTailwindPackage pins the major version whose CLI still ships `init`.
const DefaultTailwindPackage = "tailwindcss@3"

// ValidPackageManagers returns all supported package manager names.
func ValidPackageManagers() []string {
	return []string{string(NPM), string(PNPM), string(Bun)}
}

// ParsePackageManager converts a name to a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	switch PackageManager(s) {
	case NPM, PNPM, Bun:
		return PackageManager(s), nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unsupported package manager: %q", s), "", "packageManager",
			"Valid package managers: "+strings.Join(ValidPackageManagers(), ", "))
	}
}

// Toolset builds the external commands for one package manager.
// Every builder takes the working directory explicitly.
type Toolset struct {
	PackageManager PackageManager

	// Generator is the project generator package, e.g. "create-vite@latest".
	Generator string

	// TailwindPackage is the framework package specifier installed by the styling stage.
	TailwindPackage string
}

// New returns a Toolset with default generator and framework packages.
func New(pm PackageManager) Toolset {
	return Toolset{
		PackageManager:  pm,
		Generator:       DefaultGenerator,
		TailwindPackage: DefaultTailwindPackage,
	}
}

// exec returns the package runner (npx and friends) and its leading args.
func (t Toolset) exec() (string, []string) {
	switch t.PackageManager {
	case PNPM:
		return "pnpm", []string{"dlx"}
	case Bun:
		return "bunx", nil
	default:
		return "npx", nil
	}
}

func (t Toolset) name() string {
	if t.PackageManager == "" {
		return string(DefaultPackageManager)
	}
	return string(t.PackageManager)
}

// Exec builds a package-runner invocation of pkg with args.
func (t Toolset) Exec(dir, pkg string, args ...string) runner.Command {
	name, lead := t.exec()
	all := append(append(lead, pkg), args...)
	return runner.Command{Name: name, Args: all, Dir: dir}
}

// Generate builds the project generator invocation. The generator creates
// a directory called name inside parentDir.
func (t Toolset) Generate(parentDir, name, templateID string) runner.Command {
	return t.Exec(parentDir, t.Generator, name, "--template", templateID)
}

// Install builds the bare dependency install.
func (t Toolset) Install(dir string) runner.Command {
	return runner.Command{Name: t.name(), Args: []string{"install"}, Dir: dir}
}

// AddDev builds a development dependency install for pkgs, keeping their order.
func (t Toolset) AddDev(dir string, pkgs ...string) runner.Command {
	var args []string
	switch t.PackageManager {
	case PNPM:
		args = []string{"add", "-D"}
	case Bun:
		args = []string{"add", "-d"}
	default:
		args = []string{"install", "-D"}
	}
	return runner.Command{Name: t.name(), Args: append(args, pkgs...), Dir: dir}
}

// DevCommand is the command the user runs to start the dev server.
func (t Toolset) DevCommand() string {
	return t.name() + " run dev"
}
