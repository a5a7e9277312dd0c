package deps

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ripap/ripsetup/internal/errdefs"
	"github.com/ripap/ripsetup/internal/log"
	"github.com/ripap/ripsetup/internal/osinfo"
	"github.com/ripap/ripsetup/internal/pkgmanager"
)

type DependencyStatus int

const (
	StatusMissing DependencyStatus = iota
	StatusInstalled
)

// Dependency is a required executable plus the packages that provide it.
type Dependency struct {
	Name        string
	Probe       string
	Packages    []string
	Description string
}

// LookPathFunc matches exec.LookPath; injectable for tests.
type LookPathFunc func(file string) (string, error)

type Checker struct {
	pkgManager pkgmanager.PackageManager
	lookPath   LookPathFunc
}

func NewChecker(pm pkgmanager.PackageManager) *Checker {
	return NewCheckerWithLookPath(pm, exec.LookPath)
}

// NewCheckerWithLookPath substitutes the PATH probe, for tests.
func NewCheckerWithLookPath(pm pkgmanager.PackageManager, lookPath LookPathFunc) *Checker {
	return &Checker{
		pkgManager: pm,
		lookPath:   lookPath,
	}
}

func (c *Checker) commandExists(cmd string) bool {
	_, err := c.lookPath(cmd)
	return err == nil
}

// Status probes for the dependency's executable.
func (c *Checker) Status(dep Dependency) DependencyStatus {
	if c.commandExists(dep.Probe) {
		return StatusInstalled
	}
	return StatusMissing
}

// Ensure installs the dependency when its probe fails. An install failure
// is a dependency error and aborts the run.
func (c *Checker) Ensure(ctx context.Context, dep Dependency) error {
	if c.Status(dep) == StatusInstalled {
		log.Debugf("%s is already installed", dep.Name)
		return nil
	}

	log.Infof("%s is not installed, installing...", dep.Name)
	if err := c.pkgManager.Install(ctx, dep.Packages...); err != nil {
		return errdefs.WrapCustomError(errdefs.ErrTypeDependency,
			fmt.Sprintf("failed to install %s", dep.Name), err)
	}
	return nil
}

// Interpreter returns the python3 dependency for the given package manager.
func Interpreter(kind osinfo.PackageManagerKind) Dependency {
	pkg := "python3"
	if kind == osinfo.PackageManagerPacman {
		pkg = "python"
	}
	return Dependency{
		Name:        "python3",
		Probe:       "python3",
		Packages:    []string{pkg},
		Description: "Python 3 interpreter",
	}
}

// Pip returns the pip dependency for the given package manager. Its absence
// is probed independently of the interpreter's.
func Pip(kind osinfo.PackageManagerKind) Dependency {
	pkg := "python3-pip"
	if kind == osinfo.PackageManagerPacman {
		pkg = "python-pip"
	}
	return Dependency{
		Name:        "pip3",
		Probe:       "pip3",
		Packages:    []string{pkg},
		Description: "Python package manager",
	}
}

// Git returns the version-control dependency; installed only on request.
func Git() Dependency {
	return Dependency{
		Name:        "git",
		Probe:       "git",
		Packages:    []string{"git"},
		Description: "Version control system",
	}
}
