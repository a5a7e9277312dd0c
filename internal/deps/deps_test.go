package deps

import (
	"context"
	"errors"
	"testing"

	"github.com/ripap/ripsetup/internal/errdefs"
	"github.com/ripap/ripsetup/internal/osinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePM struct {
	installed  [][]string
	installErr error
}

func (f *fakePM) Refresh(ctx context.Context) error { return nil }

func (f *fakePM) Install(ctx context.Context, packages ...string) error {
	f.installed = append(f.installed, packages)
	return f.installErr
}

func checkerWith(pm *fakePM, present map[string]bool) *Checker {
	return NewCheckerWithLookPath(pm, func(file string) (string, error) {
		if present[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("executable file not found in $PATH")
	})
}

func TestEnsureAlreadyInstalled(t *testing.T) {
	pm := &fakePM{}
	c := checkerWith(pm, map[string]bool{"python3": true})

	err := c.Ensure(t.Context(), Interpreter(osinfo.PackageManagerAPT))
	require.NoError(t, err)
	assert.Empty(t, pm.installed, "no install when probe succeeds")
}

func TestEnsureInstallsWhenMissing(t *testing.T) {
	pm := &fakePM{}
	c := checkerWith(pm, map[string]bool{})

	err := c.Ensure(t.Context(), Pip(osinfo.PackageManagerAPT))
	require.NoError(t, err)
	require.Len(t, pm.installed, 1)
	assert.Equal(t, []string{"python3-pip"}, pm.installed[0])
}

func TestEnsureInstallFailureIsDependencyError(t *testing.T) {
	pm := &fakePM{installErr: errors.New("exit status 100")}
	c := checkerWith(pm, map[string]bool{})

	err := c.Ensure(t.Context(), Git())
	require.Error(t, err)
	assert.Equal(t, errdefs.ExitDependency, errdefs.ExitCodeFor(err))
}

func TestStatus(t *testing.T) {
	c := checkerWith(&fakePM{}, map[string]bool{"git": true})

	assert.Equal(t, StatusInstalled, c.Status(Git()))
	assert.Equal(t, StatusMissing, c.Status(Interpreter(osinfo.PackageManagerAPT)))
}

func TestPackagesByDistroFamily(t *testing.T) {
	assert.Equal(t, []string{"python3"}, Interpreter(osinfo.PackageManagerAPT).Packages)
	assert.Equal(t, []string{"python3"}, Interpreter(osinfo.PackageManagerDNF).Packages)
	assert.Equal(t, []string{"python"}, Interpreter(osinfo.PackageManagerPacman).Packages)
	assert.Equal(t, []string{"python-pip"}, Pip(osinfo.PackageManagerPacman).Packages)
}
