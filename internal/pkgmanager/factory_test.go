package pkgmanager

import (
	"testing"

	"github.com/ripap/ripsetup/internal/osinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageManager(t *testing.T) {
	pm, err := NewPackageManager(osinfo.PackageManagerAPT)
	require.NoError(t, err)
	assert.IsType(t, &APTInstaller{}, pm)

	pm, err = NewPackageManager(osinfo.PackageManagerDNF)
	require.NoError(t, err)
	assert.IsType(t, &DNFInstaller{}, pm)

	pm, err = NewPackageManager(osinfo.PackageManagerPacman)
	require.NoError(t, err)
	assert.IsType(t, &PacmanInstaller{}, pm)
}

func TestNewPackageManagerUnsupported(t *testing.T) {
	_, err := NewPackageManager("portage")
	assert.ErrorContains(t, err, "unsupported package manager")
}

func TestInstallNoPackagesIsNoop(t *testing.T) {
	// No packages means no subprocess; must succeed on any host.
	assert.NoError(t, NewAPTInstaller().Install(t.Context()))
	assert.NoError(t, NewDNFInstaller().Install(t.Context()))
	assert.NoError(t, NewPacmanInstaller().Install(t.Context()))
}
