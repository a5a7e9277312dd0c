package osinfo

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, "/etc/os-release", []byte(content), 0644))
}

func TestParseOSReleaseRaspbian(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeOSRelease(t, fs, `PRETTY_NAME="Raspbian GNU/Linux 12 (bookworm)"
NAME="Raspbian GNU/Linux"
VERSION_ID="12"
ID=raspbian
ID_LIKE=debian
`)

	info, err := parseOSRelease(fs, "/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, "raspbian", info.ID)
	assert.Equal(t, "12", info.VersionID)
	assert.Equal(t, "Raspbian GNU/Linux 12 (bookworm)", info.PrettyName)
	assert.Equal(t, PackageManagerAPT, info.PkgManager)
}

func TestParseOSReleaseIDLikeFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeOSRelease(t, fs, `ID=linuxmint
ID_LIKE="ubuntu debian"
PRETTY_NAME="Linux Mint 22"
`)

	info, err := parseOSRelease(fs, "/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, PackageManagerAPT, info.PkgManager)
}

func TestParseOSReleaseFedora(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeOSRelease(t, fs, "ID=fedora\nVERSION_ID=41\n")

	info, err := parseOSRelease(fs, "/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, PackageManagerDNF, info.PkgManager)
}

func TestParseOSReleaseArch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeOSRelease(t, fs, "ID=arch\n")

	info, err := parseOSRelease(fs, "/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, PackageManagerPacman, info.PkgManager)
}

func TestParseOSReleaseUnsupported(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeOSRelease(t, fs, "ID=plan9\n")

	_, err := parseOSRelease(fs, "/etc/os-release")
	assert.ErrorContains(t, err, "no supported package manager")
}

func TestParseOSReleaseMissingFile(t *testing.T) {
	_, err := parseOSRelease(afero.NewMemMapFs(), "/etc/os-release")
	assert.Error(t, err)
}
