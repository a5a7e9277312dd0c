package osinfo

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"github.com/ripap/ripsetup/internal/errdefs"
	"github.com/spf13/afero"
)

// PackageManagerKind identifies the system package manager family.
type PackageManagerKind string

const (
	PackageManagerAPT    PackageManagerKind = "apt"
	PackageManagerDNF    PackageManagerKind = "dnf"
	PackageManagerPacman PackageManagerKind = "pacman"
)

// OSInfo contains the detected host information.
type OSInfo struct {
	ID         string
	IDLike     []string
	VersionID  string
	PrettyName string
	PkgManager PackageManagerKind
}

// kindByID maps os-release IDs (and ID_LIKE families) to a package manager.
var kindByID = map[string]PackageManagerKind{
	"debian":   PackageManagerAPT,
	"raspbian": PackageManagerAPT,
	"ubuntu":   PackageManagerAPT,
	"fedora":   PackageManagerDNF,
	"arch":     PackageManagerPacman,
	"cachyos":  PackageManagerPacman,
}

// Detect reads /etc/os-release from the given filesystem and resolves the
// package manager for the host.
func Detect(fs afero.Fs) (*OSInfo, error) {
	if runtime.GOOS != "linux" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeNotLinux,
			fmt.Sprintf("only linux is supported, but I found %s", runtime.GOOS))
	}
	return parseOSRelease(fs, "/etc/os-release")
}

func parseOSRelease(fs afero.Fs, path string) (*OSInfo, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer file.Close()

	info := &OSInfo{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := strings.Trim(parts[1], "\"")

		switch key {
		case "ID":
			info.ID = value
		case "ID_LIKE":
			info.IDLike = strings.Fields(value)
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	kind, ok := resolveKind(info)
	if !ok {
		return nil, fmt.Errorf("no supported package manager for distribution %q", info.ID)
	}
	info.PkgManager = kind
	return info, nil
}

func resolveKind(info *OSInfo) (PackageManagerKind, bool) {
	if kind, ok := kindByID[info.ID]; ok {
		return kind, true
	}
	for _, like := range info.IDLike {
		if kind, ok := kindByID[like]; ok {
			return kind, true
		}
	}
	return "", false
}
