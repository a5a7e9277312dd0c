package pkgmanager

import (
	"context"
	"fmt"

	"github.com/ripap/ripsetup/internal/osinfo"
)

// PackageManager abstracts the system package manager. Refresh updates the
// package index; Install installs the named packages.
type PackageManager interface {
	Refresh(ctx context.Context) error
	Install(ctx context.Context, packages ...string) error
}

func NewPackageManager(kind osinfo.PackageManagerKind) (PackageManager, error) {
	switch kind {
	case osinfo.PackageManagerAPT:
		return NewAPTInstaller(), nil
	case osinfo.PackageManagerDNF:
		return NewDNFInstaller(), nil
	case osinfo.PackageManagerPacman:
		return NewPacmanInstaller(), nil
	default:
		return nil, fmt.Errorf("unsupported package manager: %s", kind)
	}
}
