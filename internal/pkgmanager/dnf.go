package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ripap/ripsetup/internal/log"
)

type DNFInstaller struct{}

func NewDNFInstaller() *DNFInstaller {
	return &DNFInstaller{}
}

func (d *DNFInstaller) Refresh(ctx context.Context) error {
	log.Debug("Updating DNF package lists...")

	cmd := exec.CommandContext(ctx, "dnf", "makecache", "--refresh", "-y")
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Error updating dnf: %s", string(output))
		return fmt.Errorf("failed to update dnf: %w", err)
	}
	return nil
}

func (d *DNFInstaller) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}

	log.Infof("Installing packages: %s", strings.Join(packages, ", "))

	args := append([]string{"install", "-y"}, packages...)
	cmd := exec.CommandContext(ctx, "dnf", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Package installation failed: %s", string(output))
		return fmt.Errorf("failed to install packages: %w", err)
	}

	log.Debug("Package installation completed successfully")
	return nil
}
