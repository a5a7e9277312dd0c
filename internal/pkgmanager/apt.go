package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ripap/ripsetup/internal/log"
)

type APTInstaller struct{}

func NewAPTInstaller() *APTInstaller {
	return &APTInstaller{}
}

func (a *APTInstaller) Refresh(ctx context.Context) error {
	log.Debug("Updating APT package lists...")

	cmd := exec.CommandContext(ctx, "apt-get", "update")
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Error updating apt: %s", string(output))
		return fmt.Errorf("failed to update apt: %w", err)
	}
	return nil
}

func (a *APTInstaller) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}

	log.Infof("Installing packages: %s", strings.Join(packages, ", "))

	args := append([]string{"install", "-y"}, packages...)
	cmd := exec.CommandContext(ctx, "apt-get", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Package installation failed: %s", string(output))
		return fmt.Errorf("failed to install packages: %w", err)
	}

	log.Debug("Package installation completed successfully")
	return nil
}
