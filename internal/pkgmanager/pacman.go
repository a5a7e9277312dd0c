package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ripap/ripsetup/internal/log"
)

type PacmanInstaller struct{}

func NewPacmanInstaller() *PacmanInstaller {
	return &PacmanInstaller{}
}

func (p *PacmanInstaller) Refresh(ctx context.Context) error {
	log.Debug("Synchronizing pacman package databases...")

	cmd := exec.CommandContext(ctx, "pacman", "-Sy", "--noconfirm")
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Error synchronizing pacman: %s", string(output))
		return fmt.Errorf("failed to synchronize pacman: %w", err)
	}
	return nil
}

func (p *PacmanInstaller) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}

	log.Infof("Installing packages: %s", strings.Join(packages, ", "))

	args := append([]string{"-S", "--needed", "--noconfirm"}, packages...)
	cmd := exec.CommandContext(ctx, "pacman", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Errorf("Package installation failed: %s", string(output))
		return fmt.Errorf("failed to install packages: %w", err)
	}

	log.Debug("Package installation completed successfully")
	return nil
}
