package bootstrap

import (
	"context"
	"os/exec"

	"github.com/ripap/ripsetup/internal/log"
)

// PingProbe checks connectivity the same way the installer's target docs
// recommend: four ICMP echoes against a public resolver. On failure it logs
// interface state to help diagnose the problem.
func PingProbe(ctx context.Context) bool {
	log.Debug("Checking internet connection...")

	cmd := exec.CommandContext(ctx, "ping", "-c", "4", "8.8.8.8")
	if err := cmd.Run(); err == nil {
		log.Debug("Internet connection is active")
		return true
	}

	diagnoseNetwork(ctx)
	return false
}

func diagnoseNetwork(ctx context.Context) {
	output, err := exec.CommandContext(ctx, "ip", "addr", "show").CombinedOutput()
	if err != nil {
		log.Debugf("Failed to retrieve network interfaces: %v", err)
		return
	}
	log.Debugf("Network interfaces:\n%s", string(output))
}
