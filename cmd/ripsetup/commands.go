package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ripap/ripsetup/internal/bootstrap"
	"github.com/ripap/ripsetup/internal/config"
	"github.com/ripap/ripsetup/internal/delegate"
	"github.com/ripap/ripsetup/internal/deps"
	"github.com/ripap/ripsetup/internal/errdefs"
	"github.com/ripap/ripsetup/internal/log"
	"github.com/ripap/ripsetup/internal/osinfo"
	"github.com/ripap/ripsetup/internal/pkgmanager"
	"github.com/ripap/ripsetup/internal/prompt"
	"github.com/ripap/ripsetup/internal/source"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ripsetup",
	Short: "Bootstrap the ripap access point installer",
	Long:  "Prepares the host to run the ripap access point installer: checks dependencies, acquires the installer from a repository or a local file, and runs it.",
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		configPath, _ := cmd.Flags().GetString("config")
		runSetup(debug, configPath)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ripsetup %s\n", Version)
	},
}

func runSetup(debug bool, configPath string) {
	log.SetDebug(debug)

	fs := afero.NewOsFs()
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.LogFile != "" {
		log.TeeToFile(cfg.LogFile)
	}

	// Installing packages needs root; the rest of the flow does not.
	if os.Geteuid() != 0 {
		log.Warn("Not running as root; package installation may fail")
	}

	fmt.Print(renderBanner())

	info, err := osinfo.Detect(fs)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Detected %s (%s)", info.PrettyName, info.PkgManager)

	pkgMgr, err := pkgmanager.NewPackageManager(info.PkgManager)
	if err != nil {
		log.Fatal(err)
	}

	orch := bootstrap.New(bootstrap.Options{
		Config:      cfg,
		Prompter:    prompt.New(os.Stdin, os.Stdout),
		Checker:     deps.NewChecker(pkgMgr),
		PkgManager:  pkgMgr,
		Resolver:    source.NewResolver(fs, source.GitClone),
		Runner:      delegate.NewRunner(),
		Network:     bootstrap.PingProbe,
		Interpreter: deps.Interpreter(info.PkgManager),
		Pip:         deps.Pip(info.PkgManager),
		Git:         deps.Git(),
	})

	if err := orch.Run(context.Background()); err != nil {
		log.Error(err)
		log.CloseFile()

		// The delegate's own status wins when it ran and failed.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(delegate.ExitCode(err))
		}
		os.Exit(errdefs.ExitCodeFor(err))
	}

	log.Info("Setup complete")
}
