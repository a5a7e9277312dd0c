package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/ripap/ripsetup/internal/config"
	"github.com/ripap/ripsetup/internal/deps"
	"github.com/ripap/ripsetup/internal/log"
	"github.com/ripap/ripsetup/internal/pkgmanager"
	"github.com/ripap/ripsetup/internal/prompt"
	"github.com/ripap/ripsetup/internal/source"
)

// DelegateRunner invokes the downstream installer.
type DelegateRunner interface {
	Run(ctx context.Context, path, dir string, args ...string) error
}

// NetworkProbe reports whether the host has internet connectivity.
type NetworkProbe func(ctx context.Context) bool

// Orchestrator drives the bootstrap flow to a terminal state: a delegate
// invocation, a graceful skip, or a reported failure. Every step guards
// against partial prior runs, so re-running is always safe.
type Orchestrator struct {
	cfg      config.Config
	prompter *prompt.Prompter
	checker  *deps.Checker
	pkgMgr   pkgmanager.PackageManager
	resolver *source.Resolver
	runner   DelegateRunner
	network  NetworkProbe
	reqs     dependencies
}

// Options collects the orchestrator's collaborators.
type Options struct {
	Config      config.Config
	Prompter    *prompt.Prompter
	Checker     *deps.Checker
	PkgManager  pkgmanager.PackageManager
	Resolver    *source.Resolver
	Runner      DelegateRunner
	Network     NetworkProbe
	Interpreter deps.Dependency
	Pip         deps.Dependency
	Git         deps.Dependency
}

type dependencies struct {
	interpreter deps.Dependency
	pip         deps.Dependency
	git         deps.Dependency
}

func New(opts Options) *Orchestrator {
	return &Orchestrator{
		cfg:      opts.Config,
		prompter: opts.Prompter,
		checker:  opts.Checker,
		pkgMgr:   opts.PkgManager,
		resolver: opts.Resolver,
		runner:   opts.Runner,
		network:  opts.Network,
		reqs: dependencies{
			interpreter: opts.Interpreter,
			pip:         opts.Pip,
			git:         opts.Git,
		},
	}
}

// Run executes the bootstrap flow. A nil return means a graceful terminal
// state was reached, including the "nothing installed, by user choice" one.
func (o *Orchestrator) Run(ctx context.Context) error {
	// Connectivity preflight and index refresh are best-effort: a failure
	// only affects the accuracy of later dependency checks.
	if o.network != nil && !o.network(ctx) {
		log.Warn("No internet connection detected; dependency checks may be stale")
	}
	if err := o.pkgMgr.Refresh(ctx); err != nil {
		log.Warnf("Package index refresh failed, continuing: %v", err)
	}

	if err := o.checker.Ensure(ctx, o.reqs.interpreter); err != nil {
		return err
	}
	if err := o.checker.Ensure(ctx, o.reqs.pip); err != nil {
		return err
	}

	installGit, err := o.prompter.Confirm("Do you want to install git? (y/n): ")
	if err != nil {
		return err
	}
	if installGit {
		if err := o.checker.Ensure(ctx, o.reqs.git); err != nil {
			return err
		}
	}

	loc, done, err := o.resolveSource(ctx)
	if err != nil || done {
		return err
	}

	return o.invoke(ctx, loc)
}

// resolveSource runs the user-directed acquisition branch. done is true for
// the decline-everything terminal state.
func (o *Orchestrator) resolveSource(ctx context.Context) (source.Location, bool, error) {
	clone, err := o.prompter.Confirm("Clone the installer repository? (y/n): ")
	if err != nil {
		return source.Location{}, false, err
	}

	if clone {
		loc, err := o.resolveCheckout(ctx)
		return loc, false, err
	}

	local, err := o.prompter.Confirm("Proceed with a local installation instead? (y/n): ")
	if err != nil {
		return source.Location{}, false, err
	}
	if !local {
		log.Info("Nothing to install; exiting at user request")
		return source.Location{}, true, nil
	}

	path, err := o.prompter.Line("Path to the installer file: ")
	if err != nil {
		return source.Location{}, false, err
	}
	loc, err := o.resolver.LocalFile(path)
	if err != nil {
		return source.Location{}, false, err
	}
	return loc, false, nil
}

// resolveCheckout handles the existing-directory conflict: only the exact
// response "del" replaces the checkout; anything else reuses it.
func (o *Orchestrator) resolveCheckout(ctx context.Context) (source.Location, error) {
	url := o.cfg.Repo.URL
	dir := o.cfg.Repo.CloneDir

	exists, err := o.resolver.DirExists(dir)
	if err != nil {
		return source.Location{}, err
	}
	if !exists {
		return o.resolver.Clone(ctx, url, dir)
	}

	answer, err := o.prompter.Line("Directory '" + dir + "' already exists. Type 'del' to delete and re-clone, anything else to reuse it: ")
	if err != nil {
		return source.Location{}, err
	}
	if answer == "del" {
		return o.resolver.Replace(ctx, url, dir)
	}
	return o.resolver.Reuse(dir), nil
}

// invoke runs the resolved installer with an explicit working directory and
// propagates its exit status unchanged.
func (o *Orchestrator) invoke(ctx context.Context, loc source.Location) error {
	var path, dir string
	switch loc.Kind {
	case source.KindLocalFile:
		path = loc.Path
		dir = filepath.Dir(loc.Path)
	default:
		// The child resolves its argv[0] after chdir into dir, so the
		// script path must be relative to dir, not to our own cwd. The
		// "./" prefix keeps exec from searching PATH.
		dir = loc.Path
		path = o.cfg.Delegate.Script
		if !filepath.IsAbs(path) {
			path = "./" + path
		}
	}

	log.Infof("Running installer %s (%s)", path, loc.Kind)
	return o.runner.Run(ctx, path, dir, o.cfg.Delegate.Args...)
}
