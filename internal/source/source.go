package source

import (
	"context"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v6"
	"github.com/ripap/ripsetup/internal/errdefs"
	"github.com/ripap/ripsetup/internal/log"
	"github.com/spf13/afero"
)

// Kind describes where the downstream installer comes from.
type Kind int

const (
	KindRemoteRepository Kind = iota
	KindLocalCheckout
	KindLocalFile
)

func (k Kind) String() string {
	switch k {
	case KindRemoteRepository:
		return "remote repository"
	case KindLocalCheckout:
		return "local checkout"
	case KindLocalFile:
		return "local file"
	default:
		return "unknown"
	}
}

// Location is the resolved source of the downstream installer. Exactly one
// is resolved per run.
type Location struct {
	Kind Kind
	// Path is the checkout directory for repository kinds, or the installer
	// file itself for KindLocalFile.
	Path string
	URL  string
}

// CloneFunc performs a repository clone; injectable for tests.
type CloneFunc func(ctx context.Context, url, dir string) error

// GitClone clones with go-git, streaming progress to stderr.
func GitClone(ctx context.Context, url, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, &git.CloneOptions{
		URL:      url,
		Progress: os.Stderr,
	})
	return err
}

type Resolver struct {
	fs    afero.Fs
	clone CloneFunc
}

func NewResolver(fs afero.Fs, clone CloneFunc) *Resolver {
	return &Resolver{
		fs:    fs,
		clone: clone,
	}
}

// DirExists reports whether a prior checkout occupies dir.
func (r *Resolver) DirExists(dir string) (bool, error) {
	info, err := r.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Clone fetches a fresh checkout into dir.
func (r *Resolver) Clone(ctx context.Context, url, dir string) (Location, error) {
	log.Infof("Cloning %s into %s...", url, dir)
	if err := r.clone(ctx, url, dir); err != nil {
		return Location{}, errdefs.WrapCustomError(errdefs.ErrTypeClone,
			fmt.Sprintf("failed to clone %s", url), err)
	}
	return Location{Kind: KindRemoteRepository, Path: dir, URL: url}, nil
}

// Replace removes the existing checkout and clones fresh.
func (r *Resolver) Replace(ctx context.Context, url, dir string) (Location, error) {
	log.Infof("Removing existing directory %s", dir)
	if err := r.fs.RemoveAll(dir); err != nil {
		return Location{}, fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return r.Clone(ctx, url, dir)
}

// Reuse keeps an existing checkout unchanged.
func (r *Resolver) Reuse(dir string) Location {
	log.Infof("Reusing existing directory %s", dir)
	return Location{Kind: KindLocalCheckout, Path: dir}
}

// LocalFile resolves a user-supplied installer path. The path must exist
// and be a regular file.
func (r *Resolver) LocalFile(path string) (Location, error) {
	info, err := r.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Location{}, errdefs.NewCustomError(errdefs.ErrTypeSourceNotFound,
			fmt.Sprintf("file not found: %s", path))
	}
	return Location{Kind: KindLocalFile, Path: path}, nil
}
