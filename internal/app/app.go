// Package app implements the application layer for stake.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.trai.ch/stake/internal/core/domain"
	"go.trai.ch/stake/internal/core/ports"
	"go.trai.ch/stake/internal/pinstore"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LedgerFilename is the conventional name of the resolved-dependency ledger
// in a workspace.
const LedgerFilename = "stake.resolved"

// App represents the main application logic.
type App struct {
	fs      ports.FileSystem
	mirrors ports.MirrorLoader
	logger  ports.Logger
}

// New creates a new App instance.
func New(fsys ports.FileSystem, mirrors ports.MirrorLoader, log ports.Logger) *App {
	return &App{
		fs:      fsys,
		mirrors: mirrors,
		logger:  log,
	}
}

// Open loads the ledger of the workspace rooted at dir, with that workspace's
// mirror configuration applied.
func (a *App) Open(dir string) (*pinstore.Store, error) {
	mirrors, err := a.mirrors.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load mirror configuration")
	}
	store, err := pinstore.Open(filepath.Join(dir, LedgerFilename), a.fs, mirrors, a.logger)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open resolved-dependency ledger")
	}
	return store, nil
}

// List returns the workspace's pins sorted by identity, together with the
// ledger fingerprint.
func (a *App) List(dir string) ([]domain.Pin, string, error) {
	store, err := a.Open(dir)
	if err != nil {
		return nil, "", err
	}
	fingerprint, err := store.Fingerprint()
	if err != nil {
		return nil, "", err
	}
	return store.Pins(), fingerprint, nil
}

// Verify checks that every pin with a local kind still has its checkout on
// disk. Remote and registry pins are skipped: verification never performs
// network I/O.
func (a *App) Verify(ctx context.Context, dir string) error {
	store, err := a.Open(dir)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	checked := 0
	for _, pin := range store.Pins() {
		switch pin.Ref.Kind {
		case domain.KindRemoteSourceControl, domain.KindRegistry:
			continue
		}
		checked++
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !a.fs.Exists(pin.Ref.Location) {
				err := zerr.Wrap(domain.ErrCheckoutMissing,
					fmt.Sprintf("pinned checkout missing at %s", pin.Ref.Location))
				err = zerr.With(err, "identity", pin.Ref.Identity.String())
				return zerr.With(err, "location", pin.Ref.Location)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("verified %d of %d pins locally", checked, store.Count()))
	return nil
}

// Prune removes the given identities from the ledger and saves it. With no
// identities it removes every pin, which deletes the ledger file.
func (a *App) Prune(dir string, identities []string) error {
	store, err := a.Open(dir)
	if err != nil {
		return err
	}

	if len(identities) == 0 {
		store.UnpinAll()
	} else {
		for _, raw := range identities {
			pin, ok := store.Get(domain.IdentityFromName(raw))
			if !ok {
				a.logger.Warn(fmt.Sprintf("no pin recorded for %q", raw))
				continue
			}
			store.Unpin(pin.Ref)
		}
	}

	if err := store.Save(); err != nil {
		return zerr.Wrap(err, "failed to save resolved-dependency ledger")
	}
	return nil
}
