package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/notex/pkg/adapters/fs"
	"github.com/aretw0/notex/pkg/core"
)

// Open prepares the notes directory at path and returns a loaded store.
//
//	store, err := notex.Open("./notes", notex.WithReadOnly(true))
func Open(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if path == "" {
			return nil, fmt.Errorf("notes path is required")
		}
		repo = fs.NewRepository(fs.Config{
			Path:         path,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			SystemDir:    o.systemDir,
			ErrorHandler: o.errorHandler,
		})
	}

	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	var storeOpts []core.StoreOption
	if o.logger != nil {
		storeOpts = append(storeOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}

	store := core.NewStore(repo, storeOpts...)
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	return store, nil
}

// NewSession creates an idle editor session over store.
func NewSession(store *core.Store, opts ...Option) *core.Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return core.NewSession(store, core.WithConfirmOnNew(o.confirmOnNew))
}
