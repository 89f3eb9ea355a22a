// Package dataloader provides per-request DataLoaders that batch the author
// and tag lookups of a knowledge listing into single SQL calls. Loaders call
// repositories directly, bypassing the service layer; the listing they
// decorate has already passed the service's checks.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type tagRepo interface {
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]domain.MetadataTag, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	User userRepo
	Tag  tagRepo
}

// Loaders contains the per-request loaders. Created via NewLoaders.
type Loaders struct {
	AuthorByID   *dataloader.Loader[uuid.UUID, *domain.User]
	TagsByItemID *dataloader.Loader[uuid.UUID, []domain.MetadataTag]
}

// NewLoaders creates loaders backed by the given repositories. Loaders cache
// results, so a set must not outlive one request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AuthorByID:   newLoader(newAuthorsBatchFn(repos.User)),
		TagsByItemID: newLoader(newTagsBatchFn(repos.Tag)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
