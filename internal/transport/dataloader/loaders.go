package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Authors by user ID (1:1 nullable; a deleted author loads as nil).

func newAuthorsBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			u := users[i]
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// Tags by knowledge item ID.

func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[uuid.UUID, []domain.MetadataTag] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.MetadataTag] {
		tags, err := repo.ListByItemIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.MetadataTag](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.MetadataTag, len(keys))
		for _, t := range tags {
			grouped[t.KnowledgeItemID] = append(grouped[t.KnowledgeItemID], t)
		}

		return mapResults(keys, grouped, emptySlice[domain.MetadataTag])
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}

// Attach resolves the author and tags of every item through the loaders in
// ctx. All keys are queued before any result is awaited so that each
// relation costs one query per batch.
func Attach(ctx context.Context, items []domain.KnowledgeItem) error {
	if len(items) == 0 {
		return nil
	}
	l := FromContext(ctx)

	authorIDs := make([]uuid.UUID, len(items))
	itemIDs := make([]uuid.UUID, len(items))
	for i, it := range items {
		authorIDs[i] = it.AuthorID
		itemIDs[i] = it.ID
	}

	authors := l.AuthorByID.LoadMany(ctx, authorIDs)
	tags := l.TagsByItemID.LoadMany(ctx, itemIDs)

	gotAuthors, errs := authors()
	if err := firstError(errs); err != nil {
		return err
	}
	gotTags, errs := tags()
	if err := firstError(errs); err != nil {
		return err
	}

	for i := range items {
		items[i].Author = gotAuthors[i]
		items[i].Tags = gotTags[i]
	}
	return nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
