package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// ListItems returns one page of items, newest first. Search matches title or
// description and is combined with the status filter.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) (*domain.ItemPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.ItemFilter{
		Status:  input.Status,
		Search:  strings.TrimSpace(input.Search),
		Page:    max(input.Page, 1),
		PerPage: s.pageSize(input.PerPage),
	}

	items, total, err := s.items.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []domain.KnowledgeItem{}
	}

	return &domain.ItemPage{
		Items:    items,
		PageMeta: domain.NewPageMeta(total, f.Page, f.PerPage),
	}, nil
}

// pageSize applies the configured default and upper bound.
func (s *Service) pageSize(requested int) int {
	size := requested
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	if size <= 0 {
		size = 5
	}
	return size
}
