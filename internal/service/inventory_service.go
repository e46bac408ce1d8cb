package service

import (
	"context"
	"sort"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/repository"
)

var priorityRank = map[domain.Priority]int{
	domain.PriorityCritical: 0,
	domain.PriorityHigh:     1,
	domain.PriorityMedium:   2,
	domain.PriorityLow:      3,
}

func rankOf(p domain.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

type InventoryService struct {
	Suggestions repository.Source[domain.ReorderSuggestion]
}

// GetReorderSuggestions returns items at or below their reorder point,
// highest priority first and oldest first within a priority.
func (s InventoryService) GetReorderSuggestions(ctx context.Context) ([]domain.ReorderSuggestion, error) {
	all, err := s.Suggestions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReorderSuggestion, 0, len(all))
	for _, sug := range all {
		if sug.CurrentStock <= sug.ReorderPoint {
			out = append(out, sug)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rankOf(out[i].Priority), rankOf(out[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
