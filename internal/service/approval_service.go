package service

import (
	"context"
	"sort"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/repository"
)

type ApprovalService struct {
	Entries repository.Source[domain.ApprovalEntry]
}

// GetHistory returns the approval trail of one document ordered by level and
// then by date. A document without history yields an empty slice.
func (s ApprovalService) GetHistory(ctx context.Context, docID, docType string) ([]domain.ApprovalEntry, error) {
	all, err := s.Entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApprovalEntry, 0)
	for _, e := range all {
		if e.DocID == docID && e.DocType == docType {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
