package service

import (
	"context"
	"fmt"

	"github.com/nspatel/eventtags/internal/domain"
	"github.com/nspatel/eventtags/internal/repo"
)

// Default and maximum page sizes for the popularity listing.
// The cap prevents runaway queries from an unbounded ?limit= value.
const (
	defaultPopularLimit = 20
	maxPopularLimit     = 100
)

// HashtagService implements read operations over recorded hashtags.
type HashtagService struct {
	hashtags repo.HashtagRepo
}

// NewHashtagService constructs a HashtagService backed by the provided HashtagRepo.
func NewHashtagService(hashtags repo.HashtagRepo) *HashtagService {
	return &HashtagService{hashtags: hashtags}
}

// ListPopular returns the most used hashtags, ordered by usage count
// descending. A limit below 1 falls back to the default; values above the
// cap are clamped. Always returns a non-nil slice so callers can safely
// range over it.
func (s *HashtagService) ListPopular(ctx context.Context, limit int) ([]domain.PopularHashtag, error) {
	if limit < 1 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	popular, err := s.hashtags.ListPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.HashtagService.ListPopular: %w", err)
	}
	if popular == nil {
		return []domain.PopularHashtag{}, nil
	}
	return popular, nil
}
