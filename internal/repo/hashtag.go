package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nspatel/eventtags/internal/domain"
)

// HashtagRepo defines the persistence operations for hashtags.
type HashtagRepo interface {
	// Upsert inserts a hashtag by text with a usage count of 1, or
	// atomically increments the count if the text already exists. The
	// event type association of the first creator is preserved on conflict.
	Upsert(ctx context.Context, text string, eventTypeID uuid.UUID) (domain.Hashtag, error)

	// GetByText retrieves a single hashtag by its literal text.
	// Returns domain.ErrNotFound if no hashtag with that text exists.
	GetByText(ctx context.Context, text string) (domain.Hashtag, error)

	// ListPopular returns up to limit hashtags joined with their event type
	// name, ordered by usage count descending, ties broken by text.
	ListPopular(ctx context.Context, limit int) ([]domain.PopularHashtag, error)
}

// pgHashtagRepo is the Postgres implementation of HashtagRepo.
type pgHashtagRepo struct {
	db db
}

// NewHashtagRepo constructs a HashtagRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHashtagRepo(db db) HashtagRepo {
	return &pgHashtagRepo{db: db}
}

// Upsert inserts a hashtag or bumps its usage count on text conflict.
// The increment happens inside the conflict handler's UPDATE expression, so
// it is atomic at the row level — concurrent upserts of the same text never
// lose counts. event_type_id is deliberately absent from the SET list: the
// first writer's association wins for all time.
func (r *pgHashtagRepo) Upsert(ctx context.Context, text string, eventTypeID uuid.UUID) (domain.Hashtag, error) {
	const q = `
		INSERT INTO hashtags (text, event_type_id, usage_count)
		VALUES (@text, @event_type_id, 1)
		ON CONFLICT (text) DO UPDATE
			SET usage_count = hashtags.usage_count + 1,
			    updated_at  = now()
		RETURNING id, text, event_type_id, usage_count, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"text": text, "event_type_id": eventTypeID})
	result, err := scanHashtag(row)
	if err != nil {
		return domain.Hashtag{}, fmt.Errorf("repo.HashtagRepo.Upsert: %w", err)
	}
	return result, nil
}

// GetByText retrieves a hashtag by its unique text.
func (r *pgHashtagRepo) GetByText(ctx context.Context, text string) (domain.Hashtag, error) {
	const q = `
		SELECT id, text, event_type_id, usage_count, created_at, updated_at
		FROM hashtags
		WHERE text = @text`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"text": text})
	result, err := scanHashtag(row)
	if err != nil {
		return domain.Hashtag{}, fmt.Errorf("repo.HashtagRepo.GetByText: %w", err)
	}
	return result, nil
}

// ListPopular returns the most used hashtags with their owning event type name.
func (r *pgHashtagRepo) ListPopular(ctx context.Context, limit int) ([]domain.PopularHashtag, error) {
	const q = `
		SELECT h.text, et.name, h.usage_count
		FROM hashtags h
		JOIN event_types et ON et.id = h.event_type_id
		ORDER BY h.usage_count DESC, h.text
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.ListPopular: %w", err)
	}
	defer rows.Close()

	popular := []domain.PopularHashtag{}
	for rows.Next() {
		var p domain.PopularHashtag
		if err := rows.Scan(&p.Text, &p.EventType, &p.UsageCount); err != nil {
			return nil, fmt.Errorf("repo.HashtagRepo.ListPopular: scan: %w", err)
		}
		popular = append(popular, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.ListPopular: rows: %w", err)
	}
	return popular, nil
}

// scanHashtag maps a single database row into a domain.Hashtag.
func scanHashtag(s scanner) (domain.Hashtag, error) {
	var (
		h           domain.Hashtag
		id          pgtype.UUID
		eventTypeID pgtype.UUID
	)
	err := s.Scan(&id, &h.Text, &eventTypeID, &h.UsageCount, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hashtag{}, domain.ErrNotFound
		}
		return domain.Hashtag{}, err
	}
	h.ID = uuid.UUID(id.Bytes)
	h.EventTypeID = uuid.UUID(eventTypeID.Bytes)
	return h, nil
}
