// Package repo contains all database access logic for the event hashtag API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nspatel/eventtags/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to serve single-row and multi-row queries alike.
type scanner interface {
	Scan(dest ...any) error
}

// EventTypeRepo defines the persistence operations for event categories.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type EventTypeRepo interface {
	// GetOrCreate inserts an event type by name, or returns the existing
	// row if the name already exists. Idempotent.
	GetOrCreate(ctx context.Context, name string) (domain.EventType, error)

	// List returns all event types ordered by name.
	List(ctx context.Context) ([]domain.EventType, error)
}

// pgEventTypeRepo is the Postgres implementation of EventTypeRepo.
type pgEventTypeRepo struct {
	db db
}

// NewEventTypeRepo constructs an EventTypeRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEventTypeRepo(db db) EventTypeRepo {
	return &pgEventTypeRepo{db: db}
}

// GetOrCreate inserts an event type or returns the existing row on name
// conflict. The DO UPDATE SET trick forces the RETURNING clause to fire even
// when the conflict handler skips the insert — without it, RETURNING returns
// nothing on DO NOTHING conflicts.
func (r *pgEventTypeRepo) GetOrCreate(ctx context.Context, name string) (domain.EventType, error) {
	const q = `
		INSERT INTO event_types (name)
		VALUES (@name)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanEventType(row)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("repo.EventTypeRepo.GetOrCreate: %w", err)
	}
	return result, nil
}

// List returns all event types ordered by name.
func (r *pgEventTypeRepo) List(ctx context.Context) ([]domain.EventType, error) {
	const q = `
		SELECT id, name, created_at
		FROM event_types
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.EventTypeRepo.List: %w", err)
	}
	defer rows.Close()

	types := []domain.EventType{}
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EventTypeRepo.List: scan: %w", err)
		}
		types = append(types, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EventTypeRepo.List: rows: %w", err)
	}
	return types, nil
}

// scanEventType maps a single database row into a domain.EventType.
func scanEventType(s scanner) (domain.EventType, error) {
	var (
		et domain.EventType
		id pgtype.UUID
	)
	err := s.Scan(&id, &et.Name, &et.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EventType{}, domain.ErrNotFound
		}
		return domain.EventType{}, err
	}
	et.ID = uuid.UUID(id.Bytes)
	return et, nil
}
