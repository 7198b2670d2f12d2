package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents an event category (e.g. "wedding", "hackathon").
// Rows are created lazily the first time a category appears in a generate
// request ("get or create") and are never updated or deleted afterwards.
// Identity is determined by Name, which is unique and supplied lowercase
// by the form UI.
type EventType struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
