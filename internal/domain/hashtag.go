package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hashtag represents one generated hashtag and its usage bookkeeping.
// Identity is determined by Text (the literal tag including the leading
// "#"), which is unique and case-sensitive.
//
// EventTypeID records the category that produced the tag first. If the same
// text is later generated under a different category, only UsageCount moves;
// the association stays with the first writer.
type Hashtag struct {
	ID          uuid.UUID
	Text        string
	EventTypeID uuid.UUID
	UsageCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PopularHashtag is one row of the popularity listing: a hashtag joined
// with the name of its owning event type.
type PopularHashtag struct {
	Text       string
	EventType  string
	UsageCount int64
}
