// Package rules implements the hashtag template engine.
//
// Tag generation is pure: given a request it returns an ordered,
// deduplicated list of hashtag strings and touches nothing else. All
// category knowledge lives in the tables in tables.go — adding a category
// means adding table rows, not control flow.
package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nspatel/eventtags/internal/domain"
)

// dateLayout is the accepted input format for the optional date field
// (the HTML <input type="date"> wire format).
const dateLayout = "2006-01-02"

// longDateLayout renders a date the en-US long way, e.g. "January 1, 2024".
const longDateLayout = "January 2, 2006"

// Engine expands generate requests into hashtag lists.
type Engine struct {
	// year is interpolated into the community family's year template
	// (e.g. "#hackathon2026"). Fixed at construction so a single request
	// cannot straddle a year boundary mid-generation.
	year string
}

// New returns an Engine whose community-family year template uses the
// current calendar year.
func New() *Engine {
	return NewWithYear(time.Now().Year())
}

// NewWithYear returns an Engine with a fixed year for the community-family
// year template. Tests use this to pin output.
func NewWithYear(year int) *Engine {
	return &Engine{year: strconv.Itoa(year)}
}

// Generate expands the request into an ordered list of unique, non-empty
// hashtags: category-family tags, then date tags, then the trending
// supplement, deduplicated first-seen-wins and case-sensitive.
//
// Missing optional fields shrink the list (an absent bride name empties the
// union family's tags) but never fail the call. The only error is a present
// date that does not parse as a calendar date.
func (e *Engine) Generate(req domain.GenerateRequest) ([]string, error) {
	tags := e.familyTags(req)

	dated, err := dateTags(req.EventType, req.Date)
	if err != nil {
		return nil, err
	}
	tags = append(tags, dated...)

	tags = append(tags, trendingFor(req.EventType)...)

	return dedupe(tags), nil
}

// familyTags expands the category's template family. Each family
// interpolates exactly one whitespace-stripped name (or a bride/groom pair);
// if the required field is empty the family contributes nothing.
func (e *Engine) familyTags(req domain.GenerateRequest) []string {
	category := req.EventType

	switch familyOf(category) {
	case familyUnion:
		if req.BrideName == "" || req.GroomName == "" {
			return nil
		}
		return expand(unionTemplates, category, stripSpace(req.BrideName), stripSpace(req.GroomName))

	case familyChild:
		if req.ChildName == "" {
			return nil
		}
		return expand(childTemplates, category, stripSpace(req.ChildName))

	case familyCommunity:
		if req.EventName == "" {
			return nil
		}
		return expand(communityTemplates, category, stripSpace(req.EventName), e.year)

	default:
		if req.EventName == "" {
			return nil
		}
		return expand(defaultTemplates, category, stripSpace(req.EventName))
	}
}

// dateTags derives the two date tags from an optional YYYY-MM-DD date:
// category + the long date with all whitespace removed, and category + the
// long date's first two space-separated tokens. The second token is the day
// number with the locale's trailing comma still attached ("January1,") —
// a crude textual split kept intact because existing tags depend on it.
func dateTags(category, date string) ([]string, error) {
	if date == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a valid calendar date", domain.ErrValidation)
	}

	formatted := d.Format(longDateLayout)
	parts := strings.Split(formatted, " ")
	return []string{
		"#" + category + stripSpace(formatted),
		"#" + category + parts[0] + parts[1],
	}, nil
}

// expand renders each template in order with the given positional arguments.
func expand(templates []string, args ...any) []string {
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = fmt.Sprintf(tmpl, args...)
	}
	return out
}

// stripSpace removes all whitespace from s. Internal whitespace goes too
// ("Jane Doe" → "JaneDoe"); punctuation is left alone.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// dedupe drops empty entries and duplicates, preserving first-seen order.
// Comparison is case-sensitive: "#weddingCelebration" and
// "#WeddingCelebration" are distinct tags.
func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
