// Package service implements the business logic between the HTTP handlers
// and the repo layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/nspatel/eventtags/internal/domain"
	"github.com/nspatel/eventtags/internal/repo"
	"github.com/nspatel/eventtags/internal/rules"
)

// maxConcurrentUpserts bounds the per-request fan-out of hashtag writes.
// A request produces at most ~15 unique tags, so the bound mainly protects
// the pool from pathological concurrent requests.
const maxConcurrentUpserts = 8

// GenerateService implements the generate operation: validate the request,
// expand it through the rule engine, then record every produced hashtag.
type GenerateService struct {
	engine     *rules.Engine
	eventTypes repo.EventTypeRepo
	hashtags   repo.HashtagRepo
	validate   *validator.Validate
}

// NewGenerateService constructs a GenerateService backed by the provided
// engine and repos.
func NewGenerateService(engine *rules.Engine, eventTypes repo.EventTypeRepo, hashtags repo.HashtagRepo) *GenerateService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as they appear on the wire, not as Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &GenerateService{
		engine:     engine,
		eventTypes: eventTypes,
		hashtags:   hashtags,
		validate:   v,
	}
}

// Generate validates the request, expands it into hashtags, and records one
// usage per unique tag under the request's event type (created on first use).
//
// The per-tag writes run concurrently with no ordering guarantee; the call
// returns only once all of them have settled and fails if any one fails —
// there is no partial success. The returned list is the engine's output
// order, already deduplicated.
func (s *GenerateService) Generate(ctx context.Context, req domain.GenerateRequest) ([]string, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("service.GenerateService.Generate: %w", validationError(err))
	}

	tags, err := s.engine.Generate(req)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	eventType, err := s.eventTypes.GetOrCreate(ctx, req.EventType)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUpserts)
	for _, tag := range tags {
		g.Go(func() error {
			_, err := s.hashtags.Upsert(ctx, tag, eventType.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	return tags, nil
}

// validationError converts a validator error into a wrapped
// domain.ErrValidation with a short human-readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, fe.Field())
		case "datetime":
			return fmt.Errorf("%w: %s must be a valid calendar date", domain.ErrValidation, fe.Field())
		default:
			return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, fe.Field())
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
