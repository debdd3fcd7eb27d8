// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"log/slog"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/pagination"
	"github.com/taibuivan/artistly/pkg/slice"
	"github.com/taibuivan/artistly/pkg/uuidv7"
)

const maxNameLength = 200

// Stats are the dashboard counters.
type Stats struct {
	TotalArtists int `json:"total_artists"`
	Categories   int `json:"categories"`
	Locations    int `json:"locations"`
}

// Service implements the directory use cases on top of a [Repository].
type Service struct {
	repo     Repository
	cache    *SearchCache
	featured int
	logger   *slog.Logger
}

// NewService wires the service. cache may be nil to disable result caching.
func NewService(repo Repository, cache *SearchCache, featuredCount int, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		featured: featuredCount,
		logger:   logger,
	}
}

// # Queries

// ListArtists filters the current registry contents and returns the requested
// page along with the total number of matches.
func (service *Service) ListArtists(_ context.Context, criteria Criteria, page pagination.Params) ([]Artist, int) {
	matches := service.search(criteria)

	start, end := page.Window(len(matches))
	return matches[start:end], len(matches)
}

func (service *Service) search(criteria Criteria) []Artist {
	snapshot := service.repo.Snapshot()

	if service.cache == nil || criteria.IsEmpty() {
		return Apply(snapshot.Artists, criteria)
	}

	if cached, found := service.cache.Get(snapshot.Version, criteria); found {
		return cached
	}

	matches := Apply(snapshot.Artists, criteria)
	service.cache.Set(snapshot.Version, criteria, matches)
	return matches
}

// GetArtist returns a single artist or a NOT_FOUND error.
func (service *Service) GetArtist(_ context.Context, id string) (Artist, error) {
	found, ok := service.repo.Get(id)
	if !ok {
		return Artist{}, apperr.NotFound("Artist")
	}
	return found, nil
}

// FeaturedArtists returns the first few artists in registry order.
func (service *Service) FeaturedArtists(_ context.Context) []Artist {
	artists := service.repo.Snapshot().Artists
	return artists[:min(service.featured, len(artists))]
}

// Stats counts artists, distinct category tags and distinct locations.
func (service *Service) Stats(_ context.Context) Stats {
	artists := service.repo.Snapshot().Artists

	categories := make(map[string]struct{})
	locations := make(map[string]struct{})
	for _, a := range artists {
		for _, category := range a.Categories {
			categories[category] = struct{}{}
		}
		locations[a.Location] = struct{}{}
	}

	return Stats{
		TotalArtists: len(artists),
		Categories:   len(categories),
		Locations:    len(locations),
	}
}

// # Commands

// CreateArtist validates and appends a new artist.
//
// An id is generated when none is given; a caller-supplied id must not be in
// use already. Missing images get the placeholder.
func (service *Service) CreateArtist(_ context.Context, a Artist) (Artist, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name).MaxLen(FieldName, a.Name, maxNameLength)
	validator.FloatRange(FieldRating, a.Rating, 0, 5)
	validator.Custom(FieldReviewCount, a.ReviewCount < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Artist{}, err
	}

	if a.ID == "" {
		a.ID = uuidv7.New()
	}

	if a.Image == "" {
		a.Image = constants.PlaceholderImage
	}
	a.Categories = compactTags(a.Categories)
	a.Languages = compactTags(a.Languages)

	if !service.repo.AddUnique(a) {
		return Artist{}, apperr.Conflict("An artist with this id already exists")
	}

	service.logger.Info("artist_created",
		slog.String("artist_id", a.ID),
		slog.String("name", a.Name),
	)
	return a.Clone(), nil
}

// UpdateArtist applies a partial update. Unknown ids yield NOT_FOUND.
func (service *Service) UpdateArtist(ctx context.Context, id string, patch Patch) (Artist, error) {
	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, maxNameLength)
	}
	if patch.Rating != nil {
		validator.FloatRange(FieldRating, *patch.Rating, 0, 5)
	}
	if patch.ReviewCount != nil {
		validator.Custom(FieldReviewCount, *patch.ReviewCount < 0, "Must not be negative")
	}

	if err := validator.Err(); err != nil {
		return Artist{}, err
	}

	if patch.IsEmpty() {
		return service.GetArtist(ctx, id)
	}

	updated, ok := service.repo.Update(id, patch)
	if !ok {
		return Artist{}, apperr.NotFound("Artist")
	}

	service.logger.Info("artist_updated", slog.String("artist_id", id))
	return updated, nil
}

// DeleteArtist removes an artist. Unknown ids yield NOT_FOUND.
func (service *Service) DeleteArtist(_ context.Context, id string) error {
	if !service.repo.Remove(id) {
		return apperr.NotFound("Artist")
	}

	service.logger.Warn("artist_deleted", slog.String("artist_id", id))
	return nil
}

// compactTags drops blank tags and never returns nil.
func compactTags(values []string) []string {
	return slice.Filter(values, func(v string) bool { return v != "" })
}
