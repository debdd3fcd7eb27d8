// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// ArtistCreator appends a new artist to the directory.
type ArtistCreator interface {
	CreateArtist(ctx context.Context, a artist.Artist) (artist.Artist, error)
}

type Service struct {
	artists ArtistCreator
	delay   time.Duration
	logger  *slog.Logger
}

// NewService creates the onboarding service. A zero delay registers
// immediately.
func NewService(artists ArtistCreator, delay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		artists: artists,
		delay:   delay,
		logger:  logger,
	}
}

// Register validates the form, waits out the processing delay and creates
// the artist. Nothing is created when ctx ends during the delay.
func (service *Service) Register(ctx context.Context, form Form) (artist.Artist, error) {
	if err := form.Validate(); err != nil {
		return artist.Artist{}, err
	}

	if err := service.wait(ctx); err != nil {
		service.logger.Warn("onboarding_abandoned",
			slog.String("name", form.Name),
			slog.String("error", err.Error()),
		)
		return artist.Artist{}, apperr.RequestTimeout("Registration was cancelled before it completed", err)
	}

	created, err := service.artists.CreateArtist(ctx, form.Artist())
	if err != nil {
		return artist.Artist{}, err
	}

	service.logger.Info("artist_onboarded",
		slog.String("artist_id", created.ID),
		slog.Any("categories", created.Categories),
	)
	return created, nil
}

func (service *Service) wait(ctx context.Context) error {
	if service.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(service.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
