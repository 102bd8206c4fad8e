package service

import (
	"context"

	"github.com/moodtunes/backend/internal/domain"
)

// WeatherProvider resolves the current weather condition for a city
type WeatherProvider interface {
	CurrentCondition(ctx context.Context, city string) (string, error)
}

// TrackProvider resolves the top track for a mood tag
type TrackProvider interface {
	TopTrack(ctx context.Context, tag string) (*domain.Track, error)
}

var (
	_ WeatherProvider = (*WeatherService)(nil)
	_ TrackProvider   = (*MusicService)(nil)
)
