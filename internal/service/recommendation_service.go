package service

import (
	"context"
	"log"

	"github.com/moodtunes/backend/internal/domain"
	"github.com/moodtunes/backend/pkg/utils"
)

// RecommendationService ties weather, the mood table and music together
type RecommendationService struct {
	weather WeatherProvider
	music   TrackProvider
	table   *domain.MoodTable
}

// NewRecommendationService creates a new recommendation service.
// A nil table falls back to domain.DefaultMoodTable.
func NewRecommendationService(weather WeatherProvider, music TrackProvider, table *domain.MoodTable) *RecommendationService {
	if table == nil {
		table = domain.DefaultMoodTable()
	}
	return &RecommendationService{
		weather: weather,
		music:   music,
		table:   table,
	}
}

// Table returns the mood table in use
func (s *RecommendationService) Table() *domain.MoodTable {
	return s.table
}

// Recommend checks the mood against the city's current weather and, on a match,
// suggests a track for the mood. Music provider failures never fail the request.
func (s *RecommendationService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	if utils.IsBlank(req.Mood) || utils.IsBlank(req.City) {
		return domain.RecommendationResponse{}, domain.ErrInvalidInput
	}

	condition, err := s.weather.CurrentCondition(ctx, req.City)
	if err != nil {
		log.Printf("Weather lookup failed for %q: %v", req.City, err)
		return domain.RecommendationResponse{}, domain.ErrWeatherUnavailable
	}

	mood := utils.NormalizeText(req.Mood)
	matches := s.table.IsCompatible(mood, condition)

	var song *domain.Track
	if matches {
		song, err = s.music.TopTrack(ctx, mood)
		if err != nil {
			log.Printf("Track lookup failed for mood %q: %v", mood, err)
			song = nil
		}
	}

	return domain.RecommendationResponse{
		City:               req.City,
		Weather:            condition,
		Mood:               req.Mood,
		MoodMatchesWeather: matches,
		RecommendedSong:    song,
	}, nil
}
