package domain

// RecommendationRequest is the body of POST /recommendation
type RecommendationRequest struct {
	Mood string `json:"mood"`
	City string `json:"city"`
}

// Track is a single song suggestion
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// RecommendationResponse echoes the caller's mood and city alongside the derived fields.
// RecommendedSong is nil (rendered as null) when the mood does not match the weather
// or the music provider had nothing to offer.
type RecommendationResponse struct {
	City               string `json:"city"`
	Weather            string `json:"weather"`
	Mood               string `json:"mood"`
	MoodMatchesWeather bool   `json:"mood_matches_weather"`
	RecommendedSong    *Track `json:"recommended_song"`
}
