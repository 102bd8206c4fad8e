package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/moodtunes/backend/internal/domain"
)

// DefaultLastFMBaseURL is the Last.fm web service host
const DefaultLastFMBaseURL = "http://ws.audioscrobbler.com"

// MusicService looks up tracks by tag on Last.fm
type MusicService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewMusicService creates a new music service
func NewMusicService(apiKey, baseURL string, timeout time.Duration) *MusicService {
	if baseURL == "" {
		baseURL = DefaultLastFMBaseURL
	}
	return &MusicService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// TopTracksResponse represents the tag.gettoptracks payload
type TopTracksResponse struct {
	Tracks struct {
		Track trackList `json:"track"`
	} `json:"tracks"`
}

type lastFMTrack struct {
	Name   string `json:"name"`
	Artist struct {
		Name string `json:"name"`
	} `json:"artist"`
}

// trackList accepts both an array and a lone object, Last.fm collapses
// single-element lists into the latter
type trackList []lastFMTrack

func (l *trackList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var one lastFMTrack
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = trackList{one}
		return nil
	}
	var many []lastFMTrack
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// TopTrack returns the most popular track tagged with tag
func (s *MusicService) TopTrack(ctx context.Context, tag string) (*domain.Track, error) {
	params := url.Values{}
	params.Set("method", "tag.gettoptracks")
	params.Set("tag", strings.ToLower(tag))
	params.Set("api_key", s.apiKey)
	params.Set("format", "json")
	params.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/2.0/?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("music: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("music: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("music: provider returned status %d", resp.StatusCode)
	}

	var tracks TopTracksResponse
	if err := json.NewDecoder(resp.Body).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("music: failed to decode response: %w", err)
	}

	if len(tracks.Tracks.Track) == 0 {
		return nil, fmt.Errorf("music: tag %q: %w", tag, domain.ErrNoTrack)
	}

	top := tracks.Tracks.Track[0]
	if top.Name == "" || top.Artist.Name == "" {
		return nil, fmt.Errorf("music: incomplete track for tag %q", tag)
	}

	return &domain.Track{
		Title:  top.Name,
		Artist: top.Artist.Name,
	}, nil
}
