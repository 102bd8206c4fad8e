package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap API host
const DefaultOpenWeatherBaseURL = "http://api.openweathermap.org"

// WeatherService handles weather data fetching
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a new weather service.
// A zero timeout leaves the client without a deadline.
func NewWeatherService(apiKey, baseURL string, timeout time.Duration) *WeatherService {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// OpenWeatherResponse is the subset of the OpenWeatherMap payload we read
type OpenWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// CurrentCondition fetches the primary weather condition (e.g. "Clear", "Rain") for city
func (s *WeatherService) CurrentCondition(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("q", strings.TrimSpace(city))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("weather: provider returned status %d", resp.StatusCode)
	}

	var owResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return "", fmt.Errorf("weather: failed to decode response: %w", err)
	}

	if len(owResp.Weather) == 0 || owResp.Weather[0].Main == "" {
		return "", fmt.Errorf("weather: no condition in response for %q", city)
	}

	return owResp.Weather[0].Main, nil
}
