package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtunes/backend/internal/domain"
	"github.com/moodtunes/backend/internal/service"
)

// --- Mocks ---

type mockWeather struct {
	condition string
	err       error
	called    bool
}

func (m *mockWeather) CurrentCondition(ctx context.Context, city string) (string, error) {
	m.called = true
	if m.err != nil {
		return "", m.err
	}
	return m.condition, nil
}

type mockMusic struct {
	track  *domain.Track
	err    error
	called bool
}

func (m *mockMusic) TopTrack(ctx context.Context, tag string) (*domain.Track, error) {
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	return m.track, nil
}

func newTestApp(weather service.WeatherProvider, music service.TrackProvider) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, service.NewRecommendationService(weather, music, domain.DefaultMoodTable()))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return resp.StatusCode, decoded
}

// --- Tests ---

func TestHandler_Ping(t *testing.T) {
	weather := &mockWeather{err: errors.New("provider down")}
	music := &mockMusic{err: errors.New("provider down")}
	app := newTestApp(weather, music)

	status, body := doRequest(t, app, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"status": "ok"}, body)
	assert.False(t, weather.called)
	assert.False(t, music.called)
}

func TestHandler_Recommend(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		weather        *mockWeather
		music          *mockMusic
		expectedStatus int
		expectedBody   map[string]any
		musicCalled    bool
	}{
		{
			name:           "Success: mood matches weather",
			body:           `{"mood":"Happy","city":"London"}`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{track: &domain.Track{Title: "Happy Song", Artist: "Good Vibes"}},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"city":                 "London",
				"weather":              "Clear",
				"mood":                 "Happy",
				"mood_matches_weather": true,
				"recommended_song":     map[string]any{"title": "Happy Song", "artist": "Good Vibes"},
			},
			musicCalled: true,
		},
		{
			name:           "Success: mood does not match weather",
			body:           `{"mood":"sad","city":"Cairo"}`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{track: &domain.Track{Title: "Never", Artist: "Called"}},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"city":                 "Cairo",
				"weather":              "Clear",
				"mood":                 "sad",
				"mood_matches_weather": false,
				"recommended_song":     nil,
			},
			musicCalled: false,
		},
		{
			name:           "Success: music provider failure yields null song",
			body:           `{"mood":"romantic","city":"Paris"}`,
			weather:        &mockWeather{condition: "Rain"},
			music:          &mockMusic{err: errors.New("lastfm down")},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"city":                 "Paris",
				"weather":              "Rain",
				"mood":                 "romantic",
				"mood_matches_weather": true,
				"recommended_song":     nil,
			},
			musicCalled: true,
		},
		{
			name:           "Bad Request: empty mood",
			body:           `{"mood":"","city":"London"}`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"detail": "Mood and city must be provided."},
		},
		{
			name:           "Bad Request: both empty",
			body:           `{"mood":"","city":""}`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"detail": "Mood and city must be provided."},
		},
		{
			name:           "Bad Request: whitespace city",
			body:           `{"mood":"happy","city":"   "}`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"detail": "Mood and city must be provided."},
		},
		{
			name:           "Bad Request: malformed json",
			body:           `{invalid-json`,
			weather:        &mockWeather{condition: "Clear"},
			music:          &mockMusic{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"detail": "Invalid request body"},
		},
		{
			name:           "Not Found: weather lookup fails",
			body:           `{"mood":"happy","city":"Atlantis"}`,
			weather:        &mockWeather{err: errors.New("city not found")},
			music:          &mockMusic{},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]any{"detail": "Could not fetch weather for the specified city."},
		},
		{
			name:           "Not Found: weather fails for unknown mood",
			body:           `{"mood":"bored","city":"Atlantis"}`,
			weather:        &mockWeather{err: errors.New("city not found")},
			music:          &mockMusic{},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]any{"detail": "Could not fetch weather for the specified city."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.weather, tt.music)

			status, body := doRequest(t, app, http.MethodPost, "/recommendation", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedBody, body)
			assert.Equal(t, tt.musicCalled, tt.music.called)
		})
	}
}

func TestHandler_RecommendWithoutContentType(t *testing.T) {
	app := newTestApp(&mockWeather{condition: "Clear"}, &mockMusic{})

	req := httptest.NewRequest(http.MethodPost, "/recommendation", strings.NewReader(`{"mood":"happy","city":"London"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ListMoods(t *testing.T) {
	app := newTestApp(&mockWeather{}, &mockMusic{})

	status, body := doRequest(t, app, http.MethodGet, "/moods", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(6), body["count"])

	moods, ok := body["moods"].([]any)
	require.True(t, ok)
	first, ok := moods[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "angry", first["mood"])
	assert.Equal(t, []any{"Thunderstorm", "Wind"}, first["weather"])
}

func TestHandler_UnknownRoute(t *testing.T) {
	app := newTestApp(&mockWeather{}, &mockMusic{})

	status, body := doRequest(t, app, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "detail")
}
