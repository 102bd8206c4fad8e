package domain

import "errors"

var (
	// ErrInvalidInput is returned when mood or city is blank
	ErrInvalidInput = errors.New("mood and city must be provided")

	// ErrWeatherUnavailable is returned when the weather provider could not resolve the city
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrNoTrack is returned by a track provider with no result for a tag
	ErrNoTrack = errors.New("no track found")
)
