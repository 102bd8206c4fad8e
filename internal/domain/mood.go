package domain

import (
	"sort"

	"github.com/moodtunes/backend/pkg/utils"
)

// MoodTable maps a lowercase mood to the capitalized weather conditions it goes with.
// It is never mutated after construction, so concurrent reads need no locking.
type MoodTable struct {
	moods map[string]map[string]struct{}
}

// MoodEntry is one row of the table as exposed by GET /moods
type MoodEntry struct {
	Mood    string   `json:"mood"`
	Weather []string `json:"weather"`
}

// NewMoodTable builds a table from mood -> weather labels, normalizing both sides
func NewMoodTable(entries map[string][]string) *MoodTable {
	moods := make(map[string]map[string]struct{}, len(entries))
	for mood, conditions := range entries {
		key := utils.NormalizeText(mood)
		set, ok := moods[key]
		if !ok {
			set = make(map[string]struct{}, len(conditions))
			moods[key] = set
		}
		for _, c := range conditions {
			set[utils.Capitalize(c)] = struct{}{}
		}
	}
	return &MoodTable{moods: moods}
}

// DefaultMoodTable returns the curated mood/weather associations
func DefaultMoodTable() *MoodTable {
	return NewMoodTable(map[string][]string{
		"happy":    {"Clear", "Sunny"},
		"sad":      {"Rain", "Drizzle", "Clouds"},
		"angry":    {"Thunderstorm", "Wind"},
		"calm":     {"Clear", "Clouds"},
		"anxious":  {"Fog", "Mist"},
		"romantic": {"Clear", "Rain", "Clouds"},
	})
}

// IsCompatible reports whether weather is one of the conditions associated with mood.
// Unknown moods are never compatible.
func (t *MoodTable) IsCompatible(mood, weather string) bool {
	set, ok := t.moods[utils.NormalizeText(mood)]
	if !ok {
		return false
	}
	_, ok = set[utils.Capitalize(weather)]
	return ok
}

// Moods returns the known moods in alphabetical order
func (t *MoodTable) Moods() []string {
	out := make([]string, 0, len(t.moods))
	for mood := range t.moods {
		out = append(out, mood)
	}
	sort.Strings(out)
	return out
}

// Entries returns every mood with its sorted weather labels, ordered by mood
func (t *MoodTable) Entries() []MoodEntry {
	entries := make([]MoodEntry, 0, len(t.moods))
	for _, mood := range t.Moods() {
		weather := make([]string, 0, len(t.moods[mood]))
		for c := range t.moods[mood] {
			weather = append(weather, c)
		}
		sort.Strings(weather)
		entries = append(entries, MoodEntry{Mood: mood, Weather: weather})
	}
	return entries
}
