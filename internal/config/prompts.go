package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompts holds the instruction templates sent to the content generator.
// Templates use fmt verbs; see DefaultPrompts for the argument order.
type Prompts struct {
	System      string  `yaml:"system"`
	CityInfo    string  `yaml:"city_description"`
	Activities  string  `yaml:"city_activities"`
	TravelPlan  string  `yaml:"travel_plan"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

func DefaultPrompts() Prompts {
	return Prompts{
		System: "You are a helpful travel assistant.",
		// %s city
		CityInfo: "Give a short, engaging description of %s for a traveller in at most 120 words.",
		// %s city
		Activities: "List 10 popular activities or attractions for visitors in %s. " +
			`Respond with a JSON object of the form {"activities": ["..."]}.`,
		// %s city, %s start date, %s end date, %v travellers, %s activities
		TravelPlan: "Create a day-by-day travel plan for a trip to %s from %s to %s for %v travellers. " +
			"Include these activities: %s. " +
			`Respond with a JSON object of the form {"days": [{"day": 1, "date": "...", "items": [{"time": "...", "activity": "...", "notes": "..."}]}], "tips": ["..."]}.`,
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// LoadPrompts reads a YAML prompt catalog. Keys missing from the file keep
// their defaults; an empty path returns the defaults.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	path = strings.TrimSpace(path)
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read prompts file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse prompts file %s: %w", path, err)
	}
	return p, nil
}
