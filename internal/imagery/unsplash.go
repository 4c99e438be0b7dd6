package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travelgateway/internal/utils"

	"github.com/rs/zerolog/log"
)

// FallbackImage is served whenever no suitable photo can be found.
const FallbackImage = "/mountains.jpg"

const defaultBaseURL = "https://api.unsplash.com"

// CityImageFinder returns a background image URL for a city.
type CityImageFinder interface {
	FindCityImage(ctx context.Context, city string) (string, error)
}

// UnsplashFinder searches Unsplash, preferring a landmark shot that actually
// mentions the city and falling back to a plain city search.
type UnsplashFinder struct {
	AccessKey string
	BaseURL   string
	Client    *http.Client
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	Tags           []struct {
		Title string `json:"title"`
	} `json:"tags"`
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

// FindCityImage always returns a usable URL. A search answered with a non-2xx
// status counts as "no match"; the error is only set when a request could not
// be made or its reply could not be read.
func (u *UnsplashFinder) FindCityImage(ctx context.Context, city string) (string, error) {
	location := utils.SimplifyLocation(city)
	if strings.TrimSpace(u.AccessKey) == "" || location == "" {
		return FallbackImage, nil
	}

	primary, err := u.search(ctx, location+" famous landmark building historical site")
	if err != nil {
		return FallbackImage, err
	}
	if len(primary) > 0 && relevant(primary[0], location) && primary[0].URLs.Regular != "" {
		return primary[0].URLs.Regular, nil
	}

	plain, err := u.search(ctx, location)
	if err != nil {
		return FallbackImage, err
	}
	if len(plain) > 0 && plain[0].URLs.Regular != "" {
		return plain[0].URLs.Regular, nil
	}
	return FallbackImage, nil
}

func (u *UnsplashFinder) search(ctx context.Context, query string) ([]searchResult, error) {
	client := u.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	base := u.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	q.Set("client_id", u.AccessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().
			Str("module", "IMAGERY").
			Int("status", resp.StatusCode).
			Str("query", query).
			Msg("unsplash search failed, using fallback")
		return nil, nil
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}
	return out.Results, nil
}

func relevant(r searchResult, location string) bool {
	loc := strings.ToLower(location)
	desc := r.Description
	if desc == "" {
		desc = r.AltDescription
	}
	if strings.Contains(strings.ToLower(desc), loc) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag.Title), loc) {
			return true
		}
	}
	return false
}
