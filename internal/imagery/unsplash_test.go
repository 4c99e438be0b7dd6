package imagery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func photo(desc, url string) map[string]any {
	return map[string]any{
		"description": desc,
		"urls":        map[string]any{"regular": url},
	}
}

func TestFindCityImage_RelevantLandmark(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("client_id") != "key" {
			t.Errorf("missing client_id")
		}
		if !strings.HasPrefix(r.URL.Query().Get("query"), "Paris ") {
			t.Errorf("query = %q", r.URL.Query().Get("query"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{photo("The Eiffel Tower in Paris at dusk", "https://img/landmark")},
		})
	}))
	defer srv.Close()

	u := &UnsplashFinder{AccessKey: "key", BaseURL: srv.URL, Client: srv.Client()}
	got, err := u.FindCityImage(context.Background(), "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://img/landmark" {
		t.Fatalf("url = %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected a single search, got %d", calls)
	}
}

func TestFindCityImage_IrrelevantUsesPlainSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "Paris" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []any{photo("", "https://img/plain")},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{photo("a random mountain", "https://img/wrong")},
		})
	}))
	defer srv.Close()

	u := &UnsplashFinder{AccessKey: "key", BaseURL: srv.URL, Client: srv.Client()}
	got, err := u.FindCityImage(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://img/plain" {
		t.Fatalf("url = %q", got)
	}
}

func TestFindCityImage_BadStatusFallsBackQuietly(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	u := &UnsplashFinder{AccessKey: "key", BaseURL: srv.URL, Client: srv.Client()}
	got, err := u.FindCityImage(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("status failures should not be reported, got %v", err)
	}
	if got != FallbackImage {
		t.Fatalf("url = %q", got)
	}
	if calls != 2 {
		t.Fatalf("expected landmark and plain searches, got %d", calls)
	}
}

func TestFindCityImage_UnreadableReplyReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	u := &UnsplashFinder{AccessKey: "key", BaseURL: srv.URL, Client: srv.Client()}
	got, err := u.FindCityImage(context.Background(), "Paris")
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if got != FallbackImage {
		t.Fatalf("url = %q", got)
	}
}

func TestFindCityImage_NoKey(t *testing.T) {
	u := &UnsplashFinder{}
	got, err := u.FindCityImage(context.Background(), "Paris")
	if err != nil || got != FallbackImage {
		t.Fatalf("got %q, %v", got, err)
	}
}
