package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr   string
	GinMode   string
	LogLevel  string
	LogFormat string

	// Empty means every origin is allowed.
	CORSAllowedOrigins []string
	HideErrorDetails   bool

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	GeneratorTimeout time.Duration

	UnsplashAccessKey string
	PromptsFile       string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":5000"
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HideErrorDetails:   getBool("HIDE_ERROR_DETAILS", false),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:      strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeneratorTimeout:   getDuration("GENERATOR_TIMEOUT", 60*time.Second),
		UnsplashAccessKey:  strings.TrimSpace(os.Getenv("UNSPLASH_ACCESS_KEY")),
		PromptsFile:        strings.TrimSpace(os.Getenv("PROMPTS_FILE")),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
