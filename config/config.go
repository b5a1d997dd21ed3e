package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	SiteTitle = "Muqdisho Shop Plus"
	SiteURL   = "https://muqdishoshop.so"

	TailwindCSSURL = "https://cdn.tailwindcss.com"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"
	LucideURL      = "https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js"

	// TransitionDuration is used for both the exit and the enter half of a
	// page transition.
	TransitionDuration = 300 * time.Millisecond

	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerRateLimitMax = 120
	ServerRateLimitExp = time.Minute

	FragmentCacheTTL = 24 * time.Hour
)

const (
	defaultPort      = "8080"
	defaultLogLevel  = "info"
	defaultStaticDir = "./static"
)

// Config holds the settings that can be overridden from the environment.
type Config struct {
	Port      string
	LogLevel  string
	StaticDir string
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	return Config{
		Port:      getenv("PORT", defaultPort),
		LogLevel:  getenv("LOG_LEVEL", defaultLogLevel),
		StaticDir: getenv("STATIC_DIR", defaultStaticDir),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
