// Package config reads the server and build settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/imdewan/mrdsa-dev/internal/content"
	"github.com/imdewan/mrdsa-dev/internal/content/sqlstore"
	"github.com/imdewan/mrdsa-dev/internal/ui"
)

// Config holds all application configuration
type Config struct {
	Port           int     `validate:"min=1,max=65535"`
	Mode           string  `validate:"oneof=debug release test"`
	LogLevel       string  `validate:"oneof=debug info warn error"`
	StaticDir      string  `validate:"required"`
	ContentPath    string
	MarqueeSeconds float64 `validate:"gt=0,lte=86400"`
	ParallaxMax    float64 `validate:"gt=0,lte=100000"`
}

// Load reads the process environment. A .env file is picked up by the
// godotenv autoload import in the binaries.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Mode:        get("GIN_MODE", "debug"),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "info")),
		StaticDir:   get("STATIC_DIR", "./public"),
		ContentPath: get("CONTENT_PATH", ""),
	}

	var err error
	if cfg.Port, err = parseInt("PORT", get("PORT", "8080")); err != nil {
		return nil, err
	}
	if cfg.MarqueeSeconds, err = parseFloat("MARQUEE_SECONDS", get("MARQUEE_SECONDS", "40")); err != nil {
		return nil, err
	}
	if cfg.ParallaxMax, err = parseFloat("PARALLAX_MAX", get("PARALLAX_MAX", "300")); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func parseInt(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, raw, err)
	}
	return n, nil
}

func parseFloat(key, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", key, raw, err)
	}
	return f, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// MarqueeDuration is the length of one testimonial loop.
func (c *Config) MarqueeDuration() time.Duration {
	return time.Duration(c.MarqueeSeconds * float64(time.Second))
}

// Parallax is the hero mapping with the configured scroll distance.
func (c *Config) Parallax() ui.Parallax {
	p := ui.DefaultParallax()
	p.InputMax = c.ParallaxMax
	return p
}

// ContentSource picks where the site content comes from: the embedded
// default, a YAML file, or a SQLite snapshot.
func (c *Config) ContentSource() content.Source {
	switch {
	case c.ContentPath == "":
		return content.Embedded{}
	case sqlstore.IsSnapshot(c.ContentPath):
		return sqlstore.Store{Path: c.ContentPath}
	default:
		return content.File{Path: c.ContentPath}
	}
}
