// Package config loads yanews settings from a YAML file and/or environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration.
// Sources, first match wins:
//  1. explicit path passed to Load/MustLoad;
//  2. CONFIG_PATH;
//  3. environment only.
//
// Environment variables are always applied on top of the file.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	Session   SessionConfig   `yaml:"session"`
	News      NewsConfig      `yaml:"news"`
	Comments  CommentsConfig  `yaml:"comments"`
	Templates TemplatesConfig `yaml:"templates"`
	Site      SiteConfig      `yaml:"site"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DBConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"postgres"`
	URL    string `yaml:"url" env:"DATABASE_URL" env-default:"host=localhost user=postgres password=postgres dbname=yanews port=5432 sslmode=disable"`
}

type SessionConfig struct {
	Name   string `yaml:"name" env:"SESSION_NAME" env-default:"yanews_session"`
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-default:"secret_key_change_me"`
}

// NewsConfig controls the home page listing.
type NewsConfig struct {
	// PageSize is the number of news items shown on the home page.
	PageSize int `yaml:"page_size" env:"NEWS_COUNT_ON_HOME_PAGE" env-default:"10"`
	// CacheTTL of the rendered home listing; 0 disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl" env:"HOME_CACHE_TTL" env-default:"30s"`
}

// CommentsConfig holds the content filter settings.
type CommentsConfig struct {
	ForbiddenWords []string `yaml:"forbidden_words" env:"FORBIDDEN_WORDS" env-separator:"," env-default:"редиска,негодяй"`
	Warning        string   `yaml:"warning" env:"FORBIDDEN_WARNING" env-default:"Не ругайтесь!"`
}

type TemplatesConfig struct {
	Dir string `yaml:"dir" env:"TEMPLATES_DIR" env-default:"./web/templates"`
}

// SiteConfig is used for absolute links in the sitemap and the news feed.
type SiteConfig struct {
	URL  string `yaml:"url" env:"SITE_URL" env-default:"http://localhost:8080"`
	Name string `yaml:"name" env:"SITE_NAME" env-default:"YaNews"`
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration; see Config for the source order.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", path, err)
		}
		// ReadConfig overlays env on top of the file by itself.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("db.driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver)
	}

	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.News.PageSize <= 0 {
		return fmt.Errorf("news.page_size must be > 0")
	}

	if c.News.CacheTTL < 0 {
		return fmt.Errorf("news.cache_ttl must be >= 0")
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret is required")
	}

	if c.Site.URL == "" {
		return fmt.Errorf("site.url is required")
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")

	if c.Comments.Warning == "" {
		return fmt.Errorf("comments.warning is required")
	}

	return nil
}
