// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"

	"github.com/wneessen/weather-compare/internal/chart"
)

const (
	configEnv = "WEATHERCOMPARE"
	dotEnv    = ".env"

	// MinRequestInterval is the smallest gap between two geocoding requests that the public
	// Nominatim instance tolerates.
	MinRequestInterval = time.Second

	DefaultSummaryTpl = "{{range .Locations}}" +
		"{{pad .Label 28}} {{floatFormat .Coordinate.Lat 4}}, {{floatFormat .Coordinate.Lon 4}}\n" +
		"  {{loc \"forecast\"}}: {{localizedDateTime .From}} - {{localizedDateTime .To}} ({{.Entries}} {{loc \"steps\"}})\n" +
		"  {{loc \"temp\"}}: {{.MinTemperature}} .. {{.MaxTemperature}} °C, " +
		"{{loc \"windspeed\"}}: {{loc \"max\"}} {{.MaxWind}} m/s, " +
		"{{loc \"humidity\"}}: {{loc \"max\"}} {{.MaxHumidity}} %, " +
		"{{loc \"precipitation\"}}: {{loc \"max\"}} {{.MaxPrecipitation}} mm\n" +
		"  {{loc \"sunrise\"}}: {{timeFormat .Sunrise \"15:04\"}}, {{loc \"sunset\"}}: {{timeFormat .Sunset \"15:04\"}}\n" +
		"{{end}}" +
		"{{loc \"moonphase\"}}: {{.MoonPhaseIcon}} {{loc .MoonPhase}}\n"
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	HTTP struct {
		Timeout time.Duration `fig:"timeout" default:"10s"`
	} `fig:"http"`

	GeoCoder struct {
		// Minimum gap between two geocoding requests, at least 1s
		RequestInterval time.Duration `fig:"request_interval" default:"1s"`
	} `fig:"geocoder"`

	Chart struct {
		// Path of the chart file. An empty path writes to a temporary file.
		Output string `fig:"output"`
		// Used when Output is empty or has no file extension
		Format string `fig:"format" default:"png"`
		// Width and height in inches
		Width  float64 `fig:"width" default:"14"`
		Height float64 `fig:"height" default:"10"`
		NoOpen bool    `fig:"no_open"`
	} `fig:"chart"`

	Summary struct {
		Disable  bool   `fig:"disable"`
		Template string `fig:"template"`
	} `fig:"summary"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = loadDotEnv(); err != nil {
		return conf, err
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := loadDotEnv(); err != nil {
		return conf, err
	}
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("invalid HTTP timeout: %s", c.HTTP.Timeout)
	}
	if c.GeoCoder.RequestInterval < MinRequestInterval {
		return fmt.Errorf("invalid geocoder request interval: %s, must be at least %s",
			c.GeoCoder.RequestInterval, MinRequestInterval)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("invalid chart size: %gx%g", c.Chart.Width, c.Chart.Height)
	}
	c.Chart.Format = strings.ToLower(c.Chart.Format)
	if !chart.IsSupportedFormat(c.Chart.Format) {
		return fmt.Errorf("unsupported chart format: %s", c.Chart.Format)
	}
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Chart.Output)), "."); ext != "" {
		if !chart.IsSupportedFormat(ext) {
			return fmt.Errorf("unsupported chart output file type: %s", ext)
		}
		c.Chart.Format = ext
	}
	if c.Summary.Template == "" {
		c.Summary.Template = DefaultSummaryTpl
	}

	return nil
}

// loadDotEnv reads a .env file from the working directory into the environment, if present.
// Variables that are already set take precedence.
func loadDotEnv() error {
	if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s file: %w", dotEnv, err)
	}
	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
