// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/browser"
	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-compare/internal/chart"
	"github.com/wneessen/weather-compare/internal/config"
	"github.com/wneessen/weather-compare/internal/geocode"
	"github.com/wneessen/weather-compare/internal/logger"
	"github.com/wneessen/weather-compare/internal/presenter"
	"github.com/wneessen/weather-compare/internal/weather"
)

var (
	ErrResolveLocations = errors.New("failed to resolve locations")
	ErrFetchForecasts   = errors.New("failed to fetch forecasts")
)

// Forecaster retrieves the raw forecast for a coordinate pair.
type Forecaster interface {
	Name() string
	Forecast(ctx context.Context, coords geocode.Coordinate) (*weather.Forecast, error)
}

// Renderer draws the comparison chart of two series.
type Renderer interface {
	Format() string
	Render(w io.Writer, first, second chart.Series) error
}

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	localizer *spreak.Localizer

	geocoder   geocode.Geocoder
	forecaster Forecaster
	renderer   Renderer
	presenter  *presenter.Presenter

	output io.Writer
	openFn func(path string) error
	nowFn  func() time.Time
}

func New(conf *config.Config, log *logger.Logger, t *spreak.Localizer) (*Service, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if t == nil {
		return nil, errors.New("localizer is required")
	}

	service := &Service{
		config:    conf,
		logger:    log,
		localizer: t,
		output:    os.Stdout,
		openFn:    browser.OpenFile,
		nowFn:     time.Now,
	}

	var err error
	service.geocoder = service.selectGeocodeProvider(t.Language())
	if service.forecaster, err = service.selectWeatherProvider(); err != nil {
		return nil, err
	}
	if service.renderer, err = chart.New(conf.Chart.Width, conf.Chart.Height, conf.Chart.Format, t); err != nil {
		return nil, fmt.Errorf("failed to create chart renderer: %w", err)
	}
	if service.presenter, err = presenter.New(conf, t); err != nil {
		return nil, fmt.Errorf("failed to create summary presenter: %w", err)
	}

	return service, nil
}

// Run compares the weather forecasts of the two given locations. Both locations are resolved
// before any forecast is fetched, and both forecasts are fetched before anything is rendered. A
// failure in either stage aborts the run without producing a chart.
func (s *Service) Run(ctx context.Context, first, second string) error {
	coords, err := s.resolveLocations(ctx, first, second)
	if err != nil {
		return err
	}

	forecasts, err := s.fetchForecasts(ctx, coords)
	if err != nil {
		return err
	}

	locations := make([]presenter.Location, len(forecasts))
	for i, forecast := range forecasts {
		table, err := weather.Parse(forecast)
		if err != nil {
			return fmt.Errorf("failed to parse forecast for %q: %w", coords[i].label, err)
		}
		locations[i] = presenter.Location{Label: coords[i].label, Coordinate: coords[i].coords, Table: table}
	}

	if !s.config.Summary.Disable {
		if err = s.presenter.Render(s.output, s.presenter.BuildContext(s.nowFn(), locations...)); err != nil {
			s.logger.Warn("failed to print forecast summary", logger.Err(err))
		}
	}

	path, err := s.writeChart(
		chart.Series{Label: locations[0].Label, Table: locations[0].Table},
		chart.Series{Label: locations[1].Label, Table: locations[1].Table},
	)
	if err != nil {
		return err
	}
	s.logger.Info("weather comparison chart written", slog.String("path", path))

	if s.config.Chart.NoOpen {
		return nil
	}
	if err = s.openFn(path); err != nil {
		return fmt.Errorf("failed to open chart %s: %w", path, err)
	}
	return nil
}
