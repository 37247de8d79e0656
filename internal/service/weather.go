// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/weather-compare/internal/geocode"
	"github.com/wneessen/weather-compare/internal/logger"
	"github.com/wneessen/weather-compare/internal/weather"
)

// resolved is a user supplied location label with its coordinates.
type resolved struct {
	label  string
	coords geocode.Coordinate
}

// resolveLocations looks up all locations, in order, before reporting failures. Every failure
// is logged with the location it belongs to.
func (s *Service) resolveLocations(ctx context.Context, locations ...string) ([]resolved, error) {
	result := make([]resolved, len(locations))
	var errs []error
	for i, location := range locations {
		coords, err := s.geocoder.Search(ctx, location)
		if err != nil {
			s.logger.Error("failed to resolve location", slog.String("location", location),
				slog.String("geocoder", s.geocoder.Name()), logger.Err(err))
			errs = append(errs, fmt.Errorf("location %q: %w", location, err))
			continue
		}
		s.logger.Debug("location resolved", slog.String("location", location),
			slog.String("coordinates", coords.String()), slog.Bool("cache_hit", coords.CacheHit))
		result[i] = resolved{label: location, coords: coords}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrResolveLocations, errors.Join(errs...))
	}
	return result, nil
}

// fetchForecasts retrieves the forecast of every resolved location, in order, before reporting
// failures. Every failure is logged with the coordinates it belongs to.
func (s *Service) fetchForecasts(ctx context.Context, locations []resolved) ([]*weather.Forecast, error) {
	result := make([]*weather.Forecast, len(locations))
	var errs []error
	for i, loc := range locations {
		forecast, err := s.forecaster.Forecast(ctx, loc.coords)
		if err != nil {
			s.logger.Error("failed to fetch forecast", slog.String("location", loc.label),
				slog.String("coordinates", loc.coords.String()), slog.String("provider", s.forecaster.Name()),
				logger.Err(err))
			errs = append(errs, err)
			continue
		}
		s.logger.Debug("forecast fetched", slog.String("location", loc.label),
			slog.Int("entries", len(forecast.TimeSeries)), slog.String("approved", forecast.ApprovedTime))
		result[i] = forecast
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrFetchForecasts, errors.Join(errs...))
	}
	return result, nil
}
