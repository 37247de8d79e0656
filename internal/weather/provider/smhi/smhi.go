// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package smhi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wneessen/weather-compare/internal/geocode"
	"github.com/wneessen/weather-compare/internal/http"
	"github.com/wneessen/weather-compare/internal/logger"
	"github.com/wneessen/weather-compare/internal/weather"
)

const (
	name        = "smhi"
	apiEndpoint = "https://opendata-download-metfcst.smhi.se/api/category/pmp3g/version/2/geotype/point/lon/%s/lat/%s/data.json"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

type SMHI struct {
	log  *logger.Logger
	http *http.Client
}

func New(http *http.Client, log *logger.Logger) (*SMHI, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &SMHI{http: http, log: log}, nil
}

func (s *SMHI) Name() string {
	return name
}

// Forecast retrieves the point forecast for coords. The decoded response is returned unmodified.
func (s *SMHI) Forecast(ctx context.Context, coords geocode.Coordinate) (*weather.Forecast, error) {
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinates, coords)
	}

	endpoint := Endpoint(coords)
	s.log.Debug("fetching point forecast", slog.String("provider", name), slog.String("endpoint", endpoint))

	forecast := new(weather.Forecast)
	if _, err := s.http.Get(ctx, endpoint, forecast, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data for coordinates %s from SMHI API: %w",
			coords, err)
	}

	return forecast, nil
}

// Endpoint returns the point forecast URL for coords. Longitude comes before latitude in the path.
func Endpoint(coords geocode.Coordinate) string {
	return fmt.Sprintf(apiEndpoint, formatCoord(coords.Lon), formatCoord(coords.Lat))
}

func formatCoord(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
