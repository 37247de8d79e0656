// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/wneessen/weather-compare/internal/geocode"
	nominatim "github.com/wneessen/weather-compare/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/weather-compare/internal/http"
	"github.com/wneessen/weather-compare/internal/weather/provider/smhi"
)

// selectGeocodeProvider returns the Nominatim geocoder behind a session cache. The cache lives as
// long as the service.
func (s *Service) selectGeocodeProvider(lang language.Tag) geocode.Geocoder {
	client := http.New(s.logger, s.config.HTTP.Timeout)
	return geocode.NewCachedGeocoder(nominatim.New(client, lang, s.config.GeoCoder.RequestInterval))
}

func (s *Service) selectWeatherProvider() (Forecaster, error) {
	provider, err := smhi.New(http.New(s.logger, s.config.HTTP.Timeout), s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMHI weather provider: %w", err)
	}
	return provider, nil
}
