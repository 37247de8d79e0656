// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/wneessen/weather-compare/internal/geocode"
	"github.com/wneessen/weather-compare/internal/http"
)

const (
	APISearchEndpoint = "https://nominatim.openstreetmap.org/search"

	// DefaultRequestInterval is the minimum gap between two search requests. The public
	// Nominatim instance allows at most one request per second.
	DefaultRequestInterval = time.Second

	name = "osm-nominatim"
)

type Nominatim struct {
	http    *http.Client
	lang    language.Tag
	limiter *rate.Limiter
}

type SearchResult struct {
	APILat      string `json:"lat"`
	APILon      string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// New returns a Nominatim geocoder that sends at most one search request per interval.
// A non-positive interval selects DefaultRequestInterval.
func New(client *http.Client, lang language.Tag, interval time.Duration) *Nominatim {
	if interval <= 0 {
		interval = DefaultRequestInterval
	}
	return &Nominatim{
		http:    client,
		lang:    lang,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (n *Nominatim) Name() string {
	return name
}

// Search looks up the first matching place for location and returns its coordinates
// rounded to geocode.Precision decimal places.
func (n *Nominatim) Search(ctx context.Context, location string) (geocode.Coordinate, error) {
	var result []SearchResult
	var err error

	if err = n.limiter.Wait(ctx); err != nil {
		return geocode.Coordinate{}, fmt.Errorf("failed to wait for Nominatim request slot: %w", err)
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("accept-language", n.lang.String())

	if _, err = n.http.Get(ctx, APISearchEndpoint, &result, query, nil); err != nil {
		return geocode.Coordinate{}, fmt.Errorf("failed to fetch coordinates for %q from Nominatim API: %w",
			location, err)
	}
	if len(result) < 1 {
		return geocode.Coordinate{}, fmt.Errorf("%w: %q", geocode.ErrNotFound, location)
	}

	var coords geocode.Coordinate
	coords.Lat, err = strconv.ParseFloat(result[0].APILat, 64)
	if err != nil {
		return geocode.Coordinate{}, fmt.Errorf("failed to parse latitude from Nominatim API response: %w", err)
	}
	coords.Lon, err = strconv.ParseFloat(result[0].APILon, 64)
	if err != nil {
		return geocode.Coordinate{}, fmt.Errorf("failed to parse longitude from Nominatim API response: %w", err)
	}

	return coords.Round(geocode.Precision), nil
}
