// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package geocode resolves free-text location names into coordinates.
package geocode

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a geocoding lookup yields no results.
var ErrNotFound = errors.New("no results found for location")

// Geocoder is implemented by each forward geocoding backend.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, location string) (Coordinate, error)
}
