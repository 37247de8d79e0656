// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"fmt"
	"math"
)

// Precision is the number of decimal places resolved coordinates are rounded to.
const Precision = 4

// Coordinate represents a geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64

	CacheHit bool
}

// Round returns a copy of the coordinate with latitude and longitude rounded half away
// from zero to the given number of decimal places.
func (c Coordinate) Round(precision int) Coordinate {
	pow := math.Pow(10, float64(precision))
	c.Lat = math.Round(c.Lat*pow) / pow
	c.Lon = math.Round(c.Lon*pow) / pow
	return c
}

// Valid checks if the coordinate is valid according to the EPSG logic
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", formatDegrees(c.Lat), formatDegrees(c.Lon))
}

func formatDegrees(val float64) string {
	return fmt.Sprintf("%.*f", Precision, val)
}
