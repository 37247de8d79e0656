// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import "testing"

func TestCoordinate_Round(t *testing.T) {
	tests := []struct {
		name    string
		in      Coordinate
		wantLat float64
		wantLon float64
	}{
		{"rounds up", Coordinate{Lat: 59.32938, Lon: 18.06871}, 59.3294, 18.0687},
		{"already rounded", Coordinate{Lat: 59.3294, Lon: 18.0687}, 59.3294, 18.0687},
		{"negative values", Coordinate{Lat: -33.86882, Lon: -151.20929}, -33.8688, -151.2093},
		{"long fractions", Coordinate{Lat: 59.3251172, Lon: 18.0710935}, 59.3251, 18.0711},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Round(Precision)
			if got.Lat != tc.wantLat {
				t.Errorf("expected latitude to be %v, got %v", tc.wantLat, got.Lat)
			}
			if got.Lon != tc.wantLon {
				t.Errorf("expected longitude to be %v, got %v", tc.wantLon, got.Lon)
			}
		})
	}
}

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		in    Coordinate
		valid bool
	}{
		{"stockholm", Coordinate{Lat: 59.3251, Lon: 18.0711}, true},
		{"extreme north east", Coordinate{Lat: 90, Lon: 180}, true},
		{"extreme south west", Coordinate{Lat: -90, Lon: -180}, true},
		{"invalid latitude", Coordinate{Lat: 91, Lon: 0}, false},
		{"invalid longitude", Coordinate{Lat: 0, Lon: -181}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.in.Valid() != tc.valid {
				t.Errorf("expected valid to be %t for %s", tc.valid, tc.in)
			}
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lat: 59.3, Lon: 18.0711}
	want := "(59.3000, 18.0711)"
	if c.String() != want {
		t.Errorf("expected %q, got %q", want, c.String())
	}
}
