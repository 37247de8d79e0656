// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-compare/internal/i18n"
	"github.com/wneessen/weather-compare/internal/vartype"
	"github.com/wneessen/weather-compare/internal/weather"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestNew(t *testing.T) {
	t.Run("creating a new renderer succeeds", func(t *testing.T) {
		renderer, err := New(14, 10, "PNG", testLocalizer(t, "en"))
		if err != nil {
			t.Fatalf("failed to create renderer: %s", err)
		}
		if renderer.Format() != "png" {
			t.Errorf("expected format to be %q, got %q", "png", renderer.Format())
		}
	})
	t.Run("unsupported format fails", func(t *testing.T) {
		_, err := New(14, 10, "bmp", testLocalizer(t, "en"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected error to be %s, got %v", ErrUnsupportedFormat, err)
		}
	})
	t.Run("every supported format is accepted", func(t *testing.T) {
		for _, format := range SupportedFormats {
			renderer, err := New(14, 10, format, testLocalizer(t, "en"))
			if err != nil {
				t.Errorf("failed to create renderer for %q: %s", format, err)
				continue
			}
			if renderer.Format() != format {
				t.Errorf("expected format to be %q, got %q", format, renderer.Format())
			}
		}
	})
	t.Run("invalid size fails", func(t *testing.T) {
		if _, err := New(0, 10, "png", testLocalizer(t, "en")); err == nil {
			t.Error("expected renderer creation to fail")
		}
		if _, err := New(14, -1, "png", testLocalizer(t, "en")); err == nil {
			t.Error("expected renderer creation to fail")
		}
	})
	t.Run("missing localizer fails", func(t *testing.T) {
		if _, err := New(14, 10, "png", nil); err == nil {
			t.Error("expected renderer creation to fail")
		}
	})
}

func TestRenderer_Render(t *testing.T) {
	first := Series{Label: "Stockholm", Table: testTable(7.4, math.NaN(), 8.1)}
	second := Series{Label: "Oslo", Table: testTable(3.1, 2.8, 2.2)}

	t.Run("rendering a png chart succeeds", func(t *testing.T) {
		renderer, err := New(6, 4, "png", testLocalizer(t, "en"))
		if err != nil {
			t.Fatalf("failed to create renderer: %s", err)
		}
		buf := bytes.NewBuffer(nil)
		if err = renderer.Render(buf, first, second); err != nil {
			t.Fatalf("failed to render chart: %s", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
			t.Error("expected output to be a PNG image")
		}
	})
	t.Run("rendering a svg chart contains the labels", func(t *testing.T) {
		renderer, err := New(6, 4, "svg", testLocalizer(t, "en"))
		if err != nil {
			t.Fatalf("failed to create renderer: %s", err)
		}
		buf := bytes.NewBuffer(nil)
		if err = renderer.Render(buf, first, second); err != nil {
			t.Fatalf("failed to render chart: %s", err)
		}
		out := buf.String()
		if !strings.Contains(out, "<svg") {
			t.Fatal("expected output to be a SVG image")
		}
		for _, want := range []string{
			"Weather comparison for Stockholm and Oslo", "Temperature (°C)", "Wind Speed (m/s)",
			"Humidity (%)", "Precipitation (mm)", "Stockholm", "Oslo",
			"Location data provided by OpenStreetMap via Nominatim",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected chart to contain %q", want)
			}
		}
	})
	t.Run("chart labels are localized", func(t *testing.T) {
		renderer, err := New(6, 4, "svg", testLocalizer(t, "de"))
		if err != nil {
			t.Fatalf("failed to create renderer: %s", err)
		}
		buf := bytes.NewBuffer(nil)
		if err = renderer.Render(buf, first, second); err != nil {
			t.Fatalf("failed to render chart: %s", err)
		}
		if !strings.Contains(buf.String(), "Wettervergleich für Stockholm und Oslo") {
			t.Error("expected chart title to be translated")
		}
	})
	t.Run("empty tables still render", func(t *testing.T) {
		renderer, err := New(6, 4, "png", testLocalizer(t, "en"))
		if err != nil {
			t.Fatalf("failed to create renderer: %s", err)
		}
		buf := bytes.NewBuffer(nil)
		err = renderer.Render(buf, Series{Label: "A"}, Series{Label: "B"})
		if err != nil {
			t.Fatalf("failed to render chart: %s", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
			t.Error("expected output to be a PNG image")
		}
	})
}

func TestIsSupportedFormat(t *testing.T) {
	for _, format := range []string{"png", "svg", "tiff"} {
		if !IsSupportedFormat(format) {
			t.Errorf("expected %q to be supported", format)
		}
	}
	for _, format := range []string{"", "bmp", "gif", "PNG"} {
		if IsSupportedFormat(format) {
			t.Errorf("expected %q to be unsupported", format)
		}
	}
}

func TestXYPoints(t *testing.T) {
	table := testTable(7.4, math.NaN(), 8.1)
	table.Temperature[1] = vartype.VarFloat64{}
	xys := xyPoints(table.Date, table.Temperature)
	if len(xys) != 2 {
		t.Fatalf("expected 2 points, got %d", len(xys))
	}
	if xys[0].X != float64(table.Date[0].Unix()) || xys[0].Y != 7.4 {
		t.Errorf("unexpected first point: %+v", xys[0])
	}
	if xys[1].X != float64(table.Date[2].Unix()) || xys[1].Y != 8.1 {
		t.Errorf("unexpected second point: %+v", xys[1])
	}
}

// testTable returns a three-row table with the given temperatures. A NaN temperature is
// stored as a set value to exercise the NaN filter.
func testTable(temps ...float64) weather.Table {
	start := time.Date(2024, 11, 6, 11, 0, 0, 0, time.UTC)
	table := weather.Table{}
	for i, temp := range temps {
		table.Date = append(table.Date, start.Add(time.Hour*time.Duration(i)))
		table.Temperature = append(table.Temperature, vartype.NewVariable(temp))
		wind := vartype.VarFloat64{}
		if i != 1 {
			wind.Set(float64(i) + 2.5)
		}
		table.Wind = append(table.Wind, wind)
		table.Humidity = append(table.Humidity, vartype.NewVariable(80-float64(i)*3))
		table.Precipitation = append(table.Precipitation, vartype.NewVariable(float64(i)*0.4))
	}
	return table
}

func testLocalizer(t *testing.T, loc string) *spreak.Localizer {
	t.Helper()
	localizer, err := i18n.New(loc)
	if err != nil {
		t.Fatalf("failed to create localizer: %s", err)
	}
	return localizer
}
