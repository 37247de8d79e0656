// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/template"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/humanize/locale/sv"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"

	"github.com/wneessen/weather-compare/internal/config"
	"github.com/wneessen/weather-compare/internal/geocode"
	"github.com/wneessen/weather-compare/internal/vartype"
	"github.com/wneessen/weather-compare/internal/weather"
)

// Location is a resolved location with its parsed forecast.
type Location struct {
	Label      string
	Coordinate geocode.Coordinate
	Table      weather.Table
}

// LocationView holds the summarized forecast of one location.
type LocationView struct {
	Label      string
	Coordinate geocode.Coordinate

	From    time.Time
	To      time.Time
	Entries int

	MinTemperature   vartype.VarFloat64
	MaxTemperature   vartype.VarFloat64
	MaxWind          vartype.VarFloat64
	MaxHumidity      vartype.VarFloat64
	MaxPrecipitation vartype.VarFloat64

	Sunrise time.Time
	Sunset  time.Time
}

type TemplateContext struct {
	GeneratedAt   time.Time
	MoonPhase     string
	MoonPhaseIcon string
	Locations     []LocationView
}

type Presenter struct {
	humanizer *humanize.Humanizer
	localizer *spreak.Localizer
	tpl       *template.Template
}

func New(conf *config.Config, loc *spreak.Localizer) (*Presenter, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}
	if loc == nil {
		return nil, errors.New("localizer is required")
	}
	collection := humanize.MustNew(humanize.WithLocale(de.New(), sv.New()))
	pres := &Presenter{
		humanizer: collection.CreateHumanizer(loc.Language()),
		localizer: loc,
	}

	tpl, err := template.New("summary").Funcs(pres.templateFuncMap()).Parse(conf.Summary.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary template: %w", err)
	}
	pres.tpl = tpl
	return pres, nil
}

// BuildContext summarizes the given locations at the point in time now. Sunrise and sunset are
// computed for the calendar day of now at each location.
func (p *Presenter) BuildContext(now time.Time, locations ...Location) TemplateContext {
	phase := moonphase.New(now).PhaseName()
	ctx := TemplateContext{
		GeneratedAt:   now,
		MoonPhase:     phase,
		MoonPhaseIcon: MoonPhaseIcon[phase],
		Locations:     make([]LocationView, 0, len(locations)),
	}
	for _, loc := range locations {
		ctx.Locations = append(ctx.Locations, p.viewFromLocation(now, loc))
	}
	return ctx
}

// Render executes the summary template for ctx and writes the result to w.
func (p *Presenter) Render(w io.Writer, ctx TemplateContext) error {
	if err := p.tpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("failed to render summary template: %w", err)
	}
	return nil
}

func (p *Presenter) viewFromLocation(now time.Time, loc Location) LocationView {
	view := LocationView{
		Label:            loc.Label,
		Coordinate:       loc.Coordinate,
		Entries:          loc.Table.Len(),
		MinTemperature:   reduce(loc.Table.Temperature, math.Min),
		MaxTemperature:   reduce(loc.Table.Temperature, math.Max),
		MaxWind:          reduce(loc.Table.Wind, math.Max),
		MaxHumidity:      reduce(loc.Table.Humidity, math.Max),
		MaxPrecipitation: reduce(loc.Table.Precipitation, math.Max),
	}
	if view.Entries > 0 {
		view.From = loc.Table.Date[0]
		view.To = loc.Table.Date[view.Entries-1]
	}
	view.Sunrise, view.Sunset = sunrise.SunriseSunset(loc.Coordinate.Lat, loc.Coordinate.Lon,
		now.Year(), now.Month(), now.Day())
	view.Sunrise, view.Sunset = view.Sunrise.In(now.Location()), view.Sunset.In(now.Location())
	return view
}

// reduce folds the set values of column with fn. The result is absent if no value is set.
func reduce(column []vartype.VarFloat64, fn func(a, b float64) float64) vartype.VarFloat64 {
	var result vartype.VarFloat64
	for _, val := range column {
		if !val.IsSet() {
			continue
		}
		if !result.IsSet() {
			result.Set(val.Value())
			continue
		}
		result.Set(fn(result.Value(), val.Value()))
	}
	return result
}
