// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package chart renders two parsed forecasts side by side as a 2x2 grid of line plots, one panel
// per weather parameter.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/vorlif/spreak"
	"github.com/vorlif/spreak/localize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wneessen/weather-compare/internal/vartype"
	"github.com/wneessen/weather-compare/internal/weather"
)

const (
	rows = 2
	cols = 2

	tickFormat = "01-02 15:04"
)

var ErrUnsupportedFormat = errors.New("unsupported chart format")

// SupportedFormats lists the image formats the renderer can write. Each doubles as the file
// extension.
var SupportedFormats = []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff"}

// Series is one location's forecast table together with its legend label.
type Series struct {
	Label string
	Table weather.Table
}

type panel struct {
	title  localize.MsgID
	yLabel localize.MsgID
	column func(weather.Table) []vartype.VarFloat64
}

// panels is the fixed parameter to panel mapping, in row-major order.
var panels = [rows * cols]panel{
	{"Temperature", "Temperature (°C)", func(t weather.Table) []vartype.VarFloat64 { return t.Temperature }},
	{"Wind Speed", "Wind Speed (m/s)", func(t weather.Table) []vartype.VarFloat64 { return t.Wind }},
	{"Humidity", "Humidity (%)", func(t weather.Table) []vartype.VarFloat64 { return t.Humidity }},
	{"Precipitation", "Precipitation (mm)", func(t weather.Table) []vartype.VarFloat64 { return t.Precipitation }},
}

type Renderer struct {
	width     vg.Length
	height    vg.Length
	format    string
	localizer *spreak.Localizer
}

// New returns a Renderer for charts of the given size in inches, written in the given image format.
func New(width, height float64, format string, localizer *spreak.Localizer) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid chart size: %gx%g", width, height)
	}
	format = strings.ToLower(format)
	if !IsSupportedFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if localizer == nil {
		return nil, errors.New("localizer is required")
	}
	return &Renderer{
		width:     vg.Length(width) * vg.Inch,
		height:    vg.Length(height) * vg.Inch,
		format:    format,
		localizer: localizer,
	}, nil
}

// IsSupportedFormat reports whether format, in lower case, is one of SupportedFormats.
func IsSupportedFormat(format string) bool {
	return slices.Contains(SupportedFormats, format)
}

// Format returns the image format, which doubles as the file extension.
func (r *Renderer) Format() string {
	return r.format
}

// Render draws the comparison chart for both series and writes the encoded image to w.
func (r *Renderer) Render(w io.Writer, first, second Series) error {
	grid := make([][]*plot.Plot, rows)
	for row := range rows {
		grid[row] = make([]*plot.Plot, cols)
		for col := range cols {
			p, err := r.panelPlot(panels[row*cols+col], first, second)
			if err != nil {
				return fmt.Errorf("failed to create %s panel: %w", panels[row*cols+col].title, err)
			}
			grid[row][col] = p
		}
	}

	canvas, err := draw.NewFormattedCanvas(r.width, r.height, r.format)
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", r.format, err)
	}
	dc := draw.New(canvas)

	titleStyle := textStyle(vg.Points(18), text.YTop)
	captionStyle := textStyle(vg.Points(10), text.YBottom)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 10,
		PadY:      vg.Millimeter * 10,
		PadTop:    titleStyle.Height("W") * 2,
		PadBottom: captionStyle.Height("W") * 2,
		PadLeft:   vg.Millimeter * 5,
		PadRight:  vg.Millimeter * 5,
	}
	canvases := plot.Align(grid, tiles, dc)
	for row := range rows {
		for col := range cols {
			grid[row][col].Draw(canvases[row][col])
		}
	}

	centerX := dc.Min.X + (dc.Max.X-dc.Min.X)/2
	dc.FillText(titleStyle, vg.Point{X: centerX, Y: dc.Max.Y - vg.Millimeter*3},
		r.localizer.Getf("Weather comparison for %s and %s", first.Label, second.Label))
	dc.FillText(captionStyle, vg.Point{X: centerX, Y: dc.Min.Y + vg.Millimeter*2},
		r.localizer.Get("Location data provided by OpenStreetMap via Nominatim"))

	if _, err = canvas.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", r.format, err)
	}
	return nil
}

func (r *Renderer) panelPlot(pnl panel, series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.localizer.Get(pnl.title)
	p.X.Label.Text = r.localizer.Get("Date")
	p.Y.Label.Text = r.localizer.Get(pnl.yLabel)
	p.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(xyPoints(s.Table.Date, pnl.column(s.Table)))
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		if len(line.XYs) > 0 {
			p.Add(line, points)
		}
		p.Legend.Add(s.Label, line, points)
	}
	return p, nil
}

// xyPoints pairs timestamps with values, skipping rows where the value is absent.
func xyPoints(dates []time.Time, values []vartype.VarFloat64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values))
	for i, val := range values {
		if i >= len(dates) || !val.IsSet() {
			continue
		}
		v := val.Value()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(dates[i].Unix()), Y: v})
	}
	return xys
}

func textStyle(size vg.Length, yAlign text.YAlignment) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  text.XCenter,
		YAlign:  yAlign,
		Handler: plot.DefaultTextHandler,
	}
}
