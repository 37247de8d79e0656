// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"fmt"
	"time"

	"github.com/wneessen/weather-compare/internal/vartype"
)

// Table is the column-aligned representation of a Forecast. Row i across all columns
// describes one forecast time step. All columns always have the same length.
type Table struct {
	Date          []time.Time
	Temperature   []vartype.VarFloat64
	Wind          []vartype.VarFloat64
	Humidity      []vartype.VarFloat64
	Precipitation []vartype.VarFloat64
}

func newTable(size int) Table {
	return Table{
		Date:          make([]time.Time, 0, size),
		Temperature:   make([]vartype.VarFloat64, 0, size),
		Wind:          make([]vartype.VarFloat64, 0, size),
		Humidity:      make([]vartype.VarFloat64, 0, size),
		Precipitation: make([]vartype.VarFloat64, 0, size),
	}
}

// Len returns the number of rows in the table.
func (t Table) Len() int {
	return len(t.Date)
}

// Parse flattens the time series of forecast into a Table, keeping the order of the
// source. Parameters missing from a time step are absent in the respective column.
// A nil forecast or an empty time series yields an empty table.
func Parse(forecast *Forecast) (Table, error) {
	if forecast == nil {
		return newTable(0), nil
	}

	table := newTable(len(forecast.TimeSeries))
	for i, entry := range forecast.TimeSeries {
		date, err := time.Parse(time.RFC3339, entry.ValidTime)
		if err != nil {
			return Table{}, fmt.Errorf("failed to parse valid time of time series entry %d: %w", i, err)
		}
		params := entry.values()

		table.Date = append(table.Date, date)
		table.Temperature = append(table.Temperature, params[ParamTemperature])
		table.Wind = append(table.Wind, params[ParamWindSpeed])
		table.Humidity = append(table.Humidity, params[ParamHumidity])
		table.Precipitation = append(table.Precipitation, params[ParamPrecipitationMax])
	}

	return table, nil
}

// values collapses the parameter list into a name to first value mapping. A parameter
// without values is left out. Repeated names overwrite earlier ones.
func (e TimeEntry) values() map[string]vartype.VarFloat64 {
	params := make(map[string]vartype.VarFloat64, len(e.Parameters))
	for _, param := range e.Parameters {
		if len(param.Values) == 0 {
			continue
		}
		params[param.Name] = vartype.NewVariable(param.Values[0])
	}
	return params
}
