// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather holds the point forecast as returned by the SMHI open data API and the
// flattened table representation used for charting.
package weather

// Parameter names of the SMHI point forecast that end up in a Table.
const (
	ParamTemperature      = "t"
	ParamWindSpeed        = "ws"
	ParamHumidity         = "r"
	ParamPrecipitationMax = "pmax"
)

// Forecast is the decoded SMHI point forecast response. It is treated as read-only input.
type Forecast struct {
	ApprovedTime  string      `json:"approvedTime"`
	ReferenceTime string      `json:"referenceTime"`
	Geometry      Geometry    `json:"geometry"`
	TimeSeries    []TimeEntry `json:"timeSeries"`
}

type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// TimeEntry is one forecast snapshot for the timestamp given in ValidTime.
type TimeEntry struct {
	ValidTime  string      `json:"validTime"`
	Parameters []Parameter `json:"parameters"`
}

type Parameter struct {
	Name      string    `json:"name"`
	LevelType string    `json:"levelType"`
	Level     int       `json:"level"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}
