// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wneessen/weather-compare/internal/chart"
)

// ChartFilePattern names the temporary chart file, completed by the format extension. The file
// is left in place after the run.
const ChartFilePattern = "weather-compare-*."

// writeChart renders the chart to the configured output file, or to a new temporary file if none
// is configured, and returns the path of the written file.
func (s *Service) writeChart(first, second chart.Series) (path string, err error) {
	var file *os.File
	if s.config.Chart.Output != "" {
		file, err = os.Create(s.config.Chart.Output)
	} else {
		file, err = os.CreateTemp("", ChartFilePattern+s.renderer.Format())
	}
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close chart file: %w", closeErr))
		}
		if err != nil {
			path = ""
			_ = os.Remove(file.Name())
		}
	}()

	buf := bufio.NewWriter(file)
	if err = s.renderer.Render(buf, first, second); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err = buf.Flush(); err != nil {
		return "", fmt.Errorf("failed to write chart file: %w", err)
	}
	return file.Name(), nil
}

// ReadLocations prompts on out for two location names and reads them from in, one per line. The
// names are taken as entered, only the line terminator is removed.
func (s *Service) ReadLocations(in io.Reader, out io.Writer) (string, string, error) {
	reader := bufio.NewReader(in)
	prompts := []string{
		s.localizer.Get("Enter the first location: "),
		s.localizer.Get("Enter the second location: "),
	}
	locations := make([]string, len(prompts))
	for i, prompt := range prompts {
		if _, err := io.WriteString(out, prompt); err != nil {
			return "", "", fmt.Errorf("failed to write prompt: %w", err)
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", "", fmt.Errorf("failed to read location: %w", err)
		}
		locations[i] = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	}
	return locations[0], locations[1], nil
}
