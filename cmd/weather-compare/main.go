// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the weather-compare command.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/wneessen/weather-compare/internal/config"
	"github.com/wneessen/weather-compare/internal/i18n"
	"github.com/wneessen/weather-compare/internal/logger"
	"github.com/wneessen/weather-compare/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	// Read config
	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	flag.Usage = func() {
		printUsage(flag.CommandLine.Output(), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 && flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	// Initialize the service
	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize weather-compare service", logger.Err(err))
		os.Exit(1)
	}
	log.Debug("starting weather-compare", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))

	// Locations from the command line skip the prompts
	first, second := flag.Arg(0), flag.Arg(1)
	if flag.NArg() == 0 {
		first, second, err = serv.ReadLocations(os.Stdin, os.Stdout)
		if err != nil {
			log.Error("failed to read locations", logger.Err(err))
			os.Exit(1)
		}
	}

	if err = serv.Run(ctx, first, second); err != nil {
		log.Error("failed to compare weather forecasts", logger.Err(err))
		os.Exit(1)
	}
}

// printUsage writes the command synopsis. The chart file is kept after the run so the opened
// viewer can still read it.
func printUsage(w io.Writer, name string) {
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<first location> <second location>]\n\n", name)
	_, _ = fmt.Fprintf(w, "Without locations, %s prompts for them on standard input.\n", name)
	_, _ = fmt.Fprintln(w, "The chart is written to chart.output in the config, or else to a new")
	_, _ = fmt.Fprintf(w, "temporary file (%s<format>) that is not removed afterwards.\n\n",
		filepath.Join(os.TempDir(), service.ChartFilePattern))
	_, _ = fmt.Fprintln(w, "Flags:")
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "weather-compare", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
