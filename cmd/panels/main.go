/*
DESCRIPTION
  panels is a tracker for lucky panel memory games. It previews the panels
  detected in a camera feed, and once the operator locks the grid it follows
  panel swaps, overlaying each panel's original content on the feed.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Alan Noble <alan@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package panels is the command line client of the panel tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/panels/display"
	"github.com/ausocean/panels/tracker"
	"github.com/ausocean/panels/tracker/config"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v0.3.0"

// Logging configuration.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

// Misc constants.
const (
	profilePath = "panels.prof"
	pkg         = "panels: "
	windowTitle = "Lucky Panel Tracker"
)

// This is set to true if the 'profile' build tag is provided on build.
var canProfile = false

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		configPath  = flag.String("config", "", "path of a KEY=value config file")
		logPath     = flag.String("log", "panels.log", "path of the log file")
		headless    = flag.Bool("headless", false, "run without a window, reading commands from stdin")
		input       = flag.String("input", "", "frame source: camera, v4l, file or manual")
		cameraID    = flag.String("camera", "", "capture device index or URL")
		inputPath   = flag.String("path", "", "device or file path for v4l and file inputs")
	)
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   *logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	defer fileLog.Close()

	// Create logger that we call methods on to log, which in turn writes to the
	// lumberjack logger and stderr.
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	log.Info("starting panels", "version", version)

	// If panels has been built with the profile tag, then we'll start a CPU profile.
	if canProfile {
		profile(log)
		defer pprof.StopCPUProfile()
		log.Info("profiling started")
	}

	cfg := config.Config{Logger: log, LogLevel: logVerbosity}
	if *configPath != "" {
		err := cfg.Load(*configPath)
		if err != nil {
			log.Fatal(pkg+"could not load config", "error", err.Error())
		}
	}

	// Flags given on the command line override the config file.
	vars := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			vars[config.KeyHeadless] = f.Value.String()
		case "input":
			vars[config.KeyInput] = *input
		case "camera":
			vars[config.KeyCameraID] = *cameraID
		case "path":
			vars[config.KeyInputPath] = *inputPath
		}
	})
	cfg.Update(vars)

	out, err := newSink(cfg.Headless || *headless, log)
	if err != nil {
		log.Fatal(pkg+"could not open display", "error", err.Error())
	}
	defer out.Close()

	log.Debug("initialising tracker")
	t, err := tracker.New(cfg, out)
	if err != nil {
		log.Fatal(pkg+"could not initialise tracker", "error", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("beginning main loop")
	err = t.Run(ctx)
	if err != nil {
		log.Error(pkg+"tracker stopped", "error", err.Error())
		return
	}
	log.Info("panels stopped")
}

// newSink returns a window, or a headless sink reading commands from stdin.
func newSink(headless bool, l logging.Logger) (display.Sink, error) {
	if headless {
		l.Info(pkg + "running headless, enter s to lock, r to reset, q to quit")
		return display.NewHeadless(os.Stdin, l), nil
	}
	w, err := display.NewWindow(windowTitle)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func profile(l logging.Logger) {
	f, err := os.Create(profilePath)
	if err != nil {
		l.Fatal(pkg+"could not create CPU profile", "error", err.Error())
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		l.Fatal(pkg+"could not start CPU profile", "error", err.Error())
	}
}
