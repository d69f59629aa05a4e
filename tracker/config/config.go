/*
NAME
  config.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the panel tracker.
package config

import (
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Enums to define inputs.
const (
	// Indicates no option has been set.
	NothingDefined = iota

	InputCamera
	InputV4L
	InputFile
	InputManual
)

// The panel detectors.
const (
	DetectorBasic = iota
	DetectorContour
)

// The face state classifiers.
const (
	ClassifierHSV = iota
	ClassifierCV
)

// Config provides parameters relevant to a tracker instance. Fields are set
// once at startup; Validate replaces unset or invalid values with defaults.
type Config struct {
	// Alpha is the weight of the live image when blending a panel's reference
	// image over it; the reference gets 1-Alpha.
	Alpha float64

	BinaryThreshold     uint    // Gray level above which a pixel is considered part of a panel.
	BrightnessThreshold float64 // Mean HSV value a face-up panel must exceed.

	// CameraID identifies the capture device for InputCamera. It is normally a
	// device index such as "0" or "1" but may be anything the capture backend
	// accepts, e.g. a stream URL.
	CameraID string

	Classifier    uint8 // Face state classifier, ClassifierHSV or ClassifierCV.
	ConfirmFrames uint  // Consecutive face-up readings needed to confirm a panel is up.
	Detector      uint8 // Panel detector, DetectorBasic or DetectorContour.
	FileFPS       uint  // Rate at which frames from a file source are processed; 0 is unpaced.

	// Headless disables the display window; commands are then read from stdin.
	Headless bool

	Height uint // Capture height in pixels.

	// Input defines the frame source.
	//
	// Valid values are defined by enums:
	// InputCamera:
	//		Capture device opened by CameraID.
	// InputV4L:
	//		Video4Linux device at InputPath, read through ffmpeg.
	// InputFile:
	//		MJPEG or concatenated JPEG file at InputPath.
	// InputManual:
	//		Frames supplied programmatically.
	Input uint8

	InputPath string // Device or file path for InputV4L and InputFile.

	// Logger holds an implementation of the Logger interface. This must be set
	// for the tracker to work correctly.
	Logger logging.Logger

	// LogLevel is the logging verbosity level.
	// Valid values are defined by enums from the logger package: logging.Debug,
	// logging.Info, logging.Warning logging.Error, logging.Fatal.
	LogLevel int8

	Loop bool // If true will restart reading of input after an io.EOF.

	MaxPanelArea uint // Bounding box areas at or above this are not panels.
	MinPanelArea uint // Bounding box areas at or below this are not panels.

	RowHeight uint // Height of the row buckets used to order panels.

	SaturationThreshold float64 // Mean HSV saturation a face-up panel must be below.

	// SwapCooldown is the minimum time between two committed swaps.
	SwapCooldown time.Duration

	Width uint // Capture width in pixels.
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

// Load reads KEY=value pairs from the file at path and applies them with
// Update. Keys are the variable names, e.g. SwapCooldown=600.
func (c *Config) Load(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "could not read config file %s", path)
	}
	c.Update(vars)
	return nil
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
