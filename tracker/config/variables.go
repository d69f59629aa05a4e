/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type in
  a string format, a function for updating the variable in the Config struct
  from a string, and finally, a validation function to check the validity of the
  corresponding field value in the Config.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ausocean/utils/logging"
)

// Config map Keys.
const (
	KeyAlpha               = "Alpha"
	KeyBinaryThreshold     = "BinaryThreshold"
	KeyBrightnessThreshold = "BrightnessThreshold"
	KeyCameraID            = "CameraID"
	KeyClassifier          = "Classifier"
	KeyConfirmFrames       = "ConfirmFrames"
	KeyDetector            = "Detector"
	KeyFileFPS             = "FileFPS"
	KeyHeadless            = "Headless"
	KeyHeight              = "Height"
	KeyInput               = "Input"
	KeyInputPath           = "InputPath"
	KeyLogging             = "logging"
	KeyLoop                = "Loop"
	KeyMaxPanelArea        = "MaxPanelArea"
	KeyMinPanelArea        = "MinPanelArea"
	KeyRowHeight           = "RowHeight"
	KeySaturationThreshold = "SaturationThreshold"
	KeySwapCooldown        = "SwapCooldown"
	KeyWidth               = "Width"
)

// Config map parameter types.
const (
	typeString = "string"
	typeUint   = "uint"
	typeBool   = "bool"
	typeFloat  = "float"
)

// Default variable values.
const (
	// General defaults.
	defaultInput      = InputCamera
	defaultCameraID   = "1"
	defaultInputPath  = "/dev/video0"
	defaultVerbosity  = logging.Info
	defaultWidth      = 1280
	defaultHeight     = 720
	defaultFileFPS    = 0
	defaultDetector   = DetectorBasic
	defaultClassifier = ClassifierHSV

	// Tracking defaults.
	defaultSwapCooldown  = 600 * time.Millisecond
	defaultConfirmFrames = 2

	// Classification defaults.
	defaultSaturationThreshold = 85.0
	defaultBrightnessThreshold = 100.0

	// Overlay defaults.
	defaultAlpha = 0.2

	// Detection defaults.
	defaultBinaryThreshold = 180
	defaultMinPanelArea    = 4000
	defaultMaxPanelArea    = 25000
	defaultRowHeight       = 50
)

// Variables describes the variables that can be used for tracker control.
// These structs provide the name and type of variable, a function for updating
// this variable in a Config, and a function for validating the value of the variable.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyAlpha,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.Alpha = parseFloat(KeyAlpha, v, c) },
		Validate: func(c *Config) {
			if c.Alpha <= 0 || c.Alpha > 1 {
				c.LogInvalidField(KeyAlpha, defaultAlpha)
				c.Alpha = defaultAlpha
			}
		},
	},
	{
		Name:   KeyBinaryThreshold,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.BinaryThreshold = parseUint(KeyBinaryThreshold, v, c) },
		Validate: func(c *Config) {
			if c.BinaryThreshold == 0 || c.BinaryThreshold > 255 {
				c.LogInvalidField(KeyBinaryThreshold, defaultBinaryThreshold)
				c.BinaryThreshold = defaultBinaryThreshold
			}
		},
	},
	{
		Name:   KeyBrightnessThreshold,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.BrightnessThreshold = parseFloat(KeyBrightnessThreshold, v, c) },
		Validate: func(c *Config) {
			if c.BrightnessThreshold <= 0 || c.BrightnessThreshold > 255 {
				c.LogInvalidField(KeyBrightnessThreshold, defaultBrightnessThreshold)
				c.BrightnessThreshold = defaultBrightnessThreshold
			}
		},
	},
	{
		Name:   KeyCameraID,
		Type:   typeString,
		Update: func(c *Config, v string) { c.CameraID = strings.TrimSpace(v) },
		Validate: func(c *Config) {
			if c.CameraID == "" {
				c.LogInvalidField(KeyCameraID, defaultCameraID)
				c.CameraID = defaultCameraID
			}
		},
	},
	{
		Name: KeyClassifier,
		Type: "enum:hsv,cv",
		Update: func(c *Config, v string) {
			c.Classifier = parseEnum(KeyClassifier, v, map[string]uint8{"hsv": ClassifierHSV, "cv": ClassifierCV}, c)
		},
		Validate: func(c *Config) {
			switch c.Classifier {
			case ClassifierHSV, ClassifierCV:
			default:
				c.LogInvalidField(KeyClassifier, defaultClassifier)
				c.Classifier = defaultClassifier
			}
		},
	},
	{
		Name:   KeyConfirmFrames,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.ConfirmFrames = parseUint(KeyConfirmFrames, v, c) },
		Validate: func(c *Config) {
			c.ConfirmFrames = lessThanOrEqual(KeyConfirmFrames, c.ConfirmFrames, 0, c, defaultConfirmFrames)
		},
	},
	{
		Name: KeyDetector,
		Type: "enum:basic,contour",
		Update: func(c *Config, v string) {
			c.Detector = parseEnum(KeyDetector, v, map[string]uint8{"basic": DetectorBasic, "contour": DetectorContour}, c)
		},
		Validate: func(c *Config) {
			switch c.Detector {
			case DetectorBasic, DetectorContour:
			default:
				c.LogInvalidField(KeyDetector, defaultDetector)
				c.Detector = defaultDetector
			}
		},
	},
	{
		Name:   KeyFileFPS,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.FileFPS = parseUint(KeyFileFPS, v, c) },
		Validate: func(c *Config) {
			if c.FileFPS > 0 && c.Input != InputFile {
				c.LogInvalidField(KeyFileFPS, defaultFileFPS)
				c.FileFPS = defaultFileFPS
			}
		},
	},
	{
		Name:   KeyHeadless,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Headless = parseBool(KeyHeadless, v, c) },
	},
	{
		Name:   KeyHeight,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.Height = parseUint(KeyHeight, v, c) },
		Validate: func(c *Config) {
			c.Height = lessThanOrEqual(KeyHeight, c.Height, 0, c, defaultHeight)
		},
	},
	{
		Name: KeyInput,
		Type: "enum:camera,v4l,file,manual",
		Update: func(c *Config, v string) {
			c.Input = parseEnum(
				KeyInput,
				v,
				map[string]uint8{
					"camera": InputCamera,
					"v4l":    InputV4L,
					"file":   InputFile,
					"manual": InputManual,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.Input {
			case InputCamera, InputV4L, InputFile, InputManual:
			default:
				c.LogInvalidField(KeyInput, defaultInput)
				c.Input = defaultInput
			}
		},
	},
	{
		Name:   KeyInputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.InputPath = v },
		Validate: func(c *Config) {
			if c.InputPath == "" && c.Input == InputV4L {
				c.LogInvalidField(KeyInputPath, defaultInputPath)
				c.InputPath = defaultInputPath
			}
		},
	},
	{
		Name: KeyLogging,
		Type: "enum:Debug,Info,Warning,Error,Fatal",
		Update: func(c *Config, v string) {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				c.Logger.Warning("invalid Logging param", "value", v)
			}
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name:   KeyLoop,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Loop = parseBool(KeyLoop, v, c) },
	},
	{
		Name:   KeyMaxPanelArea,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.MaxPanelArea = parseUint(KeyMaxPanelArea, v, c) },
		Validate: func(c *Config) {
			c.MaxPanelArea = lessThanOrEqual(KeyMaxPanelArea, c.MaxPanelArea, 0, c, defaultMaxPanelArea)
		},
	},
	{
		Name:   KeyMinPanelArea,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.MinPanelArea = parseUint(KeyMinPanelArea, v, c) },
		Validate: func(c *Config) {
			if c.MinPanelArea == 0 || c.MinPanelArea >= c.MaxPanelArea {
				c.LogInvalidField(KeyMinPanelArea, defaultMinPanelArea)
				c.MinPanelArea = defaultMinPanelArea
			}
		},
	},
	{
		Name:   KeyRowHeight,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.RowHeight = parseUint(KeyRowHeight, v, c) },
		Validate: func(c *Config) {
			c.RowHeight = lessThanOrEqual(KeyRowHeight, c.RowHeight, 0, c, defaultRowHeight)
		},
	},
	{
		Name:   KeySaturationThreshold,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.SaturationThreshold = parseFloat(KeySaturationThreshold, v, c) },
		Validate: func(c *Config) {
			if c.SaturationThreshold <= 0 || c.SaturationThreshold > 255 {
				c.LogInvalidField(KeySaturationThreshold, defaultSaturationThreshold)
				c.SaturationThreshold = defaultSaturationThreshold
			}
		},
	},
	{
		Name: KeySwapCooldown,
		Type: typeUint,
		Update: func(c *Config, v string) {
			_v, err := strconv.Atoi(v)
			if err != nil {
				c.Logger.Warning("invalid SwapCooldown param", "value", v)
			}
			c.SwapCooldown = time.Duration(_v) * time.Millisecond
		},
		Validate: func(c *Config) {
			if c.SwapCooldown <= 0 {
				c.LogInvalidField(KeySwapCooldown, defaultSwapCooldown)
				c.SwapCooldown = defaultSwapCooldown
			}
		},
	},
	{
		Name:   KeyWidth,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.Width = parseUint(KeyWidth, v, c) },
		Validate: func(c *Config) {
			c.Width = lessThanOrEqual(KeyWidth, c.Width, 0, c, defaultWidth)
		},
	},
}

func parseUint(n, v string, c *Config) uint {
	_v, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected unsigned int for param %s", n), "value", v)
	}
	return uint(_v)
}

func parseFloat(n, v string, c *Config) float64 {
	_v, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected float for param %s", n), "value", v)
	}
	return _v
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expect bool for param %s", n), "value", v)
	}
	return
}

func parseEnum(n, v string, enums map[string]uint8, c *Config) uint8 {
	_v, ok := enums[strings.ToLower(v)]
	if !ok {
		c.Logger.Warning(fmt.Sprintf("invalid value for %s param", n), "value", v)
	}
	return _v
}

func lessThanOrEqual(n string, v, cmp uint, c *Config, def uint) uint {
	if v <= cmp {
		c.LogInvalidField(n, def)
		return def
	}
	return v
}
