package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/input"
)

// Default values for configuration
const (
	DefaultCamera  = 0
	DefaultHands   = 1
	DefaultFPS     = 60
	DefaultMinArea = 3000

	dualHandBallSpeed = 6
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Control selects what drives the player paddle.
type Control string

const (
	ControlHand     Control = "hand"
	ControlKeyboard Control = "keyboard"
)

// Background selects what is drawn behind the court.
type Background string

const (
	BackgroundCamera Background = "camera"
	BackgroundSolid  Background = "solid"
)

// Config holds the application configuration
type Config struct {
	Control     Control    `yaml:"control"`
	MaxHands    int        `yaml:"max_hands"`
	CameraIndex int        `yaml:"camera"`
	Mirror      bool       `yaml:"mirror"`
	Background  Background `yaml:"background"`
	ShowPointer bool       `yaml:"pointer"`
	Mute        bool       `yaml:"mute"`
	FPS         int        `yaml:"fps"`
	LogFile     string     `yaml:"log_file"`
	Debug       bool       `yaml:"debug"`

	Court  CourtConfig  `yaml:"court"`
	Ball   BallConfig   `yaml:"ball"`
	Tuning TuningConfig `yaml:"tuning"`
}

type CourtConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
}

type BallConfig struct {
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeedFactor float64 `yaml:"max_speed_factor"`
}

type TuningConfig struct {
	SmoothingFactor float64 `yaml:"smoothing_factor"`
	OpponentGain    float64 `yaml:"opponent_gain"`
	PaddleSpeed     float64 `yaml:"paddle_speed"`
	MinHandArea     float64 `yaml:"min_hand_area"`
}

// Defaults returns the preset for the given number of hands. One hand plays
// the classic game against a fast autopilot on a black court; two hands get
// a faster ball, a more human autopilot, heavier smoothing and the mirrored
// camera picture behind the court.
func Defaults(hands int) *Config {
	cfg := &Config{
		Control:     ControlHand,
		MaxHands:    hands,
		CameraIndex: DefaultCamera,
		Background:  BackgroundSolid,
		ShowPointer: true,
		FPS:         DefaultFPS,
		Court: CourtConfig{
			Width:        game.DefaultCourtWidth,
			Height:       game.DefaultCourtHeight,
			PaddleWidth:  game.DefaultPaddleWidth,
			PaddleHeight: game.DefaultPaddleHeight,
		},
		Ball: BallConfig{
			Size:           game.DefaultBallSize,
			Speed:          game.DefaultBallSpeed,
			SpeedIncrement: game.DefaultSpeedIncrement,
			MaxSpeedFactor: game.DefaultMaxSpeedFactor,
		},
		Tuning: TuningConfig{
			SmoothingFactor: input.SingleHandSmoothing,
			OpponentGain:    game.FastOpponentGain,
			PaddleSpeed:     input.DefaultPaddleSpeed,
			MinHandArea:     DefaultMinArea,
		},
	}

	if hands >= 2 {
		cfg.Mirror = true
		cfg.Background = BackgroundCamera
		cfg.Ball.Speed = dualHandBallSpeed
		cfg.Tuning.SmoothingFactor = input.DualHandSmoothing
		cfg.Tuning.OpponentGain = game.HumanOpponentGain
	}
	return cfg
}

// ParseArgs parses command line arguments and returns a Config.
// Values come from the --hands preset, then the --config file, then any
// flag given explicitly.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("handpong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	def := Defaults(DefaultHands)
	control := fs.String("control", string(def.Control), "paddle control: hand or keyboard")
	hands := fs.Int("hands", DefaultHands, "hands to track (1 or 2)")
	camera := fs.Int("camera", def.CameraIndex, "video device index")
	mirror := fs.Bool("mirror", def.Mirror, "flip the camera picture horizontally")
	background := fs.String("background", string(def.Background), "court background: camera or solid")
	pointer := fs.Bool("pointer", def.ShowPointer, "draw the tracked fingertip")
	mute := fs.Bool("mute", false, "disable sound")
	fps := fs.Int("fps", def.FPS, "target frames per second")
	file := fs.String("config", "", "YAML file with tuning overrides")
	logFile := fs.String("log", "", "write logs to this file")
	debug := fs.Bool("debug", false, "enable debug logging")
	ballSpeed := fs.Float64("ball-speed", def.Ball.Speed, "base ball speed per tick")
	increment := fs.Float64("speed-increment", def.Ball.SpeedIncrement, "speed added on every paddle hit")
	maxFactor := fs.Float64("max-speed-factor", def.Ball.MaxSpeedFactor, "ball speed cap as a multiple of base speed (0 = none)")
	smoothing := fs.Float64("smoothing", def.Tuning.SmoothingFactor, "hand smoothing factor (0-1)")
	gain := fs.Float64("opponent-gain", def.Tuning.OpponentGain, "autopilot pursuit gain (0-1)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Defaults(*hands)
	if *file != "" {
		if err := LoadFile(*file, cfg); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "control":
			cfg.Control = Control(*control)
		case "hands":
			cfg.MaxHands = *hands
		case "camera":
			cfg.CameraIndex = *camera
		case "mirror":
			cfg.Mirror = *mirror
		case "background":
			cfg.Background = Background(*background)
		case "pointer":
			cfg.ShowPointer = *pointer
		case "mute":
			cfg.Mute = *mute
		case "fps":
			cfg.FPS = *fps
		case "log":
			cfg.LogFile = *logFile
		case "debug":
			cfg.Debug = *debug
		case "ball-speed":
			cfg.Ball.Speed = *ballSpeed
		case "speed-increment":
			cfg.Ball.SpeedIncrement = *increment
		case "max-speed-factor":
			cfg.Ball.MaxSpeedFactor = *maxFactor
		case "smoothing":
			cfg.Tuning.SmoothingFactor = *smoothing
		case "opponent-gain":
			cfg.Tuning.OpponentGain = *gain
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are errors.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Control {
	case ControlHand, ControlKeyboard:
	default:
		return fmt.Errorf("%w: control must be hand or keyboard, got %q", ErrInvalid, c.Control)
	}

	switch c.Background {
	case BackgroundCamera, BackgroundSolid:
	default:
		return fmt.Errorf("%w: background must be camera or solid, got %q", ErrInvalid, c.Background)
	}

	if c.MaxHands < 1 || c.MaxHands > 2 {
		return fmt.Errorf("%w: hands must be 1 or 2, got %d", ErrInvalid, c.MaxHands)
	}
	if c.CameraIndex < 0 {
		return fmt.Errorf("%w: camera index must be >= 0, got %d", ErrInvalid, c.CameraIndex)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps must be between 1 and 240, got %d", ErrInvalid, c.FPS)
	}

	if c.Court.Width <= 0 || c.Court.Height <= 0 {
		return fmt.Errorf("%w: court size must be positive, got %vx%v", ErrInvalid, c.Court.Width, c.Court.Height)
	}
	if c.Court.PaddleWidth <= 0 || c.Court.PaddleHeight <= 0 || c.Court.PaddleHeight >= c.Court.Height {
		return fmt.Errorf("%w: paddle %vx%v does not fit the court", ErrInvalid, c.Court.PaddleWidth, c.Court.PaddleHeight)
	}
	if c.Ball.Size <= 0 || c.Ball.Size >= c.Court.Height {
		return fmt.Errorf("%w: ball size %v does not fit the court", ErrInvalid, c.Ball.Size)
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("%w: ball speed must be positive, got %v", ErrInvalid, c.Ball.Speed)
	}
	if c.Ball.SpeedIncrement < 0 || c.Ball.MaxSpeedFactor < 0 {
		return fmt.Errorf("%w: speed increment and cap must not be negative", ErrInvalid)
	}

	if c.Tuning.SmoothingFactor < 0 || c.Tuning.SmoothingFactor > 1 {
		return fmt.Errorf("%w: smoothing must be between 0 and 1, got %v", ErrInvalid, c.Tuning.SmoothingFactor)
	}
	if c.Tuning.OpponentGain < 0 || c.Tuning.OpponentGain > 1 {
		return fmt.Errorf("%w: opponent gain must be between 0 and 1, got %v", ErrInvalid, c.Tuning.OpponentGain)
	}
	if c.Tuning.PaddleSpeed <= 0 {
		return fmt.Errorf("%w: paddle speed must be positive, got %v", ErrInvalid, c.Tuning.PaddleSpeed)
	}
	return nil
}

// Rules returns the simulation parameters.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		CourtWidth:     c.Court.Width,
		CourtHeight:    c.Court.Height,
		PaddleWidth:    c.Court.PaddleWidth,
		PaddleHeight:   c.Court.PaddleHeight,
		BallSize:       c.Ball.Size,
		BallSpeedX:     c.Ball.Speed,
		BallSpeedY:     c.Ball.Speed,
		SpeedIncrement: c.Ball.SpeedIncrement,
		MaxSpeedFactor: c.Ball.MaxSpeedFactor,
	}
}

// AdapterSettings returns the hand input adapter parameters.
func (c *Config) AdapterSettings() input.Settings {
	return input.Settings{
		CourtWidth:      c.Court.Width,
		CourtHeight:     c.Court.Height,
		SmoothingFactor: c.Tuning.SmoothingFactor,
		MaxHands:        c.MaxHands,
	}
}

// TickInterval is the frame budget of one loop iteration.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// UsesCamera reports whether the camera and detector must be opened.
func (c *Config) UsesCamera() bool {
	return c.Control == ControlHand || c.Background == BackgroundCamera
}
