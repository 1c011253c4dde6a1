package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegok/handpong/internal/app"
	"github.com/diegok/handpong/internal/audio"
	"github.com/diegok/handpong/internal/config"
	"github.com/diegok/handpong/internal/logging"
	"github.com/diegok/handpong/internal/ui"
	"github.com/diegok/handpong/internal/vision"
	"github.com/diegok/handpong/internal/vision/cvcam"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Game works without sound
	var cues *audio.Cues
	if !cfg.Mute {
		cues, err = audio.Open()
		if err != nil {
			logger.Warn("audio unavailable, playing muted", slog.Any("error", err))
		}
	}
	defer cues.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, app.Deps{
		OpenSurface: func() (app.Surface, error) {
			return ui.OpenTerminal()
		},
		OpenCamera: func(index int, mirror bool) (vision.Camera, error) {
			return cvcam.OpenCamera(index, mirror)
		},
		OpenDetector: func(maxHands int) (vision.Detector, error) {
			dc := cvcam.DefaultDetectorConfig(maxHands)
			dc.MinArea = cfg.Tuning.MinHandArea
			return cvcam.NewSkinDetector(dc)
		},
		Sounds: cues,
		Logger: logger,
	})
	return application.Run(ctx)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  handpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --control <mode>        hand or keyboard (default: hand)")
	fmt.Fprintln(os.Stderr, "  --hands <n>             1 = classic, 2 = one hand per paddle (default: 1)")
	fmt.Fprintln(os.Stderr, "  --camera <index>        Video device (default: 0)")
	fmt.Fprintln(os.Stderr, "  --mirror                Flip the camera picture")
	fmt.Fprintln(os.Stderr, "  --background <mode>     camera or solid")
	fmt.Fprintln(os.Stderr, "  --pointer               Draw the tracked fingertip (default: true)")
	fmt.Fprintln(os.Stderr, "  --mute                  Disable sound")
	fmt.Fprintln(os.Stderr, "  --fps <n>               Target frame rate (default: 60)")
	fmt.Fprintln(os.Stderr, "  --ball-speed <v>        Base ball speed per tick")
	fmt.Fprintln(os.Stderr, "  --speed-increment <v>   Speed added on every paddle hit")
	fmt.Fprintln(os.Stderr, "  --max-speed-factor <v>  Speed cap as a multiple of base speed, 0 = none")
	fmt.Fprintln(os.Stderr, "  --smoothing <v>         Hand smoothing factor, 0-1")
	fmt.Fprintln(os.Stderr, "  --opponent-gain <v>     Autopilot pursuit gain, 0-1")
	fmt.Fprintln(os.Stderr, "  --config <file>         YAML tuning file")
	fmt.Fprintln(os.Stderr, "  --log <file>            Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --debug                 Verbose logging")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  handpong")
	fmt.Fprintln(os.Stderr, "  handpong --hands 2 --log handpong.log")
	fmt.Fprintln(os.Stderr, "  handpong --control keyboard")
}
