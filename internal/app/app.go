package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/diegok/handpong/internal/config"
	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/input"
	"github.com/diegok/handpong/internal/ui"
	"github.com/diegok/handpong/internal/vision"
)

var (
	ErrSurfaceUnavailable  = errors.New("presentation surface unavailable")
	ErrCaptureUnavailable  = errors.New("capture device unavailable")
	ErrDetectorUnavailable = errors.New("hand detector unavailable")
	ErrFrameRead           = errors.New("failed to read camera frame")

	errQuit = errors.New("quit requested")
)

// State is the lifecycle stage of an App.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Surface is where the match is drawn and where keys come from.
type Surface interface {
	Poll() ui.Input
	CourtCells() (cols, rows int)
	Render(v ui.View)
	Message(title, message, hint string)
	Close()
}

// Sounds plays the cues for a tick's events.
type Sounds interface {
	Play(ev game.Events)
}

// Deps are the device factories and collaborators of an App. Only
// OpenSurface is required; the camera and detector factories are needed for
// hand control or a camera background.
type Deps struct {
	OpenSurface  func() (Surface, error)
	OpenCamera   func(index int, mirror bool) (vision.Camera, error)
	OpenDetector func(maxHands int) (vision.Detector, error)

	Sounds Sounds
	Logger *slog.Logger
	Clock  *Clock
	Rand   *rand.Rand
}

// App owns the devices and runs the game loop.
type App struct {
	cfg  *config.Config
	deps Deps
	log  *slog.Logger

	state    State
	surface  Surface
	camera   vision.Camera
	detector vision.Detector
	stopOnce sync.Once

	game     *game.GameState
	adapter  *input.Adapter
	keyboard *input.Keyboard
	opponent *game.Opponent
	clock    *Clock
}

// New creates an App. Nothing is opened until Run.
func New(cfg *config.Config, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := deps.Clock
	if clock == nil {
		clock = NewClock(cfg.FPS)
	}

	return &App{
		cfg:      cfg,
		deps:     deps,
		log:      logger,
		state:    StateInitializing,
		game:     game.NewGameState(cfg.Rules(), deps.Rand),
		adapter:  input.NewAdapter(cfg.AdapterSettings()),
		keyboard: input.NewKeyboard(cfg.Tuning.PaddleSpeed),
		opponent: game.NewOpponent(cfg.Tuning.OpponentGain),
		clock:    clock,
	}
}

func (a *App) State() State {
	return a.state
}

// Game exposes the simulation, mainly for inspection after Run returns.
func (a *App) Game() *game.GameState {
	return a.game
}

// Run opens the devices and plays until the player quits, ctx is cancelled
// or a camera frame cannot be read. Devices are always released before Run
// returns. Quitting and cancellation are not errors.
func (a *App) Run(ctx context.Context) error {
	defer a.Stop()

	if err := a.open(); err != nil {
		a.log.Error("startup failed", slog.Any("error", err))
		return err
	}

	a.state = StateRunning
	a.log.Info("match started",
		slog.String("control", string(a.cfg.Control)),
		slog.Int("hands", a.cfg.MaxHands),
		slog.Bool("camera", a.camera != nil),
	)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("match cancelled", slog.Any("reason", ctx.Err()))
			return nil
		default:
		}

		if err := a.tick(); err != nil {
			if errors.Is(err, errQuit) {
				a.log.Info("player quit",
					slog.Int("left", a.game.Score.Left),
					slog.Int("right", a.game.Score.Right),
				)
				return nil
			}
			a.log.Error("match aborted", slog.Any("error", err))
			return err
		}
		a.clock.Tick()
	}
}

// open acquires the surface, then the camera, then the detector.
func (a *App) open() error {
	if a.deps.OpenSurface == nil {
		return fmt.Errorf("%w: no surface configured", ErrSurfaceUnavailable)
	}
	surface, err := a.deps.OpenSurface()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	a.surface = surface

	if !a.cfg.UsesCamera() {
		return nil
	}

	a.surface.Message("HANDPONG", fmt.Sprintf("Opening camera %d...", a.cfg.CameraIndex), "")
	if a.deps.OpenCamera == nil {
		return fmt.Errorf("%w: no camera configured", ErrCaptureUnavailable)
	}
	camera, err := a.deps.OpenCamera(a.cfg.CameraIndex, a.cfg.Mirror)
	if err != nil {
		return fmt.Errorf("%w: camera %d: %w", ErrCaptureUnavailable, a.cfg.CameraIndex, err)
	}
	a.camera = camera

	if a.cfg.Control != config.ControlHand {
		return nil
	}

	if a.deps.OpenDetector == nil {
		return fmt.Errorf("%w: no detector configured", ErrDetectorUnavailable)
	}
	detector, err := a.deps.OpenDetector(a.cfg.MaxHands)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDetectorUnavailable, err)
	}
	a.detector = detector
	return nil
}

// Stop releases the camera, the detector and the surface, in that order.
// It is safe to call more than once and after a partial startup.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		if a.camera != nil {
			if err := a.camera.Close(); err != nil {
				a.log.Warn("failed to close camera", slog.Any("error", err))
			}
		}
		if a.detector != nil {
			if err := a.detector.Close(); err != nil {
				a.log.Warn("failed to close detector", slog.Any("error", err))
			}
		}
		if a.surface != nil {
			a.surface.Close()
		}
		a.state = StateStopped
	})
}

// tick runs one frame: input, capture, detection, control, simulation,
// sound and drawing.
func (a *App) tick() error {
	in := a.surface.Poll()
	if in.Quit {
		return errQuit
	}

	var frame vision.Frame
	if a.camera != nil {
		f, err := a.camera.Read()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFrameRead, err)
		}
		frame = f
		defer func() {
			if err := frame.Close(); err != nil {
				a.log.Debug("failed to release frame", slog.Any("error", err))
			}
		}()
	}

	var pointers []game.Point
	overridden := false

	switch a.cfg.Control {
	case config.ControlHand:
		samples := a.detect(frame)
		w, h := frame.Size()
		res := a.adapter.Apply(samples, w, h, a.game)
		if res.Skipped > 0 {
			a.log.Debug("skipped malformed samples", slog.Int("count", res.Skipped))
		}
		overridden = res.OpponentOverridden
		pointers = res.Pointers
	case config.ControlKeyboard:
		if in.Move != ui.DirNone {
			a.keyboard.SetDirection(in.Move)
		}
		a.keyboard.Apply(a.game.Left)
	}

	if !overridden {
		a.opponent.Track(a.game.Right, a.game.Ball)
	}

	ev := a.game.Update()
	if a.deps.Sounds != nil {
		a.deps.Sounds.Play(ev)
	}
	if ev.Scored {
		a.log.Info("point scored",
			slog.String("scorer", ev.Scorer.String()),
			slog.Int("left", a.game.Score.Left),
			slog.Int("right", a.game.Score.Right),
		)
	}

	view := ui.View{State: a.game, Status: a.status()}
	if a.cfg.ShowPointer {
		view.Pointers = pointers
	}
	if frame != nil && a.cfg.Background == config.BackgroundCamera {
		cols, rows := a.surface.CourtCells()
		img, err := frame.Thumbnail(cols, rows)
		if err != nil {
			a.log.Warn("failed to scale camera frame", slog.Any("error", err))
		} else {
			view.Background = img
		}
	}
	a.surface.Render(view)
	return nil
}

// detect runs the detector. Failures only cost this tick's samples.
func (a *App) detect(frame vision.Frame) []vision.HandSample {
	samples, err := a.detector.Detect(frame)
	if err != nil {
		a.log.Warn("hand detection failed", slog.Any("error", err))
		return nil
	}
	return samples
}

func (a *App) status() string {
	mode := "keyboard: w/s or arrows"
	if a.cfg.Control == config.ControlHand {
		mode = fmt.Sprintf("hands: %d", a.cfg.MaxHands)
	}
	return fmt.Sprintf(" HANDPONG | %s | %.0f fps | q to quit", mode, a.clock.FPS())
}
