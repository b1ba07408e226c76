package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"racer/internal/game"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Run starts the desktop frontend and blocks until the window closes.
func Run() error {
	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	settings := game.LoadSettings(configPath("settings.json"))
	if settings.SoundEnabled {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		}
	}

	seed := uint64(42)
	if v := os.Getenv("RACER_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			seed = n
		}
	}

	bus := game.NewEventBus()
	if settings.SoundEnabled {
		bus.Subscribe(game.EventCollision, func(game.Event) { PlaySound(SoundCrash) })
		bus.Subscribe(game.EventGameOver, func(game.Event) { PlaySound(SoundGameOver) })
		bus.Subscribe(game.EventRespawn, func(game.Event) { PlaySound(SoundWhoosh) })
	}

	track := game.GenerateTrack(seed)
	if data, err := os.ReadFile(configPath("track.json")); err == nil {
		track = game.LoadTrack(data)
	}
	engine := game.NewEngine(game.Config{
		Seed:     seed,
		Settings: settings,
		Track:    track,
		Store:    &game.FileStore{Path: configPath("highscore")},
		Bus:      bus,
	})

	renderer, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Destroy()

	input := NewInput(window)

	for !window.ShouldClose() {
		glfw.PollEvents()

		if input.JustPressed(glfw.KeyEscape) {
			window.SetShouldClose(true)
		}
		if input.JustPressed(glfw.KeySpace) {
			switch engine.State() {
			case game.StateLoading, game.StateGameOver:
				if settings.SoundEnabled {
					PlaySound(SoundMenuSelect)
				}
				engine.Start()
			}
		}
		if input.JustPressed(glfw.KeyP) {
			switch engine.State() {
			case game.StateRunning:
				engine.Pause()
			case game.StatePaused:
				engine.Resume()
			}
		}
		input.Poll(engine)

		engine.Advance(glfw.GetTime())

		snap := engine.Snapshot()
		fbW, fbH := window.GetFramebufferSize()
		renderer.DrawFrame(snap, engine.Track(), fbW, fbH)

		window.SetTitle(title(snap))
		window.SwapBuffers()
	}
	return nil
}

func title(snap *game.Snapshot) string {
	switch snap.State {
	case game.StateLoading:
		return "Lane Racer — press SPACE to start"
	case game.StatePaused:
		return fmt.Sprintf("Lane Racer — PAUSED  score %d", snap.Score)
	case game.StateGameOver:
		return fmt.Sprintf("Lane Racer — GAME OVER  score %d  best %d  (SPACE to restart)", snap.Score, snap.HighScore)
	default:
		return fmt.Sprintf("Lane Racer — score %d  best %d  rank %d  %.0f px/s",
			snap.Score, snap.HighScore, snap.Rank, snap.Speed)
	}
}

// configPath places per-user files next to the user config dir, falling
// back to the working directory.
func configPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	dir = filepath.Join(dir, "lane-racer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return name
	}
	return filepath.Join(dir, name)
}
