package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"

	"github.com/milk9111/wheelchair/common"
	"github.com/milk9111/wheelchair/config"
	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/ecs/entity"
	"github.com/milk9111/wheelchair/ecs/system"
	"github.com/milk9111/wheelchair/input"
	"github.com/milk9111/wheelchair/prefabs"
)

type Game struct {
	settings config.Settings
	log      zerolog.Logger
	frames   int

	world     *ecs.World
	scheduler *ecs.Scheduler
	arena     []ecs.Entity

	inputSystem *system.InputSystem
	chairs      *system.WheelchairSystem
	physics     *system.PhysicsSystem
	render      *system.RenderSystem

	script       *input.ScriptSource
	scriptFailed bool
	watcher      *prefabs.Watcher
	clipboardOK  bool

	hud     *HUD
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(settings config.Settings, log zerolog.Logger) (*Game, error) {
	dt := 1 / float64(settings.TPS)
	g := &Game{
		settings: settings,
		log:      log,
		world:    ecs.NewWorld(),
		physics:  system.NewPhysicsSystem(dt),
		render:   system.NewRenderSystem(),
		hud:      NewHUD(),
	}

	source, err := g.newSource()
	if err != nil {
		return nil, err
	}
	dispatcher := input.NewDispatcher()
	g.inputSystem = system.NewInputSystem(source, dispatcher)
	g.chairs = system.NewWheelchairSystem(dispatcher)

	// chairs bind before input is dispatched; physics steps after pushes are
	// queued; the camera reads the stepped pose
	g.scheduler = ecs.NewScheduler(
		g.chairs,
		g.inputSystem,
		g.physics,
		system.NewCameraSystem(dt),
	)

	if g.arena, err = entity.NewArena(g.world, settings.Arena); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewWheelchair(g.world); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCamera(g.world); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if settings.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			g.log.Warn().Err(err).Msg("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		g.log.Warn().Err(err).Msg("clipboard unavailable")
	} else {
		g.clipboardOK = true
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) newSource() (input.Source, error) {
	if g.settings.Script != "" {
		src, err := loadScriptSource(g.settings.Script)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		g.script = src
		return src, nil
	}

	bindings, err := g.settings.InputBindings()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return input.NewEbitenSource(bindings), nil
}

func loadScriptSource(name string) (*input.ScriptSource, error) {
	data, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return input.NewScriptSource(name, data)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetChair()
	}
	g.pollWatcher()

	g.scheduler.Update(g.world)
	g.frames++

	if g.script != nil && !g.scriptFailed {
		if err := g.script.Err(); err != nil {
			g.scriptFailed = true
			g.log.Warn().Err(err).Int("frame", g.script.Frame()).Msg("input script stopped")
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.settings.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawChairDebug(g.world, screen)
	}
	g.hud.Draw(screen, g.world, g.sourceName())
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	g.chairs.Shutdown()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn().Err(err).Msg("close prefab watcher")
		}
	}
}

// setPaused stops the simulation. Held wheels are released on pause since
// their release would otherwise be missed while the menu has focus.
func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	g.paused = paused
	if paused {
		g.inputSystem.Release()
	}
	g.log.Debug().Bool("paused", paused).Msg("pause toggled")
}

func (g *Game) resetChair() {
	n := system.ResetChairs(g.world)
	g.log.Info().Int("chairs", n).Msg("chair reset")
}

func (g *Game) sourceName() string {
	if g.script != nil {
		return "script " + g.settings.Script
	}
	return "mouse"
}

func (g *Game) activeTuningYAML() ([]byte, error) {
	_, chair, ok := ecs.First(g.world, component.WheelchairComponent.Kind())
	if !ok {
		return nil, errors.New("game: no wheelchair")
	}
	return prefabs.MarshalTuning(chair.Tuning)
}

func (g *Game) copyTuning() {
	if !g.clipboardOK {
		g.log.Warn().Msg("copy tuning: clipboard unavailable")
		return
	}
	data, err := g.activeTuningYAML()
	if err != nil {
		g.log.Warn().Err(err).Msg("copy tuning")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.log.Info().Msg("tuning copied to clipboard")
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.PollErrors() {
		g.log.Warn().Err(err).Msg("prefab watcher")
	}
	for _, change := range g.watcher.Poll() {
		var err error
		switch change.Kind {
		case prefabs.ChangeSpec:
			err = g.reloadSpec(change.Name)
		case prefabs.ChangeScript:
			err = g.reloadScript(change.Name)
		}
		if err != nil {
			g.log.Warn().Err(err).Str("file", change.Path).Msg("reload failed, keeping previous")
		}
	}
}

func (g *Game) reloadSpec(name string) error {
	switch name {
	case prefabs.WheelchairFile:
		spec, err := prefabs.LoadWheelchairSpec()
		if err != nil {
			return err
		}
		n := system.SetTuning(g.world, spec.Tuning())
		evt := g.log.Info().Int("chairs", n)
		if mt, ok := prefabs.ModTime(name); ok {
			evt = evt.Time("modified", mt)
		}
		evt.Msg("tuning reloaded")
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			return err
		}
		ecs.ForEach(g.world, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
			cam.TargetName = spec.Target
			if spec.Zoom > 0 {
				cam.Zoom = spec.Zoom
			}
			cam.Smoothness = max(spec.Smoothness, 0)
		})
		g.log.Info().Msg("camera reloaded")
	case filepath.Base(g.settings.Arena):
		spec, err := prefabs.LoadArenaSpec(g.settings.Arena)
		if err != nil {
			return err
		}
		entity.DestroyAll(g.world, g.arena)
		g.arena, err = entity.NewArenaFromSpec(g.world, spec)
		if err != nil {
			return err
		}
		g.log.Info().Str("arena", spec.Name).Msg("arena reloaded")
	}
	return nil
}

func (g *Game) reloadScript(name string) error {
	if g.script == nil || scriptBase(name) != scriptBase(g.settings.Script) {
		return nil
	}
	src, err := loadScriptSource(g.settings.Script)
	if err != nil {
		return err
	}
	g.script = src
	g.scriptFailed = false
	g.inputSystem.SetSource(src)
	g.log.Info().Str("script", g.settings.Script).Msg("input script reloaded")
	return nil
}

func scriptBase(name string) string {
	return strings.TrimSuffix(filepath.Base(name), ".tengo")
}
