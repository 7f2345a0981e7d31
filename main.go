package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/wheelchair/config"
	"github.com/milk9111/wheelchair/logging"
)

func main() {
	configPath := flag.String("config", "", "settings file; WHEELCHAIR_* environment variables override it")
	debug := flag.Bool("debug", false, "draw physics shapes and chair state")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	script := flag.String("script", "", "drive the chair from prefabs/scripts/<name>.tengo instead of the mouse")
	arenaName := flag.String("arena", "", "arena prefab file in prefabs/, e.g. arena.yaml")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		l := logging.L()
		l.Fatal().Err(err).Msg("load settings")
	}
	if *debug {
		settings.Debug = true
	}
	if *watch {
		settings.Watch = true
	}
	if *script != "" {
		settings.Script = *script
	}
	if *arenaName != "" {
		settings.Arena = *arenaName
	}

	log := logging.Init(logging.Config{Level: settings.Log.Level, Format: settings.Log.Format})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	ebiten.SetTPS(settings.TPS)

	game, err := NewGame(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}
	defer game.Close()

	log.Info().
		Bool("debug", settings.Debug).
		Bool("watch", settings.Watch).
		Str("script", settings.Script).
		Str("arena", settings.Arena).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("run game")
	}
}
