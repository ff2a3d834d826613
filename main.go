package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/zompocalypse/logger"
	"github.com/milk9111/zompocalypse/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw enemy paths and hitboxes")
	levelName := flag.String("level", "", "map name in levels/ (defaults to the map in game.yaml)")
	seed := flag.Uint64("seed", 0, "spawn seed (0 picks one from the clock)")
	watch := flag.Bool("watch", true, "reload prefabs/*.yaml when they change")
	flag.Parse()

	logger.Init()
	log := logger.Log

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.WithError(err).Fatal("load tuning")
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game, err := NewGame(tuning, *levelName, *seed, *debug, log)
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if *watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			game.watcher = watcher
		}
	}

	ebiten.SetWindowSize(int(tuning.Game.WorldWidth), int(tuning.Game.WorldHeight))
	ebiten.SetWindowTitle("zompocalypse")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("run game")
	}
}
