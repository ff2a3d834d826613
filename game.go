package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/ecs/render"
	"github.com/milk9111/zompocalypse/ecs/system"
	"github.com/milk9111/zompocalypse/levels"
	"github.com/milk9111/zompocalypse/prefabs"
)

// Game drives one Level from ebiten: it turns keyboard, mouse and gamepad
// state into the player's Intent, ticks the level once per frame and draws
// the result.
type Game struct {
	tuning  prefabs.Tuning
	mapName string
	seed    uint64
	debug   bool
	log     logrus.FieldLogger

	level      *system.Level
	grid       *component.Grid
	tiles      *levels.TileMap
	background *ebiten.Image
	images     *tileImages
	deaths     *render.DeathClock
	sounds     *soundBoard

	watcher *prefabs.Watcher
}

func NewGame(tuning prefabs.Tuning, mapName string, seed uint64, debug bool, log logrus.FieldLogger) (*Game, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	g := &Game{
		tuning:  tuning,
		mapName: mapName,
		seed:    seed,
		debug:   debug,
		log:     log,
		images:  newTileImages(int(tuning.Game.TileSize)),
		deaths:  render.NewDeathClock(render.DefaultLibrary()),
		sounds:  newSoundBoard(ctx),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart builds a fresh level from the current tuning.
func (g *Game) restart() error {
	name := g.mapName
	if name == "" {
		name = g.tuning.Game.Map
	}

	spec := g.tuning.Game
	if g.images.size != int(spec.TileSize) {
		g.images.Clear()
		g.images = newTileImages(int(spec.TileSize))
	}
	cols := int(spec.WorldWidth / spec.TileSize)
	rows := int(spec.WorldHeight / spec.TileSize)
	g.grid, g.tiles = levels.LoadGrid(name, cols, rows, spec.TileSize, g.log)

	level, err := system.NewLevel(g.grid, g.tuning,
		system.WithSeed(g.seed),
		system.WithLogger(g.log),
		system.WithPresentation(g.deaths),
	)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.level = level

	if g.background != nil {
		g.background.Deallocate()
		g.background = nil
	}
	return nil
}

func (g *Game) Update() error {
	g.pollReload()

	if g.level.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.seed++
			return g.restart()
		}
		return nil
	}

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.level.StartNextWave()
	}

	g.level.SetIntent(readIntent())
	g.level.Update(1 / float64(ebiten.TPS()))
	g.sounds.Play(g.level.Events())
	return nil
}

// pollReload stages tuning from changed prefab files without blocking the
// frame.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}

	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			g.log.WithError(err).WithField("file", name).Warn("prefab reload failed")
			return
		}
		if err := g.level.ApplyTuning(tuning); err != nil {
			g.log.WithError(err).WithField("file", name).Warn("prefab reload rejected")
			return
		}
		g.tuning = tuning
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.WithError(err).Warn("prefab watcher")
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	spec := g.level.Tuning().Game
	return spec.WorldWidth, spec.WorldHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the watcher, cached images and sound players.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.background != nil {
		g.background.Deallocate()
		g.background = nil
	}
	g.images.Clear()
	g.sounds.Close()
}
