package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/levels"
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	if g.background == nil {
		g.background = g.renderBackground()
	}
	screen.DrawImage(g.background, nil)

	w := g.level.World()
	roster := g.level.Roster()

	for _, e := range roster.Enemies {
		body, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok {
			continue
		}
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		clr := enemyColor(enemy)
		if enemy != nil && enemy.Dead() {
			death, _ := ecs.Get(w, e, component.DeathSequenceComponent.Kind())
			clr = fade(clr, common.Lerp(1, 0.2, g.deaths.Progress(enemy.Kind, death)))
		}
		fillActor(screen, body, clr)

		if g.debug {
			if path, ok := ecs.Get(w, e, component.PathComponent.Kind()); ok {
				g.drawPath(screen, body, path)
			}
			strokeActor(screen, body, colornames.Red)
		}
	}

	for _, e := range roster.Projectiles {
		p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
		if !ok || !p.Active {
			continue
		}
		vector.FillRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), float32(p.Size), colornames.Gold, false)
	}

	if body, ok := ecs.Get(w, g.level.Player(), component.ActorComponent.Kind()); ok {
		clr := colornames.Royalblue
		if p, ok := ecs.Get(w, g.level.Player(), component.PlayerComponent.Kind()); ok && p.Invulnerable() {
			clr = colornames.Lightskyblue
		}
		fillActor(screen, body, clr)
		if g.debug {
			strokeActor(screen, body, colornames.White)
		}
	}
}

func (g *Game) renderBackground() *ebiten.Image {
	size := g.grid.TileSize
	bg := ebiten.NewImage(int(float64(g.grid.Width)*size), int(float64(g.grid.Height)*size))
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			name := g.tiles.Tile(y, x)
			if name == "" {
				name = levels.DefaultTile
			}
			if g.grid.Blocked(component.Cell{X: x, Y: y}) && !levels.BlockingTile(name) {
				name = "water"
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x)*size, float64(y)*size)
			bg.DrawImage(g.images.Get(name), op)
		}
	}
	return bg
}

func (g *Game) drawPath(screen *ebiten.Image, body *component.Actor, path *component.Path) {
	if path.Empty() {
		return
	}
	from := body.Center()
	for i := path.Cursor; i < len(path.Cells); i++ {
		to := g.grid.CellCenter(path.Cells[i])
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, colornames.Yellow, false)
		from = to
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.level.Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "Wave %d  spawned %d/%d  enemies %d\n", s.Wave, s.Spawned, s.Required, s.Enemies)
	fmt.Fprintf(&b, "HP %.0f/%.0f  lives %d  stamina %.0f/%.0f\n", s.Health, s.MaxHealth, s.Lives, s.Stamina, s.MaxStamina)
	if s.Ranged {
		fmt.Fprintf(&b, "%s  ammo %d\n", s.Weapon, s.Ammo)
	} else {
		fmt.Fprintf(&b, "%s\n", s.Weapon)
	}
	if g.debug {
		fmt.Fprintf(&b, "TPS %.0f  FPS %.0f  tick %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), g.level.Ticks())
	}
	ebitenutil.DebugPrint(screen, b.String())

	var banner string
	switch s.Phase {
	case component.PhaseWaveCleared:
		banner = fmt.Sprintf("Wave %d cleared", s.Wave)
	case component.PhaseGameOver:
		banner = "GAME OVER - press R to restart"
	case component.PhaseWon:
		banner = "YOU SURVIVED - press R to play again"
	}
	if banner != "" {
		spec := g.level.Tuning().Game
		ebitenutil.DebugPrintAt(screen, banner, int(spec.WorldWidth)/2-len(banner)*3, int(spec.WorldHeight)/2)
	}
}

func enemyColor(enemy *component.Enemy) color.Color {
	switch {
	case enemy == nil:
		return colornames.Gray
	case enemy.Dead():
		return colornames.Dimgray
	case enemy.Kind == component.EnemyBoss:
		return colornames.Darkred
	case enemy.State == component.EnemyAttacking:
		return colornames.Olivedrab
	default:
		return colornames.Darkolivegreen
	}
}

// fade scales the alpha of clr by a.
func fade(clr color.Color, a float64) color.Color {
	r, g, b, _ := clr.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(255 * common.Clamp(a, 0, 1))}
}

func fillActor(screen *ebiten.Image, body *component.Actor, clr color.Color) {
	vector.FillRect(screen, float32(body.Pos.X), float32(body.Pos.Y), float32(body.Width), float32(body.Height), clr, false)
}

func strokeActor(screen *ebiten.Image, body *component.Actor, clr color.Color) {
	vector.StrokeRect(screen, float32(body.Pos.X), float32(body.Pos.Y), float32(body.Width), float32(body.Height), 1, clr, false)
}
