package render

import (
	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

// DeathClock plays the death clip of every dead enemy and flags its
// DeathSequence finished when the clip ends. Enemies with no registered clip
// finish on the first tick.
type DeathClock struct {
	lib *AnimationLibrary
}

func NewDeathClock(lib *AnimationLibrary) *DeathClock {
	return &DeathClock{lib: lib}
}

func (c *DeathClock) Update(w *ecs.World, dt float64) {
	if c == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.DeathSequenceComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, death *component.DeathSequence) {
		if !death.Started || death.Finished {
			return
		}
		death.Elapsed += dt

		clip, ok := c.lib.Get(ClipKey(enemy.Kind, component.EnemyDead))
		if !ok || death.Elapsed >= clip.Duration() {
			death.Finished = true
		}
	})
}

// Progress reports how far through its death clip an enemy is, from 0 to 1.
func (c *DeathClock) Progress(kind component.EnemyKind, death *component.DeathSequence) float64 {
	switch {
	case c == nil || death == nil || !death.Started:
		return 0
	case death.Finished:
		return 1
	}
	clip, ok := c.lib.Get(ClipKey(kind, component.EnemyDead))
	if !ok || clip.Duration() <= 0 {
		return 1
	}
	return common.Clamp(death.Elapsed/clip.Duration(), 0, 1)
}
