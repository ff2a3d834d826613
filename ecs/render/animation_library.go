package render

import "github.com/milk9111/zompocalypse/ecs/component"

// AnimationClip describes a strip animation by timing only; the simulation
// never needs its frames.
type AnimationClip struct {
	Frames        int
	FrameDuration float64
	Loop          bool
}

// Duration is the time one play-through takes.
func (c AnimationClip) Duration() float64 {
	return float64(max(1, c.Frames)) * c.FrameDuration
}

// AnimationLibrary stores animation clips by key.
type AnimationLibrary struct {
	clips map[string]AnimationClip
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string]AnimationClip)}
}

// Register adds an animation clip to the library.
func (l *AnimationLibrary) Register(key string, clip AnimationClip) {
	if l == nil || key == "" {
		return
	}
	l.clips[key] = clip
}

// Get returns an animation clip by key.
func (l *AnimationLibrary) Get(key string) (AnimationClip, bool) {
	if l == nil || key == "" {
		return AnimationClip{}, false
	}
	clip, ok := l.clips[key]
	return clip, ok
}

// ClipKey names the clip an enemy should show, e.g. "boss/attacking".
func ClipKey(kind component.EnemyKind, state component.EnemyState) string {
	return kind.String() + "/" + state.String()
}

// DefaultLibrary mirrors the strip timings of the zombie and boss skins.
func DefaultLibrary() *AnimationLibrary {
	lib := NewAnimationLibrary()
	for _, kind := range []component.EnemyKind{component.EnemyZombie, component.EnemyBoss} {
		lib.Register(ClipKey(kind, component.EnemyIdle), AnimationClip{Frames: 6, FrameDuration: 0.2, Loop: true})
		lib.Register(ClipKey(kind, component.EnemyMoving), AnimationClip{Frames: 8, FrameDuration: 0.15, Loop: true})
		lib.Register(ClipKey(kind, component.EnemyAttacking), AnimationClip{Frames: 5, FrameDuration: 0.15, Loop: true})
		lib.Register(ClipKey(kind, component.EnemyDead), AnimationClip{Frames: 5, FrameDuration: 0.1})
	}
	return lib
}
