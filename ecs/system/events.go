package system

import "github.com/milk9111/zompocalypse/ecs"

const (
	EventEnemySpawned    ecs.EventType = "enemy_spawned"
	EventBossSpawned     ecs.EventType = "boss_spawned"
	EventEnemyKilled     ecs.EventType = "enemy_killed"
	EventEnemyRemoved    ecs.EventType = "enemy_removed"
	EventProjectileFired ecs.EventType = "projectile_fired"
	EventProjectileHit   ecs.EventType = "projectile_hit"
	EventPlayerHit       ecs.EventType = "player_hit"
	EventPlayerDied      ecs.EventType = "player_died"
	EventWaveComplete    ecs.EventType = "wave_complete"
	EventWaveStarted     ecs.EventType = "wave_started"
	EventGameOver        ecs.EventType = "game_over"
	EventWon             ecs.EventType = "won"
)

// DamageData accompanies hit and kill events.
type DamageData struct {
	Source    ecs.Entity
	Amount    float64
	Remaining float64
}

// WaveData accompanies wave and spawn events.
type WaveData struct {
	Wave     int
	Spawned  int
	Required int
}

func emit(w *ecs.World, typ ecs.EventType, e ecs.Entity, data any) {
	w.Events().Push(ecs.Event{Type: typ, Entity: e, Data: data})
}
