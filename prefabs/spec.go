package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds world-wide constants.
type GameSpec struct {
	WorldWidth   float64 `yaml:"world_width"`
	WorldHeight  float64 `yaml:"world_height"`
	TileSize     float64 `yaml:"tile_size"`
	MaxTickDelta float64 `yaml:"max_tick_delta"`
	FinalWave    int     `yaml:"final_wave"`
	Map          string  `yaml:"map"`
}

type WeaponSpec struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Damage   float64 `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`

	Reach float64 `yaml:"reach"`

	AmmoType        string  `yaml:"ammo_type"`
	AmmoPerShot     int     `yaml:"ammo_per_shot"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	MaxRange        float64 `yaml:"max_range"`
}

const (
	WeaponKindMelee  = "melee"
	WeaponKindRanged = "ranged"
)

type PlayerSpec struct {
	Width           float64        `yaml:"width"`
	Height          float64        `yaml:"height"`
	Health          float64        `yaml:"health"`
	Lives           int            `yaml:"lives"`
	WalkSpeed       float64        `yaml:"walk_speed"`
	RunSpeed        float64        `yaml:"run_speed"`
	Stamina         float64        `yaml:"stamina"`
	StaminaDrain    float64        `yaml:"stamina_drain"`
	StaminaRegen    float64        `yaml:"stamina_regen"`
	RegenDelay      float64        `yaml:"regen_delay"`
	Invulnerability float64        `yaml:"invulnerability"`
	Ammo            map[string]int `yaml:"ammo"`
	StartWeapon     string         `yaml:"start_weapon"`
	Weapons         []WeaponSpec   `yaml:"weapons"`
}

// Scaled is a stat that grows linearly with the wave number.
type Scaled struct {
	Base    float64 `yaml:"base"`
	PerWave float64 `yaml:"per_wave"`
}

// At returns the stat for a 1-based wave.
func (s Scaled) At(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return s.Base + float64(wave-1)*s.PerWave
}

type ZombieSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         Scaled  `yaml:"health"`
	Speed          Scaled  `yaml:"speed"`
	Damage         Scaled  `yaml:"damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	ArrivalRadius  float64 `yaml:"arrival_radius"`
	PathRefresh    float64 `yaml:"path_refresh"`
}

type BossSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         float64 `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	Damage         float64 `yaml:"damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackRange    float64 `yaml:"attack_range"`
}

type WaveSpec struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	BaseQuota     int     `yaml:"base_quota"`
	QuotaPerWave  int     `yaml:"quota_per_wave"`
	BossWave      int     `yaml:"boss_wave"`
	SafeDistance  float64 `yaml:"safe_distance"`
	SpawnAttempts int     `yaml:"spawn_attempts"`
	RefillAmmo    int     `yaml:"refill_ammo"`
}

// Quota is the number of enemies a wave must spawn. The boss wave needs one.
func (s WaveSpec) Quota(wave int) int {
	if wave == s.BossWave {
		return 1
	}
	if wave < 1 {
		wave = 1
	}
	return s.BaseQuota + (wave-1)*s.QuotaPerWave
}

// Tuning bundles every spec a level needs.
type Tuning struct {
	Game   GameSpec
	Player PlayerSpec
	Zombie ZombieSpec
	Boss   BossSpec
	Waves  WaveSpec
}

const (
	GameSpecFile   = "game.yaml"
	PlayerSpecFile = "player.yaml"
	ZombieSpecFile = "zombie.yaml"
	BossSpecFile   = "boss.yaml"
	WavesSpecFile  = "waves.yaml"
)

// LoadTuning reads and validates all level specs.
func LoadTuning() (Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if t.Game, err = LoadSpec[GameSpec](GameSpecFile); err != nil {
		return Tuning{}, err
	}
	if t.Player, err = LoadSpec[PlayerSpec](PlayerSpecFile); err != nil {
		return Tuning{}, err
	}
	if t.Zombie, err = LoadSpec[ZombieSpec](ZombieSpecFile); err != nil {
		return Tuning{}, err
	}
	if t.Boss, err = LoadSpec[BossSpec](BossSpecFile); err != nil {
		return Tuning{}, err
	}
	if t.Waves, err = LoadSpec[WaveSpec](WavesSpecFile); err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	switch {
	case t.Game.TileSize <= 0:
		return fmt.Errorf("prefabs: %s: tile_size must be positive: %w", GameSpecFile, ErrInvalidSpec)
	case t.Game.WorldWidth < t.Game.TileSize || t.Game.WorldHeight < t.Game.TileSize:
		return fmt.Errorf("prefabs: %s: world smaller than one tile: %w", GameSpecFile, ErrInvalidSpec)
	case t.Game.MaxTickDelta <= 0:
		return fmt.Errorf("prefabs: %s: max_tick_delta must be positive: %w", GameSpecFile, ErrInvalidSpec)
	case t.Game.FinalWave < 1:
		return fmt.Errorf("prefabs: %s: final_wave must be at least 1: %w", GameSpecFile, ErrInvalidSpec)
	case t.Player.Health <= 0 || t.Player.Lives < 1:
		return fmt.Errorf("prefabs: %s: health and lives must be positive: %w", PlayerSpecFile, ErrInvalidSpec)
	case len(t.Player.Weapons) == 0:
		return fmt.Errorf("prefabs: %s: no weapons: %w", PlayerSpecFile, ErrInvalidSpec)
	case t.Zombie.Health.Base <= 0 || t.Boss.Health <= 0:
		return fmt.Errorf("prefabs: enemy health must be positive: %w", ErrInvalidSpec)
	case t.Waves.SpawnAttempts < 1:
		return fmt.Errorf("prefabs: %s: spawn_attempts must be at least 1: %w", WavesSpecFile, ErrInvalidSpec)
	}
	for _, w := range t.Player.Weapons {
		switch w.Kind {
		case WeaponKindMelee:
		case WeaponKindRanged:
			if w.AmmoType == "" {
				return fmt.Errorf("prefabs: %s: weapon %q has no ammo_type: %w", PlayerSpecFile, w.Name, ErrInvalidSpec)
			}
		default:
			return fmt.Errorf("prefabs: %s: weapon %q has unknown kind %q: %w", PlayerSpecFile, w.Name, w.Kind, ErrInvalidSpec)
		}
	}
	return nil
}

