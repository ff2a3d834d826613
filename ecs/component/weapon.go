package component

// WeaponMode is the closed set of weapon behaviours: Melee or Ranged.
type WeaponMode interface {
	weaponMode()
}

// Melee damages every living enemy closer than Reach.
type Melee struct {
	Reach float64
}

// Ranged fires a projectile toward the aim point.
type Ranged struct {
	AmmoType        string
	AmmoPerShot     int
	ProjectileSpeed float64
	ProjectileSize  float64
	MaxRange        float64
}

func (Melee) weaponMode()  {}
func (Ranged) weaponMode() {}

// Weapon is immutable once built and shared by reference.
type Weapon struct {
	Name     string
	Damage   float64
	Cooldown float64
	Mode     WeaponMode
}

func (w *Weapon) IsMelee() bool {
	if w == nil {
		return false
	}
	_, ok := w.Mode.(Melee)
	return ok
}

func (w *Weapon) IsRanged() bool {
	if w == nil {
		return false
	}
	_, ok := w.Mode.(Ranged)
	return ok
}

// AmmoType is empty for melee weapons.
func (w *Weapon) AmmoType() string {
	if w == nil {
		return ""
	}
	if r, ok := w.Mode.(Ranged); ok {
		return r.AmmoType
	}
	return ""
}
