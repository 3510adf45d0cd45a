package systems

import (
	"fmt"
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileWeapon fires shot entities described by a weapon table row.
type ProjectileWeapon struct {
	Def cfg.WeaponDef
}

// NewWeapon looks a weapon up in the weapon table.
func NewWeapon(name string) (*ProjectileWeapon, error) {
	def, ok := cfg.WeaponByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown weapon %q", name)
	}
	return &ProjectileWeapon{Def: def}, nil
}

// Weapons returns one weapon per table row.
func Weapons() []components.Weapon {
	out := make([]components.Weapon, 0, len(cfg.Weapons))
	for _, def := range cfg.Weapons {
		out = append(out, &ProjectileWeapon{Def: def})
	}
	return out
}

func (w *ProjectileWeapon) Name() string { return w.Def.Name }
func (w *ProjectileWeapon) Chargeable() bool { return w.Def.Chargeable }
func (w *ProjectileWeapon) ReloadInterval() float64 { return w.Def.Reload }

func (w *ProjectileWeapon) MakeSprite() components.GunSprite {
	return components.GunSprite{Weapon: w.Def.Name, Alpha: 1}
}

func (w *ProjectileWeapon) Shoot(e *ecs.ECS, shooter *donburi.Entry, orientation components.Orientation) {
	obj := components.Object.Get(shooter)

	damage := w.Def.Damage * effectRuleOf(shooter).DamageFactor
	if w.Def.Chargeable {
		damage *= ChargeLevel(shooter)
	}

	sw := w.Def.ShotWidth * cfg.BlockSize
	sh := w.Def.ShotHeight * cfg.BlockSize
	x := obj.X + obj.W
	if orientation == components.Left {
		x = obj.X - sw
	}
	y := obj.Y + obj.H*0.35 - sh/2
	speed := w.Def.ShotSpeed * cfg.BlockSize

	for i := -w.Def.Spread; i <= w.Def.Spread; i++ {
		factory.CreateShot(e, x, y, sw, sh, components.ShotData{
			Shooter:     shooter.Entity(),
			Weapon:      w,
			Damage:      damage,
			Velocity:    components.Vector{X: orientation.Sign() * speed, Y: float64(i) * speed * 0.08},
			Orientation: orientation,
			BlastRange:  w.Def.BlastRange * cfg.BlockSize,
			TimeLeft:    cfg.Combat.ShotLifetime,
		})
	}
}

// ReloadInterval is the carried weapon's interval after effects.
func ReloadInterval(entry *donburi.Entry) float64 {
	p := components.Player.Get(entry)
	if p.Weapon == nil {
		return 0
	}
	interval := p.Weapon.ReloadInterval()
	if effectRuleOf(entry).FastReload {
		interval /= 2
	}
	return interval
}

// ChargeLevel is how far a chargeable weapon has charged, in [0, 1].
// Other weapons are always fully charged.
func ChargeLevel(entry *donburi.Entry) float64 {
	p := components.Player.Get(entry)
	if p.Weapon == nil || !p.Weapon.Chargeable() {
		return 1
	}
	interval := ReloadInterval(entry)
	if interval <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, 1-p.TimeToReload/interval))
}

// IsReloading reports whether the weapon is not ready to fire. A
// chargeable weapon counts as reloading while the trigger is held and
// while its charge is under the threshold.
func IsReloading(entry *donburi.Entry) bool {
	p := components.Player.Get(entry)
	if p.Weapon != nil && p.Weapon.Chargeable() {
		holding := p.Flags.Has(components.FlagShoot) && !p.Flags.Has(components.FlagShootDebounce)
		return holding || ChargeLevel(entry) < cfg.Combat.ChargeThreshold
	}
	return p.TimeToReload > 0
}

// Shoot fires the carried weapon if it is loaded and ready.
func Shoot(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	rule := effectRuleOf(entry)

	if (p.Ammo <= 0 && !rule.InfiniteAmmo) || !p.HasGun() || p.Weapon == nil {
		return
	}
	if IsReloading(entry) {
		return
	}
	// Chargeable weapons fire on release only
	released := p.Flags.HasAll(components.FlagShootDebounce | components.FlagShoot)
	if p.Weapon.Chargeable() && !released {
		return
	}

	if !rule.InfiniteAmmo {
		p.Ammo--
	}
	addShots(p, 1)
	p.Weapon.Shoot(e, entry, p.Orientation)

	if rule.SplitFire {
		addShots(p, 1)
		p.Weapon.Shoot(e, entry, p.Orientation.Opposite())
	}

	p.TimeToReload = ReloadInterval(entry)
}

func addShots(p *components.PlayerData, n int) {
	if p.Person != nil {
		p.Person.AddShots(n)
	}
}

// PickWeapon hands the player a weapon. The gun becomes usable once the
// pick animation finishes.
func PickWeapon(e *ecs.ECS, entry *donburi.Entry, weapon components.Weapon, bullets int, remainingReload float64) {
	p := components.Player.Get(entry)
	p.Flags.Set(components.FlagPick)
	p.Flags.Clear(components.FlagHasGun | components.FlagMoveSides)
	p.Weapon = weapon
	p.Ammo = bullets
	if weapon.Chargeable() {
		p.TimeToReload = ReloadInterval(entry)
	} else {
		p.TimeToReload = remainingReload
	}
	components.Sprite.Get(entry).Gun = weapon.MakeSprite()
	PlaySFX(e, cfg.SoundPickWeapon)
}

// DropWeapon leaves the carried gun on the floor as a pickup and returns
// it, or nil when there was nothing to drop.
func DropWeapon(e *ecs.ECS, entry *donburi.Entry) *donburi.Entry {
	p := components.Player.Get(entry)
	if !p.HasGun() {
		return nil
	}
	dropped := AddPlayerGun(e, entry)
	p.Flags.Clear(components.FlagHasGun)
	p.Weapon = nil
	p.Ammo = 0
	p.TimeToReload = 0
	components.Sprite.Get(entry).Gun.Visible = false
	return dropped
}

func updateReload(entry *donburi.Entry, dt float64) {
	p := components.Player.Get(entry)
	if !IsReloading(entry) {
		return
	}
	chargeable := p.Weapon != nil && p.Weapon.Chargeable()
	if !chargeable || p.Flags.Has(components.FlagShoot) || ChargeLevel(entry) < cfg.Combat.ChargeThreshold {
		p.TimeToReload = math.Max(0, p.TimeToReload-dt)
	}
}
