package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dropAt puts a pickup at the feet of a player standing on tile tx of row 5.
func dropAt(e *ecs.ECS, tx int, data components.PickupData) *donburi.Entry {
	size := cfg.BlockSize / 2
	return factory.CreatePickup(e, float64(tx)*cfg.BlockSize+size/2, 96-size, size, data)
}

func pickups(e *ecs.ECS) []components.PickupData {
	var out []components.PickupData
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, *components.Pickup.Get(entry))
	})
	return out
}

func TestPlusLifeBonus(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	a.player().Life = 50
	dropAt(e, 2, components.PickupData{Kind: components.PickupPlusLife})

	step(e, frame)

	if got := a.player().Life; got != 50+cfg.Bonus.PlusLife {
		t.Fatalf("life = %v, want %v", got, 50+cfg.Bonus.PlusLife)
	}
	if len(pickups(e)) != 0 {
		t.Fatal("bonus not consumed")
	}
	if got, want := MessagesFor(e, a.entry), []string{"Life +30"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("messages = %q, want %q", got, want)
	}
	if !hasSound(DrainSounds(e), cfg.SoundPickBonus) {
		t.Fatal("no bonus sound")
	}
}

func TestEffectBonus(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	dropAt(e, 2, components.PickupData{
		Kind:     components.PickupEffect,
		Effect:   components.EffectInfiniteAmmo,
		Duration: 8,
	})

	step(e, frame)

	if !HasEffect(a.entry, components.EffectInfiniteAmmo) {
		t.Fatal("effect not applied")
	}
	if len(pickups(e)) != 0 {
		t.Fatal("bonus left on the map")
	}
}

func TestBulletsBonusNeedsAGun(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "")
	dropAt(e, 2, components.PickupData{Kind: components.PickupBullets, Bullets: 7})

	step(e, frame)

	if a.player().Ammo != 0 {
		t.Fatalf("ammo = %d, want 0 without a weapon", a.player().Ammo)
	}
	if len(MessagesFor(e, a.entry)) != 0 {
		t.Fatal("announced bullets without a weapon")
	}
}

func TestWeaponPickupIgnoredByBonusCheck(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	shotgun, _ := NewWeapon("shotgun")
	dropAt(e, 2, components.PickupData{Kind: components.PickupWeapon, Weapon: shotgun, Bullets: 3})

	step(e, frame)

	if a.player().Weapon.Name() != "pistol" || len(pickups(e)) != 1 {
		t.Fatal("weapon taken without pressing pick")
	}
}

func TestSwapWeapon(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	a.player().Ammo = 4
	shotgun, _ := NewWeapon("shotgun")
	dropAt(e, 2, components.PickupData{Kind: components.PickupWeapon, Weapon: shotgun, Bullets: 3})

	a.press(cfg.ButtonPick)
	step(e, frame)
	a.press()

	p := a.player()
	if !p.IsPicking() || p.HasGun() {
		t.Fatalf("picking = %v has gun = %v, want picking without a gun", p.IsPicking(), p.HasGun())
	}
	if p.Weapon.Name() != "shotgun" || p.Ammo != 3 {
		t.Fatalf("weapon = %s ammo = %d, want shotgun with 3", p.Weapon.Name(), p.Ammo)
	}
	sprite := components.Sprite.Get(a.entry)
	if sprite.Anim != cfg.AnimPick || sprite.Gun.Visible {
		t.Fatalf("anim = %v gun visible = %v, want pick with the gun hidden", sprite.Anim, sprite.Gun.Visible)
	}

	left := pickups(e)
	if len(left) != 1 || left[0].Weapon.Name() != "pistol" || left[0].Bullets != 4 {
		t.Fatalf("pickups = %+v, want the dropped pistol with 4 bullets", left)
	}
	if !hasSound(DrainSounds(e), cfg.SoundPickWeapon) {
		t.Fatal("no pick sound")
	}

	steps(e, 60)
	if !p.HasGun() || p.IsPicking() {
		t.Fatal("pick did not finish")
	}
	if err := ValidatePlayer(a.entry); err != nil {
		t.Fatal(err)
	}
}

func TestPickWithNothingThereDropsTheGun(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	a.press(cfg.ButtonPick)
	step(e, frame)

	if a.player().HasGun() || a.player().Weapon != nil {
		t.Fatal("still armed")
	}
	if left := pickups(e); len(left) != 1 || left[0].Weapon.Name() != "pistol" {
		t.Fatalf("pickups = %+v, want the pistol", left)
	}

	step(e, frame)
	if a.player().Weapon == nil || a.player().Weapon.Name() != "pistol" {
		t.Fatal("dropped pistol not picked back up")
	}
}
