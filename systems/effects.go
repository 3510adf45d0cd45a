package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// effectRule describes everything an effect type changes. Zero values mean
// "no change".
type effectRule struct {
	// SpeedFactor replaces the armed/unarmed speed factor when positive.
	SpeedFactor     float64
	DamageFactor    float64
	speedFactor     func() float64
	damageFactor    func() float64
	SplitFire       bool
	InfiniteAmmo    bool
	LifeSteal       bool
	Invulnerable    bool
	SuperDoubleJump bool
	FastReload      bool
	Snorkel         bool

	onApply  func(e *ecs.ECS, entry *donburi.Entry, duration int)
	onExpire func(e *ecs.ECS, entry *donburi.Entry)
}

// announce posts the standard "<effect> for N seconds" line.
func announce(label string) func(e *ecs.ECS, entry *donburi.Entry, duration int) {
	return func(e *ecs.ECS, entry *donburi.Entry, duration int) {
		PostMessage(e, entry, "%s for %d seconds", label, duration)
	}
}

var effectTable map[components.EffectType]effectRule

func init() {
	effectTable = map[components.EffectType]effectRule{
		components.EffectNone: {},
		components.EffectInvulnerability: {
			Invulnerable: true,
			onApply:      startPulse,
			onExpire:     stopPulse,
		},
		components.EffectFastReload: {
			FastReload: true,
			onApply:    announce("Fast reload"),
		},
		components.EffectPowerfulShots: {
			damageFactor: func() float64 { return cfg.Bonus.PowerfulShotsFactor },
			onApply:      announce("Powerful shots"),
		},
		components.EffectInvisibility: {
			onApply: func(e *ecs.ECS, entry *donburi.Entry, duration int) {
				components.Player.Get(entry).Alpha = cfg.Bonus.InvisibleAlpha
				announce("Invisibility")(e, entry, duration)
			},
			onExpire: func(_ *ecs.ECS, entry *donburi.Entry) {
				components.Player.Get(entry).Alpha = 1
			},
		},
		components.EffectSplitFire: {
			SplitFire: true,
			onApply:   announce("Split fire"),
		},
		components.EffectVampireShots: {
			LifeSteal: true,
			onApply:   announce("Vampire shots"),
		},
		components.EffectInfiniteAmmo: {
			InfiniteAmmo: true,
			onApply:      announce("Infinite ammo"),
		},
		components.EffectSnorkel: {
			Snorkel: true,
			onApply: announce("Snorkel"),
		},
		components.EffectFastMovement: {
			speedFactor:     func() float64 { return cfg.Bonus.FastMovementFactor },
			SuperDoubleJump: true,
			onApply:         announce("Fast movement"),
		},
	}
}

func effectRuleOf(entry *donburi.Entry) effectRule {
	rule := effectTable[components.Effect.Get(entry).Type]
	rule.DamageFactor = 1
	if rule.damageFactor != nil {
		rule.DamageFactor = rule.damageFactor()
	}
	if rule.speedFactor != nil {
		rule.SpeedFactor = rule.speedFactor()
	}
	return rule
}

// SetEffect puts an effect in the player's slot. Re-applying the active
// type extends it by half the new duration without re-running its hooks;
// any other type expires the old effect first.
func SetEffect(e *ecs.ECS, entry *donburi.Entry, t components.EffectType, duration float64) {
	fx := components.Effect.Get(entry)
	if fx.Type == t {
		fx.Remaining += duration / 2
		fx.Duration += duration / 2
		return
	}

	if expire := effectTable[fx.Type].onExpire; expire != nil {
		expire(e, entry)
	}
	fx.Type = t
	fx.Duration = duration
	fx.Remaining = duration
	if apply := effectTable[t].onApply; apply != nil {
		apply(e, entry, int(math.Round(duration)))
	}
}

// HasEffect reports the active effect type.
func HasEffect(entry *donburi.Entry, t components.EffectType) bool {
	return components.Effect.Get(entry).Type == t
}

func IsInvulnerable(entry *donburi.Entry) bool {
	return effectRuleOf(entry).Invulnerable
}

// tickEffect counts the active effect down and expires it.
func tickEffect(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	fx := components.Effect.Get(entry)
	if fx.Pulse != nil {
		alpha, _, done := fx.Pulse.Update(float32(dt))
		if done {
			fx.Pulse.Reset()
		}
		components.Player.Get(entry).Alpha = float64(alpha)
	}
	if fx.Remaining > 0 {
		fx.Remaining -= dt
		if fx.Remaining <= 0 {
			SetEffect(e, entry, components.EffectNone, 0)
		}
	}
}

func startPulse(_ *ecs.ECS, entry *donburi.Entry, _ int) {
	low := float32(cfg.Bonus.PulseLow)
	period := float32(cfg.Bonus.PulsePeriod)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, low, period, ease.Linear),
		gween.New(low, 1, period, ease.Linear),
	)
	components.Effect.Get(entry).Pulse = seq
}

func stopPulse(_ *ecs.ECS, entry *donburi.Entry) {
	components.Effect.Get(entry).Pulse = nil
	components.Player.Get(entry).Alpha = 1
}
