package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/shared/netcomponents"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetState copies the simulated players into their network
// components. Players without them are not synced.
func UpdateNetState(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetPosition) {
			return
		}
		obj := components.Object.Get(entry).Object
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: obj.X, Y: obj.Y})

		if entry.HasComponent(netcomponents.NetVelocity) {
			phys := components.Physics.Get(entry)
			netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{
				SpeedX: phys.SpeedX,
				SpeedY: phys.SpeedY,
			})
		}
		if entry.HasComponent(netcomponents.NetPlayerState) {
			state := netcomponents.NetPlayerState.Get(entry)
			fillNetPlayerState(entry, state)
		}
	})

	if entry, ok := netcomponents.NetGameState.First(e.World); ok {
		match := GetOrCreateMatch(e)
		gs := netcomponents.NetGameState.Get(entry)
		gs.Round = match.Round
		gs.Timer = match.Timer
		switch match.State {
		case components.RoundPlaying:
			gs.MatchState = netcomponents.MatchStatePlaying
		case components.RoundOver:
			gs.MatchState = netcomponents.MatchStateFinished
		default:
			gs.MatchState = netcomponents.MatchStateWaiting
		}
		gs.Scores = make(map[int]int, len(match.Scores))
		for _, s := range match.Scores {
			gs.Scores[s.PlayerIndex] = s.Kills
		}
		if match.State == components.RoundPlaying {
			tags.Player.Each(e.World, func(pe *donburi.Entry) {
				p := components.Player.Get(pe)
				gs.Scores[p.Index] += p.RoundKills
			})
		}
	}
}

func fillNetPlayerState(entry *donburi.Entry, state *netcomponents.NetPlayerStateData) {
	p := components.Player.Get(entry)
	sprite := components.Sprite.Get(entry)
	fx := components.Effect.Get(entry)

	state.Index = p.Index
	if p.Person != nil {
		state.Name = p.Person.Name
	}
	state.Anim = int(sprite.Anim)
	if sprite.Clip != nil {
		state.Frame = sprite.Clip.Frame()
	}
	state.Orientation = int(sprite.Orientation)
	state.Visible = sprite.Visible
	state.Alpha = sprite.Alpha

	state.Lifecycle = int(p.Lifecycle)
	state.Flags = uint32(p.Flags)
	state.Life = p.Life
	state.Air = p.Air

	state.Weapon = ""
	if p.Weapon != nil {
		state.Weapon = p.Weapon.Name()
	}
	state.GunVisible = sprite.Gun.Visible
	state.Ammo = p.Ammo
	state.Effect = int(fx.Type)
	state.EffectLeft = fx.Remaining
}
