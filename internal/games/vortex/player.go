package vortex

import (
	"fmt"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// Input is the key state snapshot the arena consumes each tick.
type Input struct {
	Up, Down, Left, Right bool
	Boost                 bool
}

// Player is the square the user steers around the arena.
// Pos is the top-left corner; the collision square has side 2*Radius.
type Player struct {
	Pos           core.Vec
	Radius        float64
	Boost         float64
	MaxBoost      float64
	BoostCut      bool // Set when boost runs dry, cleared above half capacity
	Boosted       bool // Boosted movement was applied on the last tick
	SpeedModifier float64

	speed      float64
	boostSpeed float64
	drain      float64
	regen      float64
}

// NewPlayer creates a player at pos. It panics on a non-positive radius or
// on coordinates that are negative or not finite.
func NewPlayer(pos core.Vec, cfg config.PlayerConfig) *Player {
	if cfg.Radius <= 0 {
		panic(fmt.Sprintf("vortex: player radius must be positive, got %v", cfg.Radius))
	}
	if !pos.Finite() || pos.X < 0 || pos.Y < 0 {
		panic(fmt.Sprintf("vortex: invalid player position (%v, %v)", pos.X, pos.Y))
	}

	modifier := cfg.SpeedModifier
	if modifier <= 0 {
		modifier = 1
	}

	return &Player{
		Pos:           pos,
		Radius:        cfg.Radius,
		Boost:         cfg.InitialBoost,
		MaxBoost:      cfg.InitialBoost,
		SpeedModifier: modifier,
		speed:         cfg.Speed,
		boostSpeed:    cfg.BoostSpeed,
		drain:         cfg.BoostDrain,
		regen:         cfg.BoostRegen,
	}
}

// Size returns the side length of the player's square.
func (p Player) Size() float64 {
	return 2 * p.Radius
}

// Center returns the center of the player's square.
func (p Player) Center() core.Vec {
	return core.Vec{X: p.Pos.X + p.Radius, Y: p.Pos.Y + p.Radius}
}

// Bounds returns the collision square.
func (p Player) Bounds() core.Box {
	return core.SquareAt(p.Center(), p.Radius)
}

// UpdateBoost drains or regenerates the boost resource for one tick.
func (p *Player) UpdateBoost(held bool, scale float64) {
	if held && !p.BoostCut {
		p.Boost -= p.drain * scale
		if p.Boost < 0 {
			p.Boost = 0
		}
	} else {
		p.Boost += p.regen * scale
		if p.Boost > p.MaxBoost {
			p.Boost = p.MaxBoost
		}
	}

	if p.Boost > p.MaxBoost/2 {
		p.BoostCut = false
	}
	if p.Boost <= 0 {
		p.BoostCut = true
	}
	p.Boosted = held && !p.BoostCut
}

// Step returns the distance moved along an axis this tick.
func (p Player) Step(scale float64) float64 {
	speed := p.speed
	if p.Boosted {
		speed = p.boostSpeed
	}
	return speed * p.SpeedModifier * scale
}

// Move applies directional input and clamps the player inside a w×h arena.
func (p *Player) Move(in Input, scale, w, h float64) {
	step := p.Step(scale)
	if in.Up {
		p.Pos.Y -= step
	}
	if in.Down {
		p.Pos.Y += step
	}
	if in.Left {
		p.Pos.X -= step
	}
	if in.Right {
		p.Pos.X += step
	}

	p.Pos.X = core.ClampF(p.Pos.X, 0, w-p.Size())
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, h-p.Size())
}
