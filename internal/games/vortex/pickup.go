package vortex

import (
	"fmt"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// PickupKind identifies a power-up variant.
type PickupKind int

const (
	SpeedBoost PickupKind = iota
	BoostCapacityUp
	BoostRefresh
)

// pickupKinds lists every variant; spawns pick uniformly from it.
var pickupKinds = []PickupKind{SpeedBoost, BoostCapacityUp, BoostRefresh}

// String returns the display name.
func (k PickupKind) String() string {
	switch k {
	case SpeedBoost:
		return "Speed Boost"
	case BoostCapacityUp:
		return "Boost Up"
	case BoostRefresh:
		return "Boost Refresh"
	default:
		return "Unknown"
	}
}

// Glyph returns the character used to draw the pickup.
func (k PickupKind) Glyph() rune {
	switch k {
	case SpeedBoost:
		return '»'
	case BoostCapacityUp:
		return '+'
	case BoostRefresh:
		return '↺'
	default:
		return '?'
	}
}

// Color returns the pickup's draw color.
func (k PickupKind) Color() core.Color {
	switch k {
	case SpeedBoost:
		return core.ColorBrightYellow
	case BoostCapacityUp:
		return core.ColorBrightGreen
	case BoostRefresh:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}

// Apply performs the one-shot effect on the player.
func (k PickupKind) Apply(p *Player, cfg config.PickupConfig) {
	switch k {
	case SpeedBoost:
		p.SpeedModifier += cfg.SpeedIncrement
	case BoostCapacityUp:
		p.MaxBoost += cfg.CapacityIncrement
		p.Boost = min(p.Boost+cfg.CapacityIncrement, p.MaxBoost)
	case BoostRefresh:
		p.Boost = p.MaxBoost
	default:
		panic(fmt.Sprintf("vortex: unknown pickup kind %d", int(k)))
	}
}

// Pickup is a power-up lying in the arena. Pos is the center of its square.
type Pickup struct {
	Pos    core.Vec
	Radius float64
	Kind   PickupKind
}

// NewPickup creates a pickup. It panics on a non-positive radius or an unknown kind.
func NewPickup(pos core.Vec, radius float64, kind PickupKind) Pickup {
	if radius <= 0 {
		panic(fmt.Sprintf("vortex: pickup radius must be positive, got %v", radius))
	}
	if kind < SpeedBoost || kind > BoostRefresh {
		panic(fmt.Sprintf("vortex: unknown pickup kind %d", int(kind)))
	}
	if !pos.Finite() {
		panic(fmt.Sprintf("vortex: invalid pickup position (%v, %v)", pos.X, pos.Y))
	}
	return Pickup{Pos: pos, Radius: radius, Kind: kind}
}

// Bounds returns the collision square.
func (p Pickup) Bounds() core.Box {
	return core.SquareAt(p.Pos, p.Radius)
}
