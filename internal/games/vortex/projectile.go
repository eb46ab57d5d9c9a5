package vortex

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// Projectile is a square hazard travelling in a straight line.
// Pos is the center of the square.
type Projectile struct {
	Pos      core.Vec
	Radius   float64
	Vel      core.Vec // Units per nominal tick
	Speed    int
	Rotation float64 // Degrees, cosmetic
	RotDir   int     // -1, 0 or 1
}

// NewProjectile creates a projectile at pos moving along dir with the given speed.
// It panics on a non-positive radius or speed, and on a zero or non-finite direction.
func NewProjectile(pos core.Vec, radius float64, dir core.Vec, speed int) Projectile {
	if radius <= 0 || math.IsNaN(radius) {
		panic(fmt.Sprintf("vortex: projectile radius must be positive, got %v", radius))
	}
	if speed <= 0 {
		panic(fmt.Sprintf("vortex: projectile speed must be positive, got %d", speed))
	}
	if !pos.Finite() {
		panic(fmt.Sprintf("vortex: invalid projectile position (%v, %v)", pos.X, pos.Y))
	}
	mag := dir.Len()
	if mag == 0 || !dir.Finite() || math.IsInf(mag, 0) {
		panic("vortex: projectile direction magnitude cannot be zero")
	}

	return Projectile{
		Pos:    pos,
		Radius: radius,
		Vel:    dir.Scale(float64(speed) / mag),
		Speed:  speed,
	}
}

// Bounds returns the collision square.
func (p Projectile) Bounds() core.Box {
	return core.SquareAt(p.Pos, p.Radius)
}

// advance moves the projectile and spins it by a random step.
func (p *Projectile) advance(scale float64, rng *rand.Rand) {
	p.Pos = p.Pos.Add(p.Vel.Scale(scale))
	p.Rotation = math.Mod(p.Rotation+float64(rng.Intn(p.Speed)*p.RotDir), 360)
	if p.Rotation < 0 {
		p.Rotation += 360
	}
}

// Outside reports whether the projectile left the w×h arena expanded by margin.
func (p Projectile) Outside(w, h, margin float64) bool {
	return p.Pos.X < -margin || p.Pos.X > w+margin ||
		p.Pos.Y < -margin || p.Pos.Y > h+margin
}
