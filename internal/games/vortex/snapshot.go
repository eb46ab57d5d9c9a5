package vortex

import "math"

// Snapshot contains the arena state for replay verification and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick          uint64
	State         string
	Elapsed       float64
	Survival      int
	SpawnInterval int
	SpawnCounter  int

	PlayerX       float64
	PlayerY       float64
	Boost         float64
	MaxBoost      float64
	BoostCut      bool
	SpeedModifier float64

	// Each projectile is 4 floats: X, Y, VX, VY
	ProjectileCount int
	ProjectileData  []float64

	// Each pickup is 3 floats: Kind, X, Y
	PickupCount int
	PickupData  []float64
}

// Snapshot returns the current arena state.
func (a *Arena) Snapshot() Snapshot {
	projectiles := make([]float64, 0, len(a.projectiles)*4)
	for _, p := range a.projectiles {
		projectiles = append(projectiles, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}

	pickups := make([]float64, 0, len(a.pickups)*3)
	for _, p := range a.pickups {
		pickups = append(pickups, float64(p.Kind), p.Pos.X, p.Pos.Y)
	}

	return Snapshot{
		Tick:          a.ticks,
		State:         a.state.String(),
		Elapsed:       a.clock.Elapsed(),
		Survival:      a.clock.Seconds(),
		SpawnInterval: a.spawnInterval,
		SpawnCounter:  a.spawnCounter,

		PlayerX:       a.player.Pos.X,
		PlayerY:       a.player.Pos.Y,
		Boost:         a.player.Boost,
		MaxBoost:      a.player.MaxBoost,
		BoostCut:      a.player.BoostCut,
		SpeedModifier: a.player.SpeedModifier,

		ProjectileCount: len(a.projectiles),
		ProjectileData:  projectiles,
		PickupCount:     len(a.pickups),
		PickupData:      pickups,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + uint64(snap.Survival)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnCounter)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.Boost)
	h = h*31 + math.Float64bits(snap.MaxBoost)
	if snap.BoostCut {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.SpeedModifier)

	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.PickupCount) //#nosec G115 -- hash computation
	for _, v := range snap.PickupData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
