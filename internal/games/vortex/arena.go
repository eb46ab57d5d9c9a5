package vortex

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// State is the arena's lifecycle phase.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Star is a decorative background point.
type Star struct {
	Pos  core.Vec
	Size int
}

// TickResult reports what happened during one Advance call.
type TickResult struct {
	Ended     bool // Player was hit; the arena is now in StateGameOver
	Spawned   int
	Culled    int
	Collected []PickupKind
	Survival  int // Whole seconds survived after this tick
}

// Arena owns one session of the survival game: the player, the live
// projectiles and pickups, the survival clock and the spawn pacing.
// It is not safe for concurrent use.
type Arena struct {
	cfg   config.VortexConfig
	curve config.SpawnCurve
	rng   *rand.Rand

	state       State
	player      *Player
	projectiles []Projectile
	pickups     []Pickup
	stars       []Star

	clock      Clock
	ticks      uint64
	nominalDt  float64 // Seconds per nominal tick
	maxDt      float64
	lastResult int

	spawnCounter     int
	spawnInterval    int
	lastDifficultyAt int
	pickupThisSecond bool
}

// NewArena creates an arena sitting in StateMenu. It panics if cfg is invalid.
func NewArena(cfg config.VortexConfig, rng *rand.Rand) *Arena {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("vortex: %v", err))
	}
	if rng == nil {
		panic("vortex: nil random source")
	}

	nominal := cfg.Arena.TickMillis / 1000
	maxTicks := cfg.Arena.MaxStepTicks
	if maxTicks < 1 {
		maxTicks = 1
	}

	a := &Arena{
		cfg:       cfg,
		curve:     config.NewSpawnCurve(cfg.Difficulty),
		rng:       rng,
		state:     StateMenu,
		nominalDt: nominal,
		maxDt:     nominal * maxTicks,
	}
	a.resetSession()
	return a
}

// resetSession puts every per-session field back to its initial value.
func (a *Arena) resetSession() {
	r := a.cfg.Player.Radius
	start := core.Vec{X: a.cfg.Arena.Width/2 - r, Y: a.cfg.Arena.Height/2 - r}
	a.player = NewPlayer(start, a.cfg.Player)

	a.projectiles = a.projectiles[:0]
	a.pickups = a.pickups[:0]
	a.clock.Reset()
	a.ticks = 0
	a.spawnCounter = 0
	a.spawnInterval = a.curve.Interval(0)
	a.lastDifficultyAt = 0
	a.pickupThisSecond = false
	a.generateStars()
}

// generateStars scatters a fresh background.
func (a *Arena) generateStars() {
	count := a.cfg.Stars.Min
	if span := a.cfg.Stars.Max - a.cfg.Stars.Min; span > 0 {
		count += a.rng.Intn(span + 1)
	}

	a.stars = make([]Star, count)
	for i := range a.stars {
		a.stars[i] = Star{
			Pos:  core.Vec{X: a.rng.Float64() * a.cfg.Arena.Width, Y: a.rng.Float64() * a.cfg.Arena.Height},
			Size: 1 + a.rng.Intn(3),
		}
	}
}

// Start begins a session from the menu. It does nothing in other states.
func (a *Arena) Start() bool {
	if a.state != StateMenu {
		return false
	}
	a.resetSession()
	a.state = StatePlaying
	return true
}

// Retry begins a new session straight from the game over screen.
func (a *Arena) Retry() bool {
	if a.state != StateGameOver {
		return false
	}
	a.resetSession()
	a.state = StatePlaying
	return true
}

// ToMenu abandons the session and returns to the menu.
func (a *Arena) ToMenu() bool {
	if a.state == StateMenu {
		return false
	}
	a.resetSession()
	a.state = StateMenu
	return true
}

// Advance runs one simulation tick of dt seconds with the given input.
// Outside StatePlaying it does nothing. It panics if dt is not a positive
// finite number; dt above MaxStepTicks nominal ticks is clamped.
//
// Order within a tick: boost, player movement, projectile spawn,
// projectile movement and culling, pickup spawn, collisions.
func (a *Arena) Advance(dt float64, in Input) TickResult {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("vortex: invalid tick duration %v", dt))
	}
	if a.state != StatePlaying {
		return TickResult{Survival: a.clock.Seconds()}
	}

	dt = min(dt, a.maxDt)
	scale := dt / a.nominalDt

	a.ticks++
	a.clock.Advance(dt)
	seconds := a.clock.Seconds()
	a.updateDifficulty(seconds)

	var res TickResult

	a.player.UpdateBoost(in.Boost, scale)
	a.player.Move(in, scale, a.cfg.Arena.Width, a.cfg.Arena.Height)

	if a.spawnCounter%a.spawnInterval == 0 {
		a.projectiles = append(a.projectiles, a.spawnProjectile())
		res.Spawned++
	}
	a.spawnCounter++

	res.Culled = a.moveProjectiles(scale)

	if a.updatePickupSpawn(seconds) {
		a.pickups = append(a.pickups, a.spawnPickup())
	}

	res.Ended, res.Collected = a.resolveCollisions()
	if res.Ended {
		a.state = StateGameOver
		a.lastResult = seconds
	}

	res.Survival = seconds
	return res
}

// updateDifficulty recomputes the spawn interval once every UpdateEvery seconds.
func (a *Arena) updateDifficulty(seconds int) {
	if seconds-a.lastDifficultyAt < a.curve.UpdateEvery() {
		return
	}
	a.lastDifficultyAt = seconds
	a.spawnInterval = a.curve.Interval(float64(seconds))
}

// spawnProjectile creates a projectile just outside a random edge, aimed
// at a random point in the middle of the arena.
func (a *Arena) spawnProjectile() Projectile {
	pc := a.cfg.Projectiles
	w, h := a.cfg.Arena.Width, a.cfg.Arena.Height

	pos := core.Vec{
		X: float64(a.rng.Intn(max(int(w), 1))),
		Y: float64(a.rng.Intn(max(int(h), 1))),
	}
	if a.rng.Intn(2) == 0 {
		pos.X = a.edge(w)
	} else {
		pos.Y = a.edge(h)
	}

	size := pc.MinSize + a.rng.Intn(pc.MaxSize-pc.MinSize)
	speed := a.projectileSpeed(size)

	target := core.Vec{
		X: float64(pc.TargetMin + a.rng.Intn(pc.TargetSpan)),
		Y: float64(pc.TargetMin + a.rng.Intn(pc.TargetSpan)),
	}
	dir := target.Sub(pos)
	if dir.Len() == 0 {
		// Only reachable with a target box that reaches the spawn edge.
		dir = core.Vec{X: w/2 - pos.X, Y: h/2 - pos.Y}
	}

	p := NewProjectile(pos, float64(size)/2, dir, speed)
	if pc.MaxInitialAngle > 0 {
		p.Rotation = float64(a.rng.Intn(pc.MaxInitialAngle))
	}
	p.RotDir = a.rng.Intn(3) - 1
	return p
}

// edge returns a coordinate just beyond the low or high side of an axis.
func (a *Arena) edge(extent float64) float64 {
	if a.rng.Intn(2) == 0 {
		return -a.cfg.Projectiles.EdgeOffset
	}
	return extent + a.cfg.Projectiles.EdgeOffset
}

// projectileSpeed draws a speed; larger projectiles have a narrower range.
func (a *Arena) projectileSpeed(size int) int {
	pc := a.cfg.Projectiles
	span := pc.MaxSpeed - pc.MinSpeed
	if size >= pc.MinSize && pc.SizeSpeedDivisor > 0 {
		span -= size / pc.SizeSpeedDivisor
	}
	return pc.MinSpeed + a.rng.Intn(max(span, 1))
}

// moveProjectiles advances every projectile and drops those far outside.
func (a *Arena) moveProjectiles(scale float64) int {
	w, h, margin := a.cfg.Arena.Width, a.cfg.Arena.Height, a.cfg.Projectiles.CullMargin

	kept := a.projectiles[:0]
	culled := 0
	for i := range a.projectiles {
		p := a.projectiles[i]
		p.advance(scale, a.rng)
		if p.Outside(w, h, margin) {
			culled++
			continue
		}
		kept = append(kept, p)
	}
	a.projectiles = kept
	return culled
}

// updatePickupSpawn reports whether a pickup is due. At most one pickup
// appears per qualifying second, after the initial delay.
func (a *Arena) updatePickupSpawn(seconds int) bool {
	pc := a.cfg.Pickups
	interval := max(pc.IntervalSeconds, 1)

	if seconds < pc.DelaySeconds || seconds%interval != 0 {
		a.pickupThisSecond = false
		return false
	}
	if a.pickupThisSecond {
		return false
	}
	a.pickupThisSecond = true
	return true
}

// spawnPickup places a random pickup fully inside the arena.
func (a *Arena) spawnPickup() Pickup {
	r := a.cfg.Pickups.Radius
	x := float64(a.rng.Intn(max(int(a.cfg.Arena.Width-2*r), 1)))
	y := float64(a.rng.Intn(max(int(a.cfg.Arena.Height-2*r), 1)))
	kind := pickupKinds[a.rng.Intn(len(pickupKinds))]
	return NewPickup(core.Vec{X: x + r, Y: y + r}, r, kind)
}

// resolveCollisions removes every projectile touching the player and
// applies every pickup the player overlaps.
func (a *Arena) resolveCollisions() (bool, []PickupKind) {
	pb := a.player.Bounds()

	hit := false
	kept := a.projectiles[:0]
	for _, p := range a.projectiles {
		if p.Bounds().Intersects(pb) {
			hit = true
			continue
		}
		kept = append(kept, p)
	}
	a.projectiles = kept

	var collected []PickupKind
	remaining := a.pickups[:0]
	for _, pu := range a.pickups {
		if pu.Bounds().Intersects(pb) {
			pu.Kind.Apply(a.player, a.cfg.Pickups)
			collected = append(collected, pu.Kind)
			continue
		}
		remaining = append(remaining, pu)
	}
	a.pickups = remaining

	return hit, collected
}

// AddProjectile places a projectile in the arena.
func (a *Arena) AddProjectile(p Projectile) {
	a.projectiles = append(a.projectiles, p)
}

// AddPickup places a pickup in the arena.
func (a *Arena) AddPickup(p Pickup) {
	a.pickups = append(a.pickups, p)
}

// State returns the lifecycle phase.
func (a *Arena) State() State { return a.state }

// Player returns a copy of the player.
func (a *Arena) Player() Player { return *a.player }

// Projectiles returns a copy of the live projectiles.
func (a *Arena) Projectiles() []Projectile {
	return append([]Projectile(nil), a.projectiles...)
}

// Pickups returns a copy of the pickups waiting to be collected.
func (a *Arena) Pickups() []Pickup {
	return append([]Pickup(nil), a.pickups...)
}

// Stars returns the background stars.
func (a *Arena) Stars() []Star { return a.stars }

// Survival returns whole seconds survived in the current session.
func (a *Arena) Survival() int { return a.clock.Seconds() }

// LastResult returns the survival time of the most recently ended session.
func (a *Arena) LastResult() int { return a.lastResult }

// Elapsed returns the exact simulated survival time.
func (a *Arena) Elapsed() float64 { return a.clock.Elapsed() }

// Ticks returns the ticks simulated in the current session.
func (a *Arena) Ticks() uint64 { return a.ticks }

// SpawnInterval returns the current ticks between projectile spawns.
func (a *Arena) SpawnInterval() int { return a.spawnInterval }

// Config returns the arena configuration.
func (a *Arena) Config() config.VortexConfig { return a.cfg }
