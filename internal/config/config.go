// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import "fmt"

// VortexConfig contains all tunables of the Vortex arena.
type VortexConfig struct {
	Arena       ArenaConfig      `yaml:"arena"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Pickups     PickupConfig     `yaml:"pickups"`
	Difficulty  SpawnDifficulty  `yaml:"difficulty"`
	Stars       StarfieldConfig  `yaml:"stars"`
}

// ArenaConfig defines the world size and the nominal tick.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TickMillis   float64 `yaml:"tick_millis"`    // Simulated time the per-tick constants are tuned for
	MaxStepTicks float64 `yaml:"max_step_ticks"` // Longest dt accepted, in nominal ticks
}

// PlayerConfig defines movement and the boost resource.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	BoostSpeed    float64 `yaml:"boost_speed"`
	InitialBoost  float64 `yaml:"initial_boost"`
	BoostDrain    float64 `yaml:"boost_drain"`
	BoostRegen    float64 `yaml:"boost_regen"`
	SpeedModifier float64 `yaml:"speed_modifier"`
}

// ProjectileConfig defines projectile spawning, motion and culling.
type ProjectileConfig struct {
	MinSize          int     `yaml:"min_size"`
	MaxSize          int     `yaml:"max_size"`
	MinSpeed         int     `yaml:"min_speed"`
	MaxSpeed         int     `yaml:"max_speed"`
	SizeSpeedDivisor int     `yaml:"size_speed_divisor"` // Bigger projectiles lose size/divisor of their speed range
	EdgeOffset       float64 `yaml:"edge_offset"`        // Distance outside the arena where projectiles appear
	CullMargin       float64 `yaml:"cull_margin"`
	TargetMin        int     `yaml:"target_min"` // Aim point per axis is target_min + rand(target_span)
	TargetSpan       int     `yaml:"target_span"`
	MaxInitialAngle  int     `yaml:"max_initial_angle"`
}

// PickupConfig defines pickup spawning and effect sizes.
type PickupConfig struct {
	Radius            float64 `yaml:"radius"`
	DelaySeconds      int     `yaml:"delay_seconds"`
	IntervalSeconds   int     `yaml:"interval_seconds"`
	SpeedIncrement    float64 `yaml:"speed_increment"`
	CapacityIncrement float64 `yaml:"capacity_increment"`
}

// SpawnDifficulty drives the projectile spawn interval over survival time.
type SpawnDifficulty struct {
	Enabled               bool    `yaml:"enabled"`
	InitialInterval       int     `yaml:"initial_interval"` // Ticks between spawns at t=0
	MinInterval           int     `yaml:"min_interval"`     // Floor reached at time_to_max_seconds
	TimeToMaxSeconds      float64 `yaml:"time_to_max_seconds"`
	UpdateIntervalSeconds int     `yaml:"update_interval_seconds"`
}

// StarfieldConfig controls the decorative background.
type StarfieldConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// NumbersConfig contains the number placement puzzle settings.
type NumbersConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	MinValue int `yaml:"min_value"`
	MaxValue int `yaml:"max_value"`
}

// TriviaConfig contains the quiz settings and its country bank.
type TriviaConfig struct {
	QuestionsPerRound int       `yaml:"questions_per_round"`
	Choices           int       `yaml:"choices"`
	FirstTryPoints    int       `yaml:"first_try_points"`
	SecondTryPoints   int       `yaml:"second_try_points"`
	Countries         []Country `yaml:"countries"`
}

// Country is one entry of the trivia bank.
type Country struct {
	Name    string   `yaml:"name"`
	Capital string   `yaml:"capital"`
	Facts   []string `yaml:"facts"`
}

// Validate reports settings the arena cannot run with.
func (c VortexConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("config: arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Arena.TickMillis <= 0:
		return fmt.Errorf("config: tick_millis must be positive, got %v", c.Arena.TickMillis)
	case c.Player.Radius <= 0 || 2*c.Player.Radius > min(c.Arena.Width, c.Arena.Height):
		return fmt.Errorf("config: player radius %v does not fit the arena", c.Player.Radius)
	case c.Pickups.Radius <= 0 || 2*c.Pickups.Radius >= min(c.Arena.Width, c.Arena.Height):
		return fmt.Errorf("config: pickup radius %v does not fit the arena", c.Pickups.Radius)
	case c.Projectiles.MinSize <= 0 || c.Projectiles.MaxSize <= c.Projectiles.MinSize:
		return fmt.Errorf("config: projectile size range [%d, %d) is empty", c.Projectiles.MinSize, c.Projectiles.MaxSize)
	case c.Projectiles.MinSpeed <= 0 || c.Projectiles.MaxSpeed <= c.Projectiles.MinSpeed:
		return fmt.Errorf("config: projectile speed range [%d, %d) is empty", c.Projectiles.MinSpeed, c.Projectiles.MaxSpeed)
	case c.Projectiles.TargetSpan <= 0:
		return fmt.Errorf("config: target_span must be positive, got %d", c.Projectiles.TargetSpan)
	case c.Difficulty.InitialInterval <= 0:
		return fmt.Errorf("config: initial_interval must be positive, got %d", c.Difficulty.InitialInterval)
	case c.Player.Speed < 0 || c.Player.BoostSpeed < 0 || c.Player.SpeedModifier < 0:
		return fmt.Errorf("config: player speeds must not be negative, got speed %v boost %v modifier %v",
			c.Player.Speed, c.Player.BoostSpeed, c.Player.SpeedModifier)
	case c.Player.InitialBoost < 0 || c.Player.BoostDrain < 0 || c.Player.BoostRegen < 0:
		return fmt.Errorf("config: boost values must not be negative, got initial %v drain %v regen %v",
			c.Player.InitialBoost, c.Player.BoostDrain, c.Player.BoostRegen)
	case c.Pickups.SpeedIncrement < 0 || c.Pickups.CapacityIncrement < 0:
		return fmt.Errorf("config: pickup increments must not be negative, got speed %v capacity %v",
			c.Pickups.SpeedIncrement, c.Pickups.CapacityIncrement)
	case c.Projectiles.EdgeOffset < 0 || c.Projectiles.CullMargin < c.Projectiles.EdgeOffset:
		return fmt.Errorf("config: cull_margin %v must cover edge_offset %v",
			c.Projectiles.CullMargin, c.Projectiles.EdgeOffset)
	case c.Stars.Min < 0:
		return fmt.Errorf("config: stars.min must not be negative, got %d", c.Stars.Min)
	case c.Stars.Max < c.Stars.Min:
		return fmt.Errorf("config: star range [%d, %d] is inverted", c.Stars.Min, c.Stars.Max)
	}
	return nil
}
