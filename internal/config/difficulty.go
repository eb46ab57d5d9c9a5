package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyVortexPreset adjusts spawn pacing and the boost budget for a preset.
func ApplyVortexPreset(cfg *VortexConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyEasy:
		d.Enabled = true
		d.InitialInterval = 60
		d.MinInterval = 15
		d.TimeToMaxSeconds = 90
		cfg.Player.InitialBoost = 250
	case DifficultyNormal:
		d.Enabled = true
		d.InitialInterval = 50
		d.MinInterval = 10
		d.TimeToMaxSeconds = 60
	case DifficultyHard:
		d.Enabled = true
		d.InitialInterval = 35
		d.MinInterval = 6
		d.TimeToMaxSeconds = 45
		cfg.Player.InitialBoost = 150
	case DifficultyFixed:
		d.Enabled = false
	}
}

// SpawnCurve maps survival time to a projectile spawn interval in ticks.
// Difficulty ramps quickly at first and flattens out near the floor.
type SpawnCurve struct {
	cfg SpawnDifficulty
}

// NewSpawnCurve creates a curve from the difficulty config.
func NewSpawnCurve(cfg SpawnDifficulty) SpawnCurve {
	return SpawnCurve{cfg: cfg}
}

// Interval returns the spawn interval for the given survival time.
// With progression disabled the initial interval is kept.
func (c SpawnCurve) Interval(survivalSeconds float64) int {
	if !c.cfg.Enabled {
		return max(c.cfg.InitialInterval, 1)
	}
	return SpawnInterval(c.cfg.InitialInterval, c.cfg.MinInterval, c.cfg.TimeToMaxSeconds, survivalSeconds)
}

// UpdateEvery returns how many whole seconds pass between recomputations.
func (c SpawnCurve) UpdateEvery() int {
	return max(c.cfg.UpdateIntervalSeconds, 1)
}

// SpawnInterval evaluates
//
//	progress = min(1, s / timeToMax)
//	rate     = initial - (initial - min) * ln(1 + progress*(e-1))
//
// and floors the result. The result never drops below min or below 1.
func SpawnInterval(initial, minRate int, timeToMax, survivalSeconds float64) int {
	progress := 1.0
	if timeToMax > 0 {
		progress = clampF(survivalSeconds/timeToMax, 0, 1)
	}

	rate := float64(initial) - float64(initial-minRate)*math.Log(1+progress*(math.E-1))
	result := int(math.Floor(rate))
	return max(result, minRate, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
