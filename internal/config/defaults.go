package config

import (
	_ "embed"
)

//go:embed defaults/vortex.yaml
var defaultVortexYAML []byte

//go:embed defaults/numbers.yaml
var defaultNumbersYAML []byte

//go:embed defaults/trivia.yaml
var defaultTriviaYAML []byte

// DefaultVortexConfig returns the default Vortex configuration.
func DefaultVortexConfig() VortexConfig {
	return VortexConfig{
		Arena: ArenaConfig{
			Width:        1000,
			Height:       750,
			TickMillis:   16,
			MaxStepTicks: 4,
		},
		Player: PlayerConfig{
			Radius:        15,
			Speed:         5,
			BoostSpeed:    10,
			InitialBoost:  200,
			BoostDrain:    4,
			BoostRegen:    1,
			SpeedModifier: 1,
		},
		Projectiles: ProjectileConfig{
			MinSize:          10,
			MaxSize:          60,
			MinSpeed:         5,
			MaxSpeed:         20,
			SizeSpeedDivisor: 5,
			EdgeOffset:       60,
			CullMargin:       100,
			TargetMin:        200,
			TargetSpan:       550,
			MaxInitialAngle:  90,
		},
		Pickups: PickupConfig{
			Radius:            10,
			DelaySeconds:      5,
			IntervalSeconds:   5,
			SpeedIncrement:    0.3,
			CapacityIncrement: 25,
		},
		Difficulty: SpawnDifficulty{
			Enabled:               true,
			InitialInterval:       50,
			MinInterval:           10,
			TimeToMaxSeconds:      60,
			UpdateIntervalSeconds: 5,
		},
		Stars: StarfieldConfig{
			Min: 10,
			Max: 50,
		},
	}
}

// DefaultNumbersConfig returns the default number puzzle configuration.
func DefaultNumbersConfig() NumbersConfig {
	return NumbersConfig{
		Rows:     4,
		Cols:     5,
		MinValue: 1,
		MaxValue: 1000,
	}
}

// DefaultTriviaConfig returns the quiz settings with a minimal bank.
// The full bank ships in the embedded YAML.
func DefaultTriviaConfig() TriviaConfig {
	return TriviaConfig{
		QuestionsPerRound: 10,
		Choices:           3,
		FirstTryPoints:    2,
		SecondTryPoints:   1,
		Countries: []Country{
			{Name: "Canada", Capital: "Ottawa", Facts: []string{"Has the longest coastline in the world."}},
			{Name: "Japan", Capital: "Tokyo", Facts: []string{"Is made up of more than 6,800 islands."}},
			{Name: "Kenya", Capital: "Nairobi", Facts: []string{"Is home to the Maasai Mara reserve."}},
			{Name: "Peru", Capital: "Lima", Facts: []string{"Is home to Machu Picchu."}},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "vortex":
		return defaultVortexYAML
	case "numbers":
		return defaultNumbersYAML
	case "trivia":
		return defaultTriviaYAML
	default:
		return nil
	}
}
