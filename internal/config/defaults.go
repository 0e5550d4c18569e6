package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the built-in match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Field: FieldConfig{
			Width:            40,
			Length:           60,
			GoalWidth:        7,
			GoalHeight:       2.5,
			PenaltyBoxWidth:  18,
			PenaltyBoxLength: 16,
		},
		Physics: PhysicsConfig{
			Gravity:           -9.8,
			BallGroundHeight:  0.15,
			GroundRestitution: 0.6,
			BounceStopSpeed:   0.5,
			BallFriction:      0.97,
			StopSpeed:         0.01,
			WallRestitution:   0.5,
			PlayerFriction:    0.98,
			BoundaryInset:     1,
			ContactRadius:     0.8,
			KickLift:          0.5,
			ShotLiftScale:     0.3,
			ShotLift:          2,
		},
		Decision: DecisionConfig{
			PursuitRadius:     15,
			PursuitFraction:   0.7,
			HomeDepth:         10,
			ReturnFraction:    0.3,
			HomeTolerance:     2,
			PursuitHysteresis: 0,
		},
		Rules: RulesConfig{
			HalfLength:       300,
			SprintMultiplier: 1.5,
			PassPower:        15,
			ShotPower:        20,
			TackleRadius:     1.5,
		},
		Roster: RosterConfig{
			TeamSize:        5,
			ControlledIndex: 4,
			SpeedMin:        8,
			SpeedBand:       2,
			SkillMin:        70,
			SkillBand:       20,
			Stamina:         100,
			HomeSpawns: []Spawn{
				{X: 0, Z: -20}, // Goalkeeper
				{X: -8, Z: -10},
				{X: 8, Z: -10},
				{X: -5, Z: 0},
				{X: 5, Z: 0},
			},
			AwaySpawns: []Spawn{
				{X: 0, Z: 20},
				{X: -8, Z: 10},
				{X: 8, Z: 10},
				{X: -5, Z: 0},
				{X: 5, Z: 0},
			},
		},
		Input: InputConfig{
			DeadZone: 20,
			Scale:    50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600, // Both halves
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default match YAML.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
