// Package config provides YAML-based match configuration loading and
// difficulty management. Every tunable constant of the simulation lives here
// so it can be overridden per file or per stored profile.
package config

// MatchConfig contains all configuration for a football match.
type MatchConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Decision   DecisionConfig   `yaml:"decision"`
	Rules      RulesConfig      `yaml:"rules"`
	Roster     RosterConfig     `yaml:"roster"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the pitch geometry, in world units.
type FieldConfig struct {
	Width            float64 `yaml:"width"`
	Length           float64 `yaml:"length"`
	GoalWidth        float64 `yaml:"goal_width"`
	GoalHeight       float64 `yaml:"goal_height"`
	PenaltyBoxWidth  float64 `yaml:"penalty_box_width"`
	PenaltyBoxLength float64 `yaml:"penalty_box_length"`
}

// PhysicsConfig holds ball and player integration constants.
// Friction values are per-tick multipliers.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	BallGroundHeight  float64 `yaml:"ball_ground_height"`
	GroundRestitution float64 `yaml:"ground_restitution"`
	BounceStopSpeed   float64 `yaml:"bounce_stop_speed"`
	BallFriction      float64 `yaml:"ball_friction"`
	StopSpeed         float64 `yaml:"stop_speed"`
	WallRestitution   float64 `yaml:"wall_restitution"`
	PlayerFriction    float64 `yaml:"player_friction"`
	BoundaryInset     float64 `yaml:"boundary_inset"`
	ContactRadius     float64 `yaml:"contact_radius"`
	KickLift          float64 `yaml:"kick_lift"`       // Fraction of direction.y*power kept on a plain kick
	ShotLiftScale     float64 `yaml:"shot_lift_scale"` // Fraction of |direction.y|*power on a shot
	ShotLift          float64 `yaml:"shot_lift"`       // Constant upward speed added to every shot
}

// DecisionConfig tunes the non-controlled player heuristic.
type DecisionConfig struct {
	PursuitRadius     float64 `yaml:"pursuit_radius"`
	PursuitFraction   float64 `yaml:"pursuit_fraction"`
	HomeDepth         float64 `yaml:"home_depth"`
	ReturnFraction    float64 `yaml:"return_fraction"`
	HomeTolerance     float64 `yaml:"home_tolerance"`
	PursuitHysteresis float64 `yaml:"pursuit_hysteresis"` // 0 disables hysteresis
}

// RulesConfig holds match rules and kick strengths.
type RulesConfig struct {
	HalfLength       float64 `yaml:"half_length"` // Seconds per half
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	PassPower        float64 `yaml:"pass_power"`
	ShotPower        float64 `yaml:"shot_power"`
	TackleRadius     float64 `yaml:"tackle_radius"`
}

// Spawn is a kick-off position on the ground plane.
type Spawn struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// RosterConfig describes both squads and their spawn layout.
type RosterConfig struct {
	TeamSize        int     `yaml:"team_size"`
	ControlledIndex int     `yaml:"controlled_index"` // Home player controlled at kick-off
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedBand       float64 `yaml:"speed_band"`
	SkillMin        float64 `yaml:"skill_min"`
	SkillBand       float64 `yaml:"skill_band"`
	Stamina         float64 `yaml:"stamina"`
	HomeSpawns      []Spawn `yaml:"home_spawns"`
	AwaySpawns      []Spawn `yaml:"away_spawns"`
}

// InputConfig tunes the virtual joystick.
type InputConfig struct {
	DeadZone float64 `yaml:"dead_zone"` // Pixels from the joystick centre
	Scale    float64 `yaml:"scale"`     // Pixels per unit of movement
}

// DifficultyConfig defines how the opposing team's effort scales.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Home goals or match seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the opponents' speed fractions at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
