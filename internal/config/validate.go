package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem with the config at once.
func (c MatchConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	f := c.Field
	check(f.Width > 0 && f.Length > 0, "field: width and length must be positive")
	check(f.GoalWidth > 0 && f.GoalWidth <= f.Width, "field: goal_width must be in (0, width]")
	check(f.GoalHeight > 0, "field: goal_height must be positive")
	check(c.Physics.BoundaryInset >= 0 && 2*c.Physics.BoundaryInset < f.Width && 2*c.Physics.BoundaryInset < f.Length,
		"physics: boundary_inset %.2f leaves no playable area", c.Physics.BoundaryInset)

	p := c.Physics
	check(p.BallFriction > 0 && p.BallFriction <= 1, "physics: ball_friction must be in (0, 1]")
	check(p.PlayerFriction > 0 && p.PlayerFriction <= 1, "physics: player_friction must be in (0, 1]")
	check(p.GroundRestitution >= 0 && p.GroundRestitution <= 1, "physics: ground_restitution must be in [0, 1]")
	check(p.WallRestitution >= 0 && p.WallRestitution <= 1, "physics: wall_restitution must be in [0, 1]")
	check(p.ContactRadius > 0, "physics: contact_radius must be positive")

	check(c.Decision.PursuitRadius >= 0, "decision: pursuit_radius must not be negative")
	check(c.Decision.PursuitHysteresis >= 0, "decision: pursuit_hysteresis must not be negative")
	check(c.Rules.HalfLength > 0, "rules: half_length must be positive")

	r := c.Roster
	check(r.TeamSize >= 2, "roster: team_size must be at least 2")
	check(len(r.HomeSpawns) == r.TeamSize, "roster: home_spawns has %d entries, team_size is %d", len(r.HomeSpawns), r.TeamSize)
	check(len(r.AwaySpawns) == r.TeamSize, "roster: away_spawns has %d entries, team_size is %d", len(r.AwaySpawns), r.TeamSize)
	check(r.ControlledIndex >= 0 && r.ControlledIndex < r.TeamSize,
		"roster: controlled_index %d out of range", r.ControlledIndex)
	check(r.SpeedMin > 0 && r.SpeedBand >= 0, "roster: speed_min must be positive and speed_band not negative")

	check(c.Input.Scale > 0, "input: scale must be positive")
	check(c.Input.DeadZone >= 0, "input: dead_zone must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
