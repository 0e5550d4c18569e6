package football

import (
	"math"
	"testing"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
)

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestDecide(t *testing.T) {
	cfg := config.DefaultMatchConfig().Decision
	hyst := cfg
	hyst.PursuitHysteresis = 3

	tests := []struct {
		name      string
		cfg       config.DecisionConfig
		player    Player
		ball      core.Vec3
		effort    float64
		pursuing  bool
		want      Intent
		wantSpeed core.Vec3
	}{
		{
			name:      "pursue nearby ball",
			cfg:       cfg,
			player:    Player{Team: TeamHome, Speed: 10},
			ball:      core.V3(3, 0.15, 4),
			effort:    1,
			want:      IntentPursue,
			wantSpeed: core.V3(4.2, 0, 5.6),
		},
		{
			name:      "ball exactly at radius is ignored",
			cfg:       cfg,
			player:    Player{Team: TeamHome, Speed: 10, Position: core.V3(0, 0, -10)},
			ball:      core.V3(0, 0.15, 5),
			effort:    1,
			want:      IntentIdle,
			wantSpeed: core.Vec3{},
		},
		{
			name:      "home player returns to home point",
			cfg:       cfg,
			player:    Player{Team: TeamHome, Speed: 10, Position: core.V3(0, 0, 10)},
			ball:      core.V3(0, 0.15, 29),
			effort:    1,
			want:      IntentReturn,
			wantSpeed: core.V3(0, 0, -3),
		},
		{
			name:      "away player returns to its own half",
			cfg:       cfg,
			player:    Player{Team: TeamAway, Speed: 10, Position: core.V3(0, 0, -10)},
			ball:      core.V3(0, 0.15, -29),
			effort:    1,
			want:      IntentReturn,
			wantSpeed: core.V3(0, 0, 3),
		},
		{
			name:      "idle near home point",
			cfg:       cfg,
			player:    Player{Team: TeamHome, Speed: 10, Position: core.V3(1, 0, -10)},
			ball:      core.V3(0, 0.15, 25),
			effort:    1,
			want:      IntentIdle,
			wantSpeed: core.Vec3{},
		},
		{
			name:      "effort scales pursuit",
			cfg:       cfg,
			player:    Player{Team: TeamAway, Speed: 10},
			ball:      core.V3(0, 0.15, 5),
			effort:    1.5,
			want:      IntentPursue,
			wantSpeed: core.V3(0, 0, 10.5),
		},
		{
			name:      "hysteresis keeps an active chase",
			cfg:       hyst,
			player:    Player{Team: TeamHome, Speed: 10},
			ball:      core.V3(0, 0.15, 16),
			effort:    1,
			pursuing:  true,
			want:      IntentPursue,
			wantSpeed: core.V3(0, 0, 7),
		},
		{
			name:      "hysteresis does not start a chase",
			cfg:       hyst,
			player:    Player{Team: TeamHome, Speed: 10},
			ball:      core.V3(0, 0.15, 16),
			effort:    1,
			want:      IntentReturn,
			wantSpeed: core.V3(0, 0, -3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.player, tc.ball, tc.cfg, tc.effort, tc.pursuing)
			if d.Intent != tc.want {
				t.Fatalf("Intent = %v, expected %v", d.Intent, tc.want)
			}
			if !vecNear(d.Velocity, tc.wantSpeed) {
				t.Errorf("Velocity = %+v, expected %+v", d.Velocity, tc.wantSpeed)
			}
		})
	}
}

func TestHomePoint(t *testing.T) {
	cfg := config.DefaultMatchConfig().Decision
	if got := HomePoint(TeamHome, cfg); got != core.V3(0, 0, -10) {
		t.Errorf("home point = %+v", got)
	}
	if got := HomePoint(TeamAway, cfg); got != core.V3(0, 0, 10) {
		t.Errorf("away point = %+v", got)
	}
}
