package football

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kickoff/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = 'o'
	BallHighChar  = 'O' // Ball above head height
	CentreChar    = '•'
	HalfwayChar   = '─'
	GoalChar      = '═'
	PenaltyHChar  = '┄'
	PenaltyVChar  = '┆'
)

const (
	ballHighY     = 1.0 // Ball drawn as airborne above this height
	minPitchCells = 6
)

// pitchView maps pitch coordinates onto a screen rectangle. The -Z end is
// drawn at the top so "up" on the controls moves a player up the screen.
type pitchView struct {
	rect  core.Rect
	field Field
}

func (v pitchView) innerW() int { return v.rect.W - 2 }
func (v pitchView) innerH() int { return v.rect.H - 2 }

func (v pitchView) col(x float64) int {
	f := core.ClampF((x+v.field.HalfWidth())/v.field.Width, 0, 1)
	return v.rect.X + 1 + int(math.Round(f*float64(v.innerW()-1)))
}

func (v pitchView) row(z float64) int {
	f := core.ClampF((z+v.field.HalfLength())/v.field.Length, 0, 1)
	return v.rect.Y + 1 + int(math.Round(f*float64(v.innerH()-1)))
}

func (v pitchView) cell(p core.Vec3) (int, int) {
	return v.col(p.X), v.row(p.Z)
}

// Render draws the HUD on the top row and the pitch below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.match.Snapshot()

	g.drawHUD(dst, snap)

	view := pitchView{
		rect:  core.NewRect(0, 1, dst.Width(), dst.Height()-1),
		field: snap.Field,
	}
	if view.innerW() < minPitchCells || view.innerH() < minPitchCells {
		dst.DrawTextCentered(dst.Height()/2, "window too small")
		return
	}
	drawPitch(dst, view)

	for _, p := range snap.Players {
		x, y := view.cell(p.Position)
		color := core.ColorBlue
		if p.Team == TeamAway {
			color = core.ColorRed
		}
		if p.Controlled {
			color = core.ColorYellow
		}
		dst.SetColored(x, y, rune('0'+p.Number%10), color)
	}

	ch := BallChar
	if snap.Ball.Position.Y > ballHighY {
		ch = BallHighChar
	}
	bx, by := view.cell(snap.Ball.Position)
	dst.SetColored(bx, by, ch, core.ColorBrightWhite)

	switch {
	case snap.State.GameOver():
		home, away := snap.State.ScoreFor(TeamHome), snap.State.ScoreFor(TeamAway)
		g.drawCenteredMessage(dst, "FULL TIME", fmt.Sprintf("HOME %d - %d AWAY  |  Press R to restart", home, away))
	case snap.State.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.goalBanner > 0:
		who := "HOME"
		if g.lastGoal == GoalAway {
			who = "AWAY"
		}
		g.drawCenteredMessage(dst, "GOAL!", who+" scores")
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	s := snap.State
	score := fmt.Sprintf("HOME %d - %d AWAY", s.ScoreFor(TeamHome), s.ScoreFor(TeamAway))
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	var period string
	switch {
	case g.mode == ModeTraining:
		period = "TRAINING"
	case s.Phase == PhaseFirstHalf:
		period = "1ST HALF"
	case s.Phase == PhaseSecondHalf:
		period = "2ND HALF"
	default:
		period = "FULL TIME"
	}
	right := fmt.Sprintf("%s  %s", period, snap.Clock())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorBrightWhite)

	if s.Possession == TeamAway {
		dst.DrawTextCentered(0, "ball: away")
	} else {
		dst.DrawTextCentered(0, "ball: home")
	}
}

func drawPitch(dst *core.Screen, v pitchView) {
	dst.DrawBox(v.rect, core.ColorGreen)

	mid := v.row(0)
	dst.DrawHLine(v.rect.X+1, mid, v.innerW(), HalfwayChar, core.ColorGreen)
	cx := v.col(0)
	dst.SetColored(cx, mid, CentreChar, core.ColorBrightGreen)

	f := v.field
	gl, gr := v.col(-f.GoalWidth/2), v.col(f.GoalWidth/2)
	top, bottom := v.rect.Y, v.rect.Bottom()-1
	dst.DrawHLine(gl, top, gr-gl+1, GoalChar, core.ColorBrightWhite)
	dst.DrawHLine(gl, bottom, gr-gl+1, GoalChar, core.ColorBrightWhite)

	pl, pr := v.col(-f.PenaltyBoxWidth/2), v.col(f.PenaltyBoxWidth/2)
	hl := f.HalfLength()
	nearEdge := v.row(-hl + f.PenaltyBoxLength)
	farEdge := v.row(hl - f.PenaltyBoxLength)
	drawPenaltyBox(dst, pl, pr, top+1, nearEdge, nearEdge)
	drawPenaltyBox(dst, pl, pr, farEdge, bottom-1, farEdge)
}

// drawPenaltyBox outlines the box between rows y0 and y1 with its front
// edge on row edge. The goal-line side is the pitch border.
func drawPenaltyBox(dst *core.Screen, x0, x1, y0, y1, edge int) {
	if y1 < y0 {
		return
	}
	dst.DrawVLine(x0, y0, y1-y0+1, PenaltyVChar, core.ColorGray)
	dst.DrawVLine(x1, y0, y1-y0+1, PenaltyVChar, core.ColorGray)
	dst.DrawHLine(x0, edge, x1-x0+1, PenaltyHChar, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp(cx-boxW/2, 0, core.Max(dst.Width()-boxW, 0))
	boxY := core.Clamp(cy-boxH/2, 0, core.Max(dst.Height()-boxH, 0))

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
