package football

import "github.com/vovakirdan/kickoff/internal/config"

// Field is the immutable pitch geometry. Origin is the centre spot; X spans
// the width and Z spans the length.
type Field struct {
	Width            float64
	Length           float64
	GoalWidth        float64
	GoalHeight       float64
	PenaltyBoxWidth  float64
	PenaltyBoxLength float64
}

// FieldFrom builds the geometry from configuration.
func FieldFrom(cfg config.FieldConfig) Field {
	return Field{
		Width:            cfg.Width,
		Length:           cfg.Length,
		GoalWidth:        cfg.GoalWidth,
		GoalHeight:       cfg.GoalHeight,
		PenaltyBoxWidth:  cfg.PenaltyBoxWidth,
		PenaltyBoxLength: cfg.PenaltyBoxLength,
	}
}

// HalfWidth is the distance from the centre line to a touchline.
func (f Field) HalfWidth() float64 {
	return f.Width / 2
}

// HalfLength is the distance from the centre spot to a goal line.
func (f Field) HalfLength() float64 {
	return f.Length / 2
}
