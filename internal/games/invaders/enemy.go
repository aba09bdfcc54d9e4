package invaders

import (
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Origin is the edge or corner an alien enters from.
type Origin int

const (
	OriginLeft Origin = iota
	OriginRight
	OriginTop
	OriginBottom
	OriginTopLeft
	OriginTopRight
	OriginBottomLeft
	OriginBottomRight
	originCount
)

// origin is a spawn point as a fraction of the world size plus a heading.
type origin struct {
	fx, fy float64
	angle  float64
}

var origins = [originCount]origin{
	OriginLeft:        {0, 0.5, 90},
	OriginRight:       {1, 0.5, 270},
	OriginTop:         {0.5, 0, 180},
	OriginBottom:      {0.5, 1, 0},
	OriginTopLeft:     {0, 0, 120},
	OriginTopRight:    {1, 0, 240},
	OriginBottomLeft:  {0, 1, 60},
	OriginBottomRight: {1, 1, 300},
}

func (o Origin) String() string {
	switch o {
	case OriginLeft:
		return "left"
	case OriginRight:
		return "right"
	case OriginTop:
		return "top"
	case OriginBottom:
		return "bottom"
	case OriginTopLeft:
		return "topl"
	case OriginTopRight:
		return "topr"
	case OriginBottomLeft:
		return "botl"
	case OriginBottomRight:
		return "botr"
	default:
		return "unknown"
	}
}

// Enemy is an alien heading for the planet.
type Enemy struct {
	Body
	From Origin
}

// NewEnemy spawns an alien at the given origin, at rest and facing inward.
func NewEnemy(o Origin, w config.WorldConfig) Enemy {
	at := origins[OriginLeft]
	if o >= 0 && o < originCount {
		at = origins[o]
	}
	return Enemy{
		Body: Body{
			Pos:   core.Vec2{X: at.fx * w.Width, Y: at.fy * w.Height},
			Angle: at.angle,
		},
		From: o,
	}
}

// Hits reports whether the point lies within the alien's hit box.
func (e Enemy) Hits(p core.Vec2, halfExtent float64) bool {
	return core.WithinBox(e.Pos, p, halfExtent)
}
