package config

// LevelChart selects enemy spawn rate and speed from the current score.
// Rows are ordered by threshold; the active row is the last one whose
// threshold the score has reached, or the first row below every threshold.
type LevelChart struct {
	rows        []ChartRow
	progressive bool
	minRoll     int
}

// NewLevelChart creates a chart from validated configuration.
func NewLevelChart(cfg InvadersConfig) *LevelChart {
	rows := make([]ChartRow, len(cfg.Levels.Chart))
	copy(rows, cfg.Levels.Chart)
	if len(rows) == 0 {
		rows = DefaultInvadersConfig().Levels.Chart
	}
	return &LevelChart{
		rows:        rows,
		progressive: cfg.Levels.Progressive,
		minRoll:     max(cfg.Enemy.MinSpawnRoll, 1),
	}
}

// Rows returns a copy of the chart rows.
func (c *LevelChart) Rows() []ChartRow {
	out := make([]ChartRow, len(c.rows))
	copy(out, c.rows)
	return out
}

// Index returns the index of the active row for score.
func (c *LevelChart) Index(score int) int {
	if !c.progressive {
		return 0
	}
	idx := 0
	for i, row := range c.rows {
		if score >= row.Threshold {
			idx = i
		}
	}
	return idx
}

// Row returns the active row for score.
func (c *LevelChart) Row(score int) ChartRow {
	return c.rows[c.Index(score)]
}

// SpawnRoll returns N for the per-frame 1-in-N enemy spawn roll using row idx.
// Higher levels shrink N; it never drops below the configured minimum.
func (c *LevelChart) SpawnRoll(idx, level int) int {
	n := c.at(idx).SpawnChance / max(level, 1)
	return max(n, c.minRoll)
}

// Acceleration returns the per-frame enemy acceleration for row idx and level.
func (c *LevelChart) Acceleration(idx, level int) float64 {
	return c.at(idx).Acceleration * float64(max(level, 1))
}

func (c *LevelChart) at(idx int) ChartRow {
	return c.rows[max(min(idx, len(c.rows)-1), 0)]
}
