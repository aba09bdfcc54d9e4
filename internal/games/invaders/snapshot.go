package invaders

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick        int
	Phase       Phase
	Level       int
	Score       int
	TotalScore  int
	Life        int
	Charge      int
	ChargeRate  int
	PlayerX     float64
	PlayerY     float64
	PlayerAngle float64
	Enemies     int
	Projectiles int
	Stars       int
	ChartIndex  int
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tickCount,
		Phase:       g.phase,
		Level:       g.level,
		Score:       g.player.Score,
		TotalScore:  g.banked + g.player.Score,
		Life:        g.planet.Life,
		Charge:      g.player.Charge,
		ChargeRate:  g.player.ChargeRate,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		PlayerAngle: g.player.Angle,
		Enemies:     len(g.enemies),
		Projectiles: len(g.projectiles),
		Stars:       len(g.stars),
		ChartIndex:  g.chartIndex,
		Paused:      g.paused,
	}
}

// keyvals flattens the snapshot for structured logging.
func (s Snapshot) keyvals() []any {
	return []any{
		"tick", s.Tick,
		"level", s.Level,
		"score", s.Score,
		"total", s.TotalScore,
		"life", s.Life,
		"charge_rate", s.ChargeRate,
		"enemies", s.Enemies,
		"projectiles", s.Projectiles,
		"stars", s.Stars,
		"chart_row", s.ChartIndex,
	}
}

// PhaseName names the current loop phase.
func (g *Game) PhaseName() string {
	return g.Phase().String()
}

// Keyvals describes the game for the debug log.
func (g *Game) Keyvals() []any {
	return g.Snapshot().keyvals()
}
