// Package invaders implements Alien Attack: a satellite orbits a planet,
// shoots aliens before they reach it and collects stars for points.
// The simulation runs in a fixed 1280x720 world; Render scales it to the screen.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "invaders"

// Game owns every entity collection and runs the update rules.
type Game struct {
	cfg     config.InvadersConfig
	chart   *config.LevelChart
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player      Player
	planet      Planet
	projectiles []Projectile
	enemies     []Enemy
	stars       []Star

	phase      Phase
	level      int
	banked     int // Score from finished levels
	chartIndex int
	paused     bool
	finished   bool
	tickCount  int // Ticks since reset, drives animation
	songCount  int
}

// New creates a game using cfg. Call Reset before stepping.
func New(cfg config.InvadersConfig) *Game {
	return &Game{
		cfg:   cfg,
		chart: config.NewLevelChart(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Attack"
}

// Reset initializes the game at level 1 on the intro screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))

	center := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	g.player = NewPlayer(center, g.cfg.Player.ChargeRate)
	g.planet = NewPlanet(g.cfg.Planet)
	g.projectiles = nil
	g.enemies = nil
	g.stars = nil

	g.phase = PhaseIntro
	g.level = 1
	g.banked = 0
	g.chartIndex = 0
	g.paused = false
	g.finished = false
	g.tickCount = 0
	g.songCount = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	// The song keeps looping whatever the phase
	if g.tickCount == 0 && g.songCount == 0 {
		cues = append(cues, core.CueSong)
	}
	g.songCount++
	if g.cfg.Audio.SongFrames > 0 && g.songCount == g.cfg.Audio.SongFrames {
		g.songCount = 0
		cues = append(cues, core.CueSong)
	}
	g.tickCount++

	switch g.phase {
	case PhaseIntro, PhaseLevelIntro:
		if in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
		}
	case PhaseLost:
		if in.Has(core.ActionConfirm) {
			g.finished = true
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			cues = g.stepPlaying(in, cues)
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// stepPlaying runs one frame of the playing phase.
func (g *Game) stepPlaying(in core.InputFrame, cues []core.Cue) []core.Cue {
	if g.player.Score >= g.cfg.Levels.ScorePerLevel*g.level {
		g.levelUp()
		return cues
	}
	if g.planet.Life <= 0 {
		g.phase = PhaseLost
		g.paused = false
		g.planet.Destroy()
		return append(cues, core.CueLost)
	}

	cues = g.pollInput(in, cues)
	g.chartIndex = g.chart.Index(g.player.Score)
	cues = g.updatePlayer(cues)
	cues = g.updateEnemies(cues)

	if g.rng.Intn(100) < g.cfg.Stars.SpawnPercent && len(g.stars) < g.cfg.Stars.Max {
		g.stars = append(g.stars, NewStar(g.rng, g.cfg.World))
	}
	return cues
}

// levelUp clears the board and moves to the next level's intro screen.
func (g *Game) levelUp() {
	g.banked += g.player.Score
	g.level++
	g.player.LevelUp()
	g.enemies = nil
	g.projectiles = nil
	g.stars = nil
	g.planet.Restore()
	g.phase = PhaseLevelIntro
}

func (g *Game) pollInput(in core.InputFrame, cues []core.Cue) []core.Cue {
	if in.Has(core.ActionRotateLeft) {
		g.player.RotateLeft(g.cfg.Player.RotateStep)
	}
	if in.Has(core.ActionRotateRight) {
		g.player.RotateRight(g.cfg.Player.RotateStep)
	}
	if in.Has(core.ActionThrust) {
		g.player.Accelerate(g.cfg.Player.Thrust)
	}
	if in.Has(core.ActionFire) && g.player.Charged(g.cfg.Player.ChargeThreshold) {
		g.projectiles = append(g.projectiles, g.player.Shoot())
		cues = append(cues, core.CueFire)
	}
	return cues
}

func (g *Game) updatePlayer(cues []core.Cue) []core.Cue {
	g.planet.Spin(g.cfg.Planet.SpinPeriod)
	g.player.Recharge()
	g.player.Move(g.cfg.World)

	var collected int
	g.stars, collected = g.player.CollectStars(g.stars, g.cfg.Player)
	for i := 0; i < collected; i++ {
		cues = append(cues, core.CuePickup)
	}

	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Accelerate(g.cfg.Projectile.Thrust)
		p.Drift(g.cfg.World)
		if !p.Offscreen(g.cfg.World) {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
	return cues
}

func (g *Game) updateEnemies(cues []core.Cue) []core.Cue {
	accel := g.chart.Acceleration(g.chartIndex, g.level)
	for i := range g.enemies {
		g.enemies[i].Accelerate(accel)
		g.enemies[i].Move(g.cfg.World)
	}

	half := g.cfg.Enemy.HitHalfExtent

	// Aliens reaching the planet
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Hits(g.planet.Pos, half) {
			g.planet.Damage(g.cfg.Planet.Damage)
			cues = append(cues, core.CueExplosion)
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	// Aliens shot down; projectiles pass through and keep going
	for _, p := range g.projectiles {
		kept := g.enemies[:0]
		for _, e := range g.enemies {
			if e.Hits(p.Pos, half) {
				g.player.AwardKill(g.cfg.Player.KillPoints)
				cues = append(cues, core.CueExplosion)
				continue
			}
			kept = append(kept, e)
		}
		g.enemies = kept
	}

	roll := g.chart.SpawnRoll(g.chartIndex, g.level)
	if g.rng.Intn(roll) == 1 && len(g.enemies) < g.cfg.Enemy.CapPerLevel*g.level {
		o := Origin(g.rng.Intn(int(originCount)))
		g.enemies = append(g.enemies, NewEnemy(o, g.cfg.World))
	}
	return cues
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.player.Score,
		TotalScore: g.banked + g.player.Score,
		Level:      g.level,
		Life:       g.planet.Life,
		GameOver:   g.phase == PhaseLost,
		Paused:     g.paused,
		Finished:   g.finished,
	}
}
