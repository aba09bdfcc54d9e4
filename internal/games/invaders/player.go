package invaders

import (
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Player is the satellite the user steers.
type Player struct {
	Body
	Score      int
	Charge     int // Cannon readiness; fires at the configured threshold
	ChargeRate int // Charge gained per frame, grows by one each level
}

// NewPlayer places a player at pos with the given initial charge rate.
func NewPlayer(pos core.Vec2, chargeRate int) Player {
	return Player{
		Body:       Body{Pos: pos},
		ChargeRate: chargeRate,
	}
}

// Recharge adds one frame of charge to the cannon.
func (p *Player) Recharge() {
	p.Charge += p.ChargeRate
}

// Charged reports whether the cannon can fire.
func (p *Player) Charged(threshold int) bool {
	return p.Charge >= threshold
}

// Shoot empties the cannon and returns a projectile leaving the satellite.
func (p *Player) Shoot() Projectile {
	p.Charge = 0
	return NewProjectile(p.Pos, p.Angle)
}

// AwardKill scores a destroyed alien.
func (p *Player) AwardKill(points int) {
	p.Score += points
}

// LevelUp resets the score for the next level and speeds up the cannon.
func (p *Player) LevelUp() {
	p.Score = 0
	p.ChargeRate++
}

// CollectStars removes every star within reach and scores it.
// Returns the remaining stars and how many were collected.
func (p *Player) CollectStars(stars []Star, cfg config.PlayerConfig) ([]Star, int) {
	kept := stars[:0]
	collected := 0
	for _, s := range stars {
		if core.Distance(p.Pos, s.Pos) < cfg.PickupRadius {
			p.Score += cfg.StarPoints
			collected++
			continue
		}
		kept = append(kept, s)
	}
	return kept, collected
}
