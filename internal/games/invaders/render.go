package invaders

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// Visual characters for rendering
const (
	ProjectileChar = '•'
	EnemyChar      = 'Ж'
	SpaceDustChar  = '.'
)

// Player glyphs indexed by heading octant, starting at "up" and turning clockwise.
var playerGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Star glyphs cycle with the star animation frame.
var starGlyphs = []rune{'·', '+', '*', '+'}

// Planet sprites; spaces are transparent.
var (
	planetSprites = [2][3]string{
		{" .-. ", "(@ o)", " '-' "},
		{" .-. ", "(o @)", " '-' "},
	}
	planetDestroyedSprite = [3]string{" .x. ", "x # x", " 'x' "}
)

// Intro screen lines with their world y coordinate.
var introLines = []struct {
	y    float64
	text string
}{
	{200, "Welcome to Alien Attack!"},
	{300, "Protect the planet from the invading aliens."},
	{350, "Collect stars and destroy aliens to get points."},
	{400, "The aliens will get faster and more numerous the longer you can protect the planet. Good luck."},
	{450, "Use the left and right arrow keys to rotate, and the up arrow key to accelerate. Spacebar shoots projectiles."},
	{500, "Press ENTER to continue..."},
}

// Render draws the current game state to the screen.
// Layers, back to front: space dust, stars, entities, UI text.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	g.drawBackground(dst)

	frame := StarFrame(g.elapsedMillis(), g.cfg.Stars)
	glyph := starGlyphs[frame%len(starGlyphs)]
	for _, s := range g.stars {
		x, y := g.toCell(dst, s.Pos)
		dst.SetColored(x, y, glyph, core.ColorGold)
	}

	px, py := g.toCell(dst, g.player.Pos)
	dst.SetColored(px, py, PlayerGlyph(g.player.Angle), core.ColorBrightWhite)

	g.drawPlanet(dst)

	for _, p := range g.projectiles {
		x, y := g.toCell(dst, p.Pos)
		dst.SetColored(x, y, ProjectileChar, core.ColorOrange)
	}
	for _, e := range g.enemies {
		x, y := g.toCell(dst, e.Pos)
		dst.SetColored(x, y, EnemyChar, core.ColorBrightGreen)
	}

	g.drawUI(dst)
}

// PlayerGlyph picks the arrow closest to the heading.
func PlayerGlyph(angle float64) rune {
	idx := int(core.NormalizeAngle(angle+22.5)/45) % len(playerGlyphs)
	return playerGlyphs[idx]
}

// toCell maps a world position to a screen cell.
func (g *Game) toCell(dst *core.Screen, p core.Vec2) (int, int) {
	w, h := dst.Width(), dst.Height()
	x := int(p.X * float64(w) / g.cfg.World.Width)
	y := int(p.Y * float64(h) / g.cfg.World.Height)
	return core.Clamp(x, 0, w-1), core.Clamp(y, 0, h-1)
}

// worldRow maps a world y coordinate to a screen row.
func (g *Game) worldRow(dst *core.Screen, y float64) int {
	return core.Clamp(int(y*float64(dst.Height())/g.cfg.World.Height), 0, dst.Height()-1)
}

func (g *Game) elapsedMillis() int64 {
	return int64(g.tickCount) * 1000 / int64(max(g.runtime.TickRate, 1))
}

// drawBackground scatters fixed dust so the field does not look empty.
func (g *Game) drawBackground(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7919+y*104729)%97 == 0 {
				dst.SetColored(x, y, SpaceDustChar, core.ColorDimGray)
			}
		}
	}
}

func (g *Game) drawPlanet(dst *core.Screen) {
	sprite := planetSprites[g.planet.Frame()%2]
	color := core.ColorBrightCyan
	if g.planet.Destroyed {
		sprite = planetDestroyedSprite
		color = core.ColorBrightRed
	}

	cx, cy := g.toCell(dst, g.planet.Pos)
	for dy, line := range sprite {
		i := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(cx-2+i, cy-1+dy, r, color)
			}
			i++
		}
	}
}

func (g *Game) drawUI(dst *core.Screen) {
	switch g.phase {
	case PhasePlaying:
		hud := fmt.Sprintf("-Level %d-   Score: %d   Planet Health: %d / %d",
			g.level, g.player.Score, g.planet.Life, g.planet.MaxLife)
		dst.DrawText(1, 0, hud, core.ColorYellow)

		meter := chargeMeter(g.player.Charge, g.cfg.Player.ChargeThreshold, 10)
		dst.DrawText(dst.Width()-utf8.RuneCountInString(meter)-1, 0, meter, core.ColorYellow)

		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}

	case PhaseIntro:
		for _, line := range introLines {
			dst.DrawTextCentered(g.worldRow(dst, line.y), line.text, core.ColorYellow)
		}

	case PhaseLevelIntro:
		dst.DrawTextCentered(g.worldRow(dst, 300), fmt.Sprintf("Welcome to level %d!", g.level), core.ColorYellow)
		dst.DrawTextCentered(g.worldRow(dst, 400), "Press ENTER to continue...", core.ColorYellow)

	case PhaseLost:
		dst.DrawTextCentered(g.worldRow(dst, 300), "Earth is destroyed!! You Lose...", core.ColorYellow)
		dst.DrawTextCentered(g.worldRow(dst, 400), fmt.Sprintf("You made it to level %d.", g.level), core.ColorYellow)
		dst.DrawTextCentered(g.worldRow(dst, 450), "Press ESCAPE to end the game...", core.ColorYellow)
	}
}

// chargeMeter renders cannon readiness as a bar of the given width.
func chargeMeter(charge, threshold, width int) string {
	filled := width
	if threshold > 0 && charge < threshold {
		filled = charge * width / threshold
	}
	return "Cannon [" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
