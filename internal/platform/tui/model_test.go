package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/games/invaders"
	"github.com/vovakirdan/alien-attack/internal/storage"
)

// scriptedGame replays a fixed list of step results and records its inputs.
type scriptedGame struct {
	resets  int
	inputs  []core.InputFrame
	results []core.StepResult
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, core.NewInputFrame(actionsOf(in)...))
	if len(g.results) == 0 {
		return core.StepResult{State: core.GameState{Level: 1}}
	}
	i := min(len(g.inputs)-1, len(g.results)-1)
	return g.results[i]
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted", core.ColorDefault) }

func (g *scriptedGame) State() core.GameState { return core.GameState{} }

func actionsOf(in core.InputFrame) []core.Action {
	var out []core.Action
	for a, on := range in.Actions {
		if on {
			out = append(out, a)
		}
	}
	return out
}

// cueRecorder collects every cue played.
type cueRecorder struct {
	played []core.Cue
}

func (r *cueRecorder) Play(cues ...core.Cue) {
	r.played = append(r.played, cues...)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelHeldAndOneShotInput(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(game.inputs))
	}
	first, second := game.inputs[0], game.inputs[1]
	if !first.Has(core.ActionRotateLeft) || !first.Has(core.ActionPause) {
		t.Errorf("first tick input = %v, expected rotate and pause", first.Actions)
	}
	if !second.Has(core.ActionRotateLeft) {
		t.Error("rotation should stay held on the second tick")
	}
	if second.Has(core.ActionPause) {
		t.Error("pause should only reach one tick")
	}
}

func TestModelPlaysCues(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Level: 1}, Cues: []core.Cue{core.CueSong, core.CueFire}},
		{State: core.GameState{Level: 1}},
	}}
	sounds := &cueRecorder{}
	m := NewModel(game, nil, sounds, nil, testConfig())
	m.Init()

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(sounds.played) != 2 || sounds.played[0] != core.CueSong || sounds.played[1] != core.CueFire {
		t.Errorf("played %v, expected [song fire]", sounds.played)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	over := core.StepResult{State: core.GameState{TotalScore: 6200, Level: 2, GameOver: true}}
	game := &scriptedGame{results: []core.StepResult{over}}
	m := NewModel(game, store, nil, nil, testConfig())
	m.Init()

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 6200 || scores[0].Level != 2 {
		t.Errorf("saved %d/L%d, expected 6200/L2", scores[0].Score, scores[0].Level)
	}
	if m.savedID != scores[0].ID {
		t.Errorf("savedID = %d, expected %d", m.savedID, scores[0].ID)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{results: []core.StepResult{{State: core.GameState{Level: 1, GameOver: true}}}}
	m := NewModel(game, store, nil, nil, testConfig())
	m.Init()
	update(t, m, TickMsg{})

	if high, _ := store.HighScore("scripted"); high != 0 {
		t.Errorf("empty run should not be saved, high score is %d", high)
	}
}

func TestModelQuitsWhenFinished(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{{State: core.GameState{Level: 1, GameOver: true, Finished: true}}}}
	m := NewModel(game, nil, nil, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("finished game should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit the program")
	}
	if len(game.inputs) != 0 {
		t.Error("quitting should not step the game")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("game reset %d times, resizing should not reset it", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBlurReleasesKeys(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.BlurMsg{})
	update(t, m, TickMsg{})

	if game.inputs[0].Has(core.ActionThrust) {
		t.Error("losing focus should release held keys")
	}
}

func TestModelRunsInvaders(t *testing.T) {
	game := invaders.New(config.DefaultInvadersConfig())
	sounds := &cueRecorder{}
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	m := NewModel(game, nil, sounds, logger, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
		m, _ = update(t, m, TickMsg{})
	}

	if game.Phase() != invaders.PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", game.Phase())
	}
	if snap := game.Snapshot(); snap.PlayerY >= 360 {
		t.Errorf("thrusting should move the satellite up, y = %v", snap.PlayerY)
	}
	if !strings.Contains(logs.String(), "phase playing") {
		t.Errorf("phase change not logged:\n%s", logs.String())
	}
	if len(sounds.played) == 0 || sounds.played[0] != core.CueSong {
		t.Errorf("first cue should start the song, got %v", sounds.played)
	}
	if m.View() == "" {
		t.Error("View() should render the game")
	}
}
