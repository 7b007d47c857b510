package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/breakout"
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, cfg config.BreakoutConfig, store *storage.Store) Model {
	t.Helper()

	m := NewModel(Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     42,
		},
		Store:    store,
		ShotsDir: t.TempDir(),
	})
	m.now = func() time.Time { return testStart }
	return m
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

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig(), nil)

	if m.Phase() != breakout.PhaseMenu {
		t.Errorf("Phase() = %v, expected menu", m.Phase())
	}
	if m.bounds != (core.Bounds{W: 800, H: 600}) {
		t.Errorf("bounds = %+v, expected 800x600", m.bounds)
	}
	if !strings.Contains(m.View(), MenuText) {
		t.Error("menu view should show the start prompt")
	}
}

func TestModelConfirmStartsRound(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig(), nil)

	m, _ = update(t, m, TickMsg(testStart))
	if m.Phase() != breakout.PhaseMenu {
		t.Fatalf("Phase() = %v before confirm, expected menu", m.Phase())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(testStart.Add(time.Second/60)))

	if m.Phase() != breakout.PhasePlaying {
		t.Fatalf("Phase() = %v after confirm, expected playing", m.Phase())
	}
	if m.runID == "" {
		t.Error("a new round should get a run id")
	}
	if m.confirm {
		t.Error("confirm should be consumed by the tick")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig(), nil)

	m, _ = update(t, m, TickMsg(testStart))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(testStart.Add(10*time.Millisecond)))

	before := m.game.Snapshot().Player.X
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(testStart.Add(60*time.Millisecond)))

	if after := m.game.Snapshot().Player.X; after >= before {
		t.Errorf("Player.X = %v after holding left, expected less than %v", after, before)
	}
}

func TestModelSavesScoreOnDeath(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	cfg.Player.BottomOffset = -1000 // Paddle below the playfield

	m := newTestModel(t, cfg, store)
	m, _ = update(t, m, TickMsg(testStart))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(testStart))

	now := testStart
	for i := 0; i < 10 && m.Phase() == breakout.PhasePlaying; i++ {
		now = now.Add(time.Second)
		m, _ = update(t, m, TickMsg(now))
	}

	if m.Phase() != breakout.PhaseDead {
		t.Fatalf("Phase() = %v, expected dead", m.Phase())
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("len(scores) = %d, expected 1", len(scores))
	}
	if scores[0].Outcome != storage.OutcomeDead {
		t.Errorf("Outcome = %q, expected %q", scores[0].Outcome, storage.OutcomeDead)
	}
	if scores[0].RunID != m.runID {
		t.Errorf("RunID = %q, expected %q", scores[0].RunID, m.runID)
	}
	if !strings.Contains(m.View(), "you lost.") {
		t.Error("dead view should show the result")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, config.DefaultBreakoutConfig(), nil)
			m, cmd := update(t, m, tc.msg)

			if cmd == nil {
				t.Fatal("quit key should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key should return tea.Quit")
			}
			if m.View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.bounds != (core.Bounds{W: 1000, H: 750}) {
		t.Errorf("bounds = %+v, expected 1000x750", m.bounds)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestScoreRows(t *testing.T) {
	created := time.Date(2026, 3, 4, 15, 6, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{RunID: "0123456789abcdef", Score: 120, Outcome: storage.OutcomeCleared, CreatedAt: created},
		{RunID: "short", Score: 30, Outcome: storage.OutcomeDead, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, expected 2", len(rows))
	}

	expected := []string{"#1", "120", "cleared", "Mar 04 15:06", "01234567"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "short" {
		t.Errorf("rows[1] = %v, expected rank #2 and full short run id", rows[1])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "Score database unavailable.") {
		t.Error("scoreboard without a store should say so")
	}
}
