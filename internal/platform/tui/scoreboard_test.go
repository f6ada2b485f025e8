package tui

import (
	"strings"
	"testing"
)

// scoreboardOnScripted opens a scoreboard for player with its tab on the
// scripted mode.
func scoreboardOnScripted(t *testing.T, player string) ScoreboardModel {
	t.Helper()
	store := openTestStore(t)
	store.SaveRun("scripted", "alice", 90)
	store.SaveRun("scripted", "bob", 300)
	store.SaveRun("scripted", "alice", 40)

	sb := NewScoreboardModel(store, player, 100, 30)
	for i, g := range sb.modes {
		if g.ID == "scripted" {
			sb.modeCursor = i
		}
	}
	sb.loadRuns(sb.currentModeID())
	return sb
}

func TestScoreboardMarksViewerRuns(t *testing.T) {
	sb := scoreboardOnScripted(t, "alice")

	if len(sb.runs) != 3 || sb.runs[0].Player != "bob" {
		t.Fatalf("expected every run with bob first, got %+v", sb.runs)
	}
	if got := sb.playerLabel("alice"); got != "alice *" {
		t.Errorf("viewer label = %q, expected %q", got, "alice *")
	}
	if got := sb.playerLabel("bob"); got != "bob" {
		t.Errorf("other label = %q, expected %q", got, "bob")
	}
	if line := sb.statsLine(); !strings.Contains(line, "You (alice): 90") {
		t.Errorf("stats line should include the viewer's best: %q", line)
	}
}

func TestScoreboardMineToggle(t *testing.T) {
	sb := scoreboardOnScripted(t, "alice")

	model, _ := sb.Update(runeKey('m'))
	sb = model.(ScoreboardModel)

	if !sb.mineOnly {
		t.Fatal("m should switch to the viewer's runs")
	}
	if len(sb.runs) != 2 {
		t.Fatalf("expected alice's two runs, got %+v", sb.runs)
	}
	for _, r := range sb.runs {
		if r.Player != "alice" {
			t.Errorf("unexpected run by %s", r.Player)
		}
	}
	if view := sb.View(); !strings.Contains(view, "YOUR RUNS") {
		t.Errorf("title should say YOUR RUNS:\n%s", view)
	}

	model, _ = sb.Update(runeKey('m'))
	if sb = model.(ScoreboardModel); sb.mineOnly || len(sb.runs) != 3 {
		t.Errorf("second m should show everyone again, got %d runs", len(sb.runs))
	}
}

func TestScoreboardWithoutRunsByViewer(t *testing.T) {
	sb := scoreboardOnScripted(t, "carol")
	if line := sb.statsLine(); strings.Contains(line, "You") {
		t.Errorf("viewer without runs should not get a best: %q", line)
	}

	model, _ := sb.Update(runeKey('m'))
	sb = model.(ScoreboardModel)
	if view := sb.View(); !strings.Contains(view, "No runs by carol yet.") {
		t.Errorf("empty view should name the viewer:\n%s", view)
	}
}
