package ui

import (
	"testing"

	"quizo/internal/highscore"
	"quizo/internal/infra/localdir"
	"quizo/internal/profile"
	"quizo/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Deps{
		Session: session.New(nil),
		Scores:  highscore.NewMemoryStore(),
		Profile: profile.NewManager(localdir.New(t.TempDir()), nil),
	})
	t.Cleanup(m.Close)
	return m
}

func TestApplyQuestionEventResetsSelection(t *testing.T) {
	m := newTestModel(t)
	m.selected = 2
	m.locked = true

	m = m.applyEvent(session.Event{
		Kind:    session.EventQuestion,
		Index:   1,
		Total:   5,
		Text:    "Q",
		Answers: []string{"a", "b"},
		Seconds: 20,
		Score:   10,
	})
	if m.screen != screenQuiz {
		t.Fatalf("expected quiz screen, got %d", m.screen)
	}
	if m.locked || m.selected != -1 {
		t.Fatalf("expected unlocked fresh question, got locked=%v selected=%d", m.locked, m.selected)
	}
	if m.remaining != 20 || m.score != 10 {
		t.Fatalf("unexpected countdown/score: %d/%d", m.remaining, m.score)
	}
}

func TestApplyAnswerResultLocks(t *testing.T) {
	m := newTestModel(t)

	m = m.applyEvent(session.Event{Kind: session.EventAnswerResult, Correct: true, Score: 30})
	if !m.locked || m.score != 30 {
		t.Fatalf("expected locked with score 30, got locked=%v score=%d", m.locked, m.score)
	}
}

func TestApplyFinishedShowsResult(t *testing.T) {
	m := newTestModel(t)

	m = m.applyEvent(session.Event{Kind: session.EventFinished, Score: 80, TotalPoints: 100})
	if m.screen != screenResult {
		t.Fatalf("expected result screen, got %d", m.screen)
	}
	if m.final.Score != 80 || m.final.TotalPoints != 100 {
		t.Fatalf("unexpected final score: %+v", m.final)
	}
}

func TestApplyLoadFailedReturnsToSetup(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenQuiz
	m.loading = true

	m = m.applyEvent(session.Event{Kind: session.EventLoadFailed, Reason: "no questions returned"})
	if m.screen != screenSetup || m.loading || m.loadErr == "" {
		t.Fatalf("expected setup screen with retry message, got %+v", m.screen)
	}
}
