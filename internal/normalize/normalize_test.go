package normalize_test

import (
	"math/rand"
	"testing"

	"quizo/internal/domain"
	"quizo/internal/normalize"
)

func newDeterministic() *normalize.Normalizer {
	return normalize.New(rand.New(rand.NewSource(1)))
}

func TestAliasPriority(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"question":  "primary",
		"prompt":    "secondary",
		"correct":   "right",
		"answer":    "ignored",
		"incorrect": []any{"a", "b", "c"},
		"options":   []any{"ignored"},
	})
	if q.Text != "primary" {
		t.Fatalf("expected question alias to win, got %q", q.Text)
	}
	if q.CorrectAnswer != "right" {
		t.Fatalf("expected correct alias to win, got %q", q.CorrectAnswer)
	}
	if len(q.Answers) != 4 {
		t.Fatalf("expected 4 answers, got %v", q.Answers)
	}
}

func TestEntityDecoding(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"question":          "What does &quot;HTML&quot; stand for?",
		"correct_answer":    "Ben &amp; Jerry",
		"incorrect_answers": []any{"Tom &amp; Jerry", "x", "y"},
	})
	if q.Text != `What does "HTML" stand for?` {
		t.Fatalf("prompt not decoded: %q", q.Text)
	}
	if q.CorrectAnswer != "Ben & Jerry" {
		t.Fatalf("correct answer not decoded: %q", q.CorrectAnswer)
	}
	for _, a := range q.Answers {
		if a == "Tom &amp; Jerry" {
			t.Fatalf("incorrect answer not decoded: %v", q.Answers)
		}
	}
}

func TestBooleanByTag(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"type":              "boolean",
		"question":          "The sky is blue.",
		"correct_answer":    "Vrai",
		"incorrect_answers": []any{"Faux"},
	})
	if q.Kind != domain.KindBoolean {
		t.Fatalf("expected boolean kind, got %q", q.Kind)
	}
	if len(q.Answers) != 2 || q.Answers[0] != "True" || q.Answers[1] != "False" {
		t.Fatalf("expected fixed True/False pair, got %v", q.Answers)
	}
}

func TestBooleanByTwoOptions(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"question": "2+2=4?",
		"answer":   "True",
		"options":  []any{"True", "False"},
	})
	if q.Kind != domain.KindBoolean {
		t.Fatalf("expected boolean kind, got %q", q.Kind)
	}
	if len(q.Answers) != 2 || q.Answers[0] != "True" || q.Answers[1] != "False" {
		t.Fatalf("expected fixed True/False pair, got %v", q.Answers)
	}
}

func TestMultipleChoiceMultiset(t *testing.T) {
	n := newDeterministic()
	incorrect := []any{"Mars", "Venus", "Pluto"}

	q := n.Normalize(domain.RawQuestion{
		"question":          "Closest planet to the sun?",
		"correct_answer":    "Mercury",
		"incorrect_answers": incorrect,
	})
	if q.Kind != domain.KindMultiple {
		t.Fatalf("expected multiple kind, got %q", q.Kind)
	}
	if len(q.Answers) != 4 {
		t.Fatalf("expected 4 answers, got %v", q.Answers)
	}
	counts := make(map[string]int)
	for _, a := range q.Answers {
		counts[a]++
	}
	if counts["Mercury"] != 1 {
		t.Fatalf("correct answer must appear exactly once, got %v", q.Answers)
	}
	for _, raw := range incorrect {
		if counts[raw.(string)] != 1 {
			t.Fatalf("missing incorrect answer %v in %v", raw, q.Answers)
		}
	}
}

func TestMissingFieldsDefaultEmpty(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{})
	if q.Text != "" || q.CorrectAnswer != "" {
		t.Fatalf("expected empty defaults, got %+v", q)
	}
	if q.Kind != domain.KindMultiple {
		t.Fatalf("expected multiple kind for empty record, got %q", q.Kind)
	}
}

func TestZeroIncorrectAnswersTolerated(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"question":       "Only one way to answer this.",
		"correct_answer": "Yes",
	})
	if q.Kind != domain.KindMultiple {
		t.Fatalf("expected multiple kind, got %q", q.Kind)
	}
	if len(q.Answers) != 1 || q.Answers[0] != "Yes" {
		t.Fatalf("expected single-answer question, got %v", q.Answers)
	}
}

func TestNonStringOptionEntriesCoerced(t *testing.T) {
	n := newDeterministic()

	q := n.Normalize(domain.RawQuestion{
		"question":          "Pick a number",
		"correct_answer":    "7",
		"incorrect_answers": []any{float64(1), float64(2), "3"},
	})
	if len(q.Answers) != 4 {
		t.Fatalf("expected coerced numeric options, got %v", q.Answers)
	}
}
