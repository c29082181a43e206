package normalize

import (
	"fmt"
	"html"
	"math/rand"
	"time"

	"quizo/internal/domain"
)

// Field aliases consulted in priority order when resolving a raw record.
var (
	promptAliases    = []string{"question", "prompt", "text"}
	correctAliases   = []string{"correct_answer", "correct", "answer"}
	incorrectAliases = []string{"incorrect_answers", "incorrect", "options"}
)

// booleanAnswers is the fixed choice pair for true/false questions.
var booleanAnswers = []string{"True", "False"}

// Normalizer converts heterogeneous upstream question records into
// canonical Questions. Answer order for multiple-choice questions comes
// from the injected random source.
type Normalizer struct {
	rnd *rand.Rand
}

// New builds a normalizer; a nil rnd falls back to a time-seeded source.
func New(rnd *rand.Rand) *Normalizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Normalizer{rnd: rnd}
}

// Normalize maps a raw record onto a Question. It is total: missing or
// oddly shaped fields resolve to empty values, never an error.
func (n *Normalizer) Normalize(raw domain.RawQuestion) domain.Question {
	text := html.UnescapeString(firstString(raw, promptAliases))
	correct := html.UnescapeString(firstString(raw, correctAliases))

	incorrect := firstSlice(raw, incorrectAliases)
	for i, v := range incorrect {
		incorrect[i] = html.UnescapeString(v)
	}

	kind := domain.KindMultiple
	if tag, _ := raw["type"].(string); tag == string(domain.KindBoolean) {
		kind = domain.KindBoolean
	} else if combinedAnswerCount(correct, incorrect) == 2 {
		kind = domain.KindBoolean
	}

	var answers []string
	if kind == domain.KindBoolean {
		answers = append([]string(nil), booleanAnswers...)
	} else {
		answers = make([]string, 0, len(incorrect)+1)
		answers = append(answers, correct)
		for _, answer := range incorrect {
			// keep the genuine occurrence of the correct answer unique
			if answer != correct {
				answers = append(answers, answer)
			}
		}
		n.rnd.Shuffle(len(answers), func(i, j int) {
			answers[i], answers[j] = answers[j], answers[i]
		})
	}

	category, _ := raw["category"].(string)
	difficulty, _ := raw["difficulty"].(string)

	return domain.Question{
		Text:          text,
		CorrectAnswer: correct,
		Answers:       answers,
		Kind:          kind,
		Category:      category,
		Difficulty:    difficulty,
	}
}

// combinedAnswerCount counts the distinct members of {correct} ∪ incorrect.
// Some sources list the correct answer inside the options field, so the
// union is deduplicated before counting.
func combinedAnswerCount(correct string, incorrect []string) int {
	seen := make(map[string]struct{}, len(incorrect)+1)
	if correct != "" {
		seen[correct] = struct{}{}
	}
	for _, answer := range incorrect {
		seen[answer] = struct{}{}
	}
	return len(seen)
}

// firstString returns the first alias present as a non-empty string.
func firstString(raw domain.RawQuestion, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := raw[alias]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// firstSlice returns the first alias present as a sequence, with every
// element coerced to a string.
func firstSlice(raw domain.RawQuestion, aliases []string) []string {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	}
	return nil
}
