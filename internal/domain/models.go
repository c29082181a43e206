package domain

import "time"

// QuestionKind distinguishes true/false questions from multiple choice.
type QuestionKind string

const (
	KindBoolean  QuestionKind = "boolean"
	KindMultiple QuestionKind = "multiple"
)

// RawQuestion is an upstream question record before normalization. Sources
// disagree on field names, so it stays an untyped map until the normalizer
// resolves it.
type RawQuestion map[string]any

// Question is the canonical, fully decoded form of an upstream record.
// Answers always contains CorrectAnswer exactly once; boolean questions
// carry the fixed pair ["True","False"].
type Question struct {
	Text          string       `json:"text"`
	CorrectAnswer string       `json:"correctAnswer"`
	Answers       []string     `json:"answers"`
	Kind          QuestionKind `json:"kind"`
	Category      string       `json:"category"`
	Difficulty    string       `json:"difficulty"`
}

// Settings configures a quiz session. Immutable once a session starts.
type Settings struct {
	Amount       int
	Category     string
	Difficulty   string // "", easy, medium, hard
	Type         string // "", multiple, boolean
	TimerSeconds int    // 0 disables the countdown
}

const (
	MinAmount       = 5
	MaxAmount       = 25
	DefaultAmount   = 10
	MaxTimerSeconds = 600
)

// Clamped bounds the numeric fields to their supported ranges.
func (s Settings) Clamped() Settings {
	if s.Amount == 0 {
		s.Amount = DefaultAmount
	}
	s.Amount = clamp(s.Amount, MinAmount, MaxAmount)
	s.TimerSeconds = clamp(s.TimerSeconds, 0, MaxTimerSeconds)
	return s
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// HighScoreEntry is one row of the local high-score list.
type HighScoreEntry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

// Category is a trivia category offered by the source.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Theme is the persisted visual theme preference.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Next cycles auto -> dark -> light -> auto.
func (t Theme) Next() Theme {
	switch t {
	case ThemeAuto:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// ParseTheme maps a stored string onto a theme, defaulting to auto.
func ParseTheme(raw string) Theme {
	switch Theme(raw) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeAuto
	}
}
