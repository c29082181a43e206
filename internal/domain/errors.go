package domain

import "errors"

var (
	// ErrNetwork is returned when the trivia source cannot be reached or
	// reports a non-success status.
	ErrNetwork = errors.New("trivia source unavailable")
	// ErrFormat indicates the source response could not be parsed.
	ErrFormat = errors.New("trivia response format unrecognized")
	// ErrNoQuestions indicates the source returned zero usable questions.
	ErrNoQuestions = errors.New("no questions returned")
)
