package session

// EventKind identifies a state-transition notification sent to the
// presentation shell.
type EventKind int

const (
	// EventLoading signals the start of a question fetch.
	EventLoading EventKind = iota
	// EventLoadFailed signals that the fetch failed; the session is back
	// at settings entry and can retry.
	EventLoadFailed
	// EventQuestion presents the current question.
	EventQuestion
	// EventTick reports the countdown for the current question.
	EventTick
	// EventAnswerResult reveals correctness after a lock.
	EventAnswerResult
	// EventFinished reports the final score.
	EventFinished
)

// Event carries the payload for one notification. Only the fields
// relevant to its Kind are populated.
type Event struct {
	Kind EventKind

	// EventLoadFailed
	Reason string

	// EventQuestion
	Index   int
	Total   int
	Text    string
	Answers []string
	Seconds int

	// EventTick
	Remaining int

	// EventAnswerResult
	Correct       bool
	TimedOut      bool
	CorrectAnswer string

	// running score; final on EventFinished
	Score       int
	TotalPoints int
}
