package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizo/internal/domain"
)

// State names the lifecycle phase of a session.
type State int

const (
	// StateIdle means no quiz is running; settings can be submitted.
	StateIdle State = iota
	// StateLoading means a question fetch is in flight.
	StateLoading
	// StatePresenting means the current question accepts an answer.
	StatePresenting
	// StateLocked means the current question has been answered or timed
	// out and is waiting for Advance.
	StateLocked
	// StateFinished is terminal for one quiz run.
	StateFinished
)

// PointsPerQuestion is the fixed award for a correct answer.
const PointsPerQuestion = 10

// FetchFunc loads questions for the given settings. It must honor ctx
// cancellation.
type FetchFunc func(ctx context.Context, settings domain.Settings) ([]domain.Question, error)

// Session drives one quiz run: question index, score, answer lock, and
// the per-question countdown. All methods are safe for concurrent use;
// the mutex serializes user intents against timer and fetch callbacks.
type Session struct {
	id     string
	logger *zap.Logger

	mu           sync.Mutex
	state        State
	settings     domain.Settings
	questions    []domain.Question
	index        int
	score        int
	answerLocked bool
	remaining    int

	// generation invalidates timer and fetch callbacks that outlive the
	// question or load they were started for.
	generation  uint64
	stopTimer   chan struct{}
	cancelFetch context.CancelFunc

	tickEvery   time.Duration
	subscribers map[chan Event]struct{}
}

// Option customizes a session.
type Option func(*Session)

// WithTickInterval overrides the countdown cadence, test-only.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.tickEvery = d }
}

// New builds an idle session.
func New(logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		id:          uuid.NewString(),
		logger:      logger,
		state:       StateIdle,
		tickEvery:   time.Second,
		subscribers: make(map[chan Event]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Subscribe returns a channel that receives state-transition events.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			if _, ok := s.subscribers[ch]; ok {
				delete(s.subscribers, ch)
				close(ch)
			}
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// Load submits settings: it enters Loading, runs fetch on its own
// goroutine, and either starts the quiz or reports the failure. A second
// Load while one is in flight is ignored.
func (s *Session) Load(settings domain.Settings, fetch FetchFunc) {
	s.mu.Lock()
	if s.state == StateLoading {
		s.mu.Unlock()
		return
	}
	s.stopCountdownLocked()
	s.settings = settings.Clamped()
	s.questions = nil
	s.index, s.score = 0, 0
	s.answerLocked = false
	s.state = StateLoading
	s.generation++
	generation := s.generation

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelFetch = cancel
	fetchSettings := s.settings
	s.broadcastLocked(Event{Kind: EventLoading})
	s.mu.Unlock()

	go func() {
		questions, err := fetch(ctx, fetchSettings)
		cancel()
		s.finishLoad(generation, questions, err)
	}()
}

func (s *Session) finishLoad(generation uint64, questions []domain.Question, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || s.state != StateLoading {
		// the session was quit or reloaded while this fetch was in
		// flight; its result no longer applies
		s.logger.Warn("discarding stale fetch result")
		return
	}
	s.cancelFetch = nil

	if err == nil && len(questions) == 0 {
		err = domain.ErrNoQuestions
	}
	if err != nil {
		s.logger.Warn("question load failed", zap.Error(err))
		s.state = StateIdle
		s.broadcastLocked(Event{Kind: EventLoadFailed, Reason: err.Error()})
		return
	}

	s.logger.Info("quiz started", zap.Int("questions", len(questions)))
	s.questions = questions
	s.presentLocked()
}

// presentLocked enters Presenting for the current index and starts a
// fresh countdown when one is configured.
func (s *Session) presentLocked() {
	s.state = StatePresenting
	s.answerLocked = false
	s.remaining = s.settings.TimerSeconds
	s.generation++

	q := s.questions[s.index]
	s.broadcastLocked(Event{
		Kind:    EventQuestion,
		Index:   s.index,
		Total:   len(s.questions),
		Text:    q.Text,
		Answers: q.Answers,
		Seconds: s.remaining,
		Score:   s.score,
	})

	if s.settings.TimerSeconds > 0 {
		stop := make(chan struct{})
		s.stopTimer = stop
		go s.runCountdown(s.generation, stop)
	}
}

// runCountdown ticks once per interval until stopped or the question
// locks. State checks happen under the mutex inside tickOnce.
func (s *Session) runCountdown(generation uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !s.tickOnce(generation) {
				return
			}
		}
	}
}

// tickOnce applies one countdown step; it reports whether the countdown
// should keep running.
func (s *Session) tickOnce(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || s.state != StatePresenting || s.answerLocked {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		s.broadcastLocked(Event{Kind: EventTick, Remaining: s.remaining})
		return true
	}

	// time is up: lock as incorrect, reveal the answer, award nothing
	s.broadcastLocked(Event{Kind: EventTick, Remaining: 0})
	s.lockLocked(-1, true)
	return false
}

// SubmitAnswer locks the current question with the chosen answer index.
// It is a no-op unless a question is being presented and unanswered.
func (s *Session) SubmitAnswer(choice int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePresenting || s.answerLocked {
		return
	}
	s.lockLocked(choice, false)
}

// lockLocked stops the countdown synchronously, scores the choice, and
// emits the answer result. Exactly one lock happens per question.
func (s *Session) lockLocked(choice int, timedOut bool) {
	s.stopCountdownLocked()
	s.answerLocked = true
	s.state = StateLocked

	q := s.questions[s.index]
	correct := false
	if !timedOut && choice >= 0 && choice < len(q.Answers) && q.Answers[choice] == q.CorrectAnswer {
		correct = true
		s.score += PointsPerQuestion
	}

	s.broadcastLocked(Event{
		Kind:          EventAnswerResult,
		Correct:       correct,
		TimedOut:      timedOut,
		CorrectAnswer: q.CorrectAnswer,
		Score:         s.score,
	})
}

// Advance moves past a locked question: to the next one, or to Finished
// after the last. No-op unless the current question is locked.
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLocked {
		return
	}
	s.index++
	if s.index >= len(s.questions) {
		s.state = StateFinished
		total := len(s.questions) * PointsPerQuestion
		s.logger.Info("quiz finished", zap.Int("score", s.score), zap.Int("total", total))
		s.broadcastLocked(Event{Kind: EventFinished, Score: s.score, TotalPoints: total})
		return
	}
	s.presentLocked()
}

// Quit abandons the run: countdown stopped, in-flight fetch cancelled,
// state discarded. No high score is recorded.
func (s *Session) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopCountdownLocked()
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.generation++
	s.state = StateIdle
	s.questions = nil
	s.index, s.score = 0, 0
	s.answerLocked = false
	s.remaining = 0
}

func (s *Session) stopCountdownLocked() {
	if s.stopTimer != nil {
		close(s.stopTimer)
		s.stopTimer = nil
	}
}

// broadcastLocked fans an event out without blocking: a full subscriber
// buffer drops its oldest event in favor of the new one.
func (s *Session) broadcastLocked(event Event) {
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}
