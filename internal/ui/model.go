package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quizo/internal/domain"
	"quizo/internal/highscore"
	"quizo/internal/profile"
	"quizo/internal/session"
)

// CategoryProvider lists the trivia categories offered on the setup
// screen.
type CategoryProvider interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

type screen int

const (
	screenWelcome screen = iota
	screenSetup
	screenQuiz
	screenResult
	screenScores
)

// Setup form fields, in focus order.
const (
	fieldAmount = iota
	fieldCategory
	fieldDifficulty
	fieldType
	fieldTimer
	fieldCount
)

var (
	difficulties = []string{"", "easy", "medium", "hard"}
	kinds        = []string{"", "multiple", "boolean"}
)

// Deps wires the core collaborators into the shell.
type Deps struct {
	Session    *session.Session
	Fetch      session.FetchFunc
	Scores     highscore.Store
	Profile    *profile.Manager
	Categories CategoryProvider
	Logger     *zap.Logger
}

// Model is the Bubble Tea presentation shell. It renders whichever
// screen is active and forwards user intents into the session; it holds
// no quiz logic of its own.
type Model struct {
	deps    Deps
	palette Palette

	screen screen
	width  int

	events    <-chan session.Event
	cancelSub func()

	// welcome
	nameInput textinput.Model

	// setup
	focus           int
	amountInput     textinput.Model
	timerInput      textinput.Model
	categories      []domain.Category
	categoryIdx     int
	pendingCategory string
	difficultyIdx   int
	typeIdx         int
	loading         bool
	loadErr         string

	// quiz
	question  session.Event
	remaining int
	score     int
	locked    bool
	selected  int
	result    session.Event
	progress  progress.Model

	// result
	final session.Event
	saved bool

	// scores
	scoresTable table.Model
}

// NewModel builds the shell around an already-constructed session.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	events, cancel := deps.Session.Subscribe()

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 20
	name.Width = 24
	name.Focus()

	amount := textinput.New()
	amount.CharLimit = 2
	amount.Width = 6
	amount.SetValue(strconv.Itoa(domain.DefaultAmount))
	amount.Focus()

	timer := textinput.New()
	timer.CharLimit = 3
	timer.Width = 6
	timer.SetValue("20")

	scores := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 24},
			{Title: "Score", Width: 8},
			{Title: "When", Width: 17},
		}),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	first := screenWelcome
	if deps.Profile.HasName() {
		first = screenSetup
	}

	return Model{
		deps:        deps,
		palette:     paletteFor(deps.Profile.Theme()),
		screen:      first,
		events:      events,
		cancelSub:   cancel,
		nameInput:   name,
		amountInput: amount,
		timerInput:  timer,
		selected:    -1,
		progress:    progress.New(progress.WithDefaultGradient()),
		scoresTable: scores,
	}
}

// WithDefaults seeds the setup form from configured defaults.
func (m Model) WithDefaults(settings domain.Settings) Model {
	if settings.Amount > 0 {
		m.amountInput.SetValue(strconv.Itoa(settings.Amount))
	}
	m.timerInput.SetValue(strconv.Itoa(settings.TimerSeconds))
	for i, d := range difficulties {
		if d == settings.Difficulty {
			m.difficultyIdx = i
		}
	}
	for i, k := range kinds {
		if k == settings.Type {
			m.typeIdx = i
		}
	}
	m.pendingCategory = settings.Category
	return m
}

// Close releases the session subscription.
func (m Model) Close() {
	if m.cancelSub != nil {
		m.cancelSub()
	}
}

// Init starts listening for session events and kicks off the category
// fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.events),
		loadCategories(m.deps.Categories),
		textinput.Blink,
	)
}

// Update routes messages: session events mutate view state, key presses
// become intents on the session and the stores.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = min(typed.Width-8, 50)
		return m, nil
	case categoriesMsg:
		m.categories = typed.categories
		if m.pendingCategory != "" {
			for i, category := range m.categories {
				if strconv.Itoa(category.ID) == m.pendingCategory {
					m.categoryIdx = i + 1
				}
			}
			m.pendingCategory = ""
		}
		return m, nil
	case sessionEventMsg:
		m = m.applyEvent(typed.event)
		return m, waitForEvent(m.events)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		m.deps.Session.Quit()
		return m, tea.Quit
	case "ctrl+t":
		m.palette = paletteFor(m.deps.Profile.CycleTheme())
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.handleWelcomeKey(key)
	case screenSetup:
		return m.handleSetupKey(key)
	case screenQuiz:
		return m.handleQuizKey(key)
	case screenResult:
		return m.handleResultKey(key)
	case screenScores:
		return m.handleScoresKey(key)
	}
	return m, nil
}

func (m Model) handleWelcomeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		m.deps.Profile.SetName(m.nameInput.Value())
		m.screen = screenSetup
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(key)
	return m, cmd
}

func (m Model) handleSetupKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "shift+tab":
		return m.moveFocus(-1), nil
	case "down", "tab":
		return m.moveFocus(1), nil
	case "left":
		return m.cycleField(-1), nil
	case "right":
		return m.cycleField(1), nil
	case "ctrl+h":
		return m.showScores()
	case "enter":
		return m.submitSettings()
	}
	return m.updateFocused(key)
}

func (m Model) handleQuizKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := key.String()
	switch pressed {
	case "q", "esc":
		m.deps.Session.Quit()
		m.loading = false
		m.loadErr = ""
		m.screen = screenSetup
		return m, nil
	case "enter", " ", "n":
		m.deps.Session.Advance()
		return m, nil
	}
	if !m.locked && len(pressed) == 1 && pressed[0] >= '1' && pressed[0] <= '9' {
		choice := int(pressed[0] - '1')
		if choice < len(m.question.Answers) {
			m.selected = choice
			m.deps.Session.SubmitAnswer(choice)
		}
	}
	return m, nil
}

func (m Model) handleResultKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "s":
		if !m.saved {
			if err := m.deps.Scores.Record(m.deps.Profile.Name(), m.final.Score); err != nil {
				m.deps.Logger.Warn("saving high score failed", zap.Error(err))
			}
			m.saved = true
		}
		return m.showScores()
	case "v":
		return m.showScores()
	case "enter", "p", "q", "esc":
		m.screen = screenSetup
		return m, nil
	}
	return m, nil
}

func (m Model) handleScoresKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q", "enter":
		m.screen = screenSetup
		return m, nil
	}
	var cmd tea.Cmd
	m.scoresTable, cmd = m.scoresTable.Update(key)
	return m, cmd
}

// applyEvent folds a session event into the view state.
func (m Model) applyEvent(event session.Event) Model {
	switch event.Kind {
	case session.EventLoading:
		m.loading = true
		m.loadErr = ""
	case session.EventLoadFailed:
		m.loading = false
		m.loadErr = event.Reason
		m.screen = screenSetup
	case session.EventQuestion:
		m.loading = false
		m.screen = screenQuiz
		m.question = event
		m.remaining = event.Seconds
		m.score = event.Score
		m.locked = false
		m.selected = -1
		m.result = session.Event{}
	case session.EventTick:
		m.remaining = event.Remaining
	case session.EventAnswerResult:
		m.locked = true
		m.result = event
		m.score = event.Score
	case session.EventFinished:
		m.screen = screenResult
		m.final = event
		m.saved = false
	}
	return m
}

func (m Model) moveFocus(delta int) Model {
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if m.focus == fieldAmount {
		m.amountInput.Focus()
	} else {
		m.amountInput.Blur()
	}
	if m.focus == fieldTimer {
		m.timerInput.Focus()
	} else {
		m.timerInput.Blur()
	}
	return m
}

func (m Model) cycleField(delta int) Model {
	switch m.focus {
	case fieldCategory:
		n := len(m.categories) + 1 // leading "Any"
		m.categoryIdx = (m.categoryIdx + delta + n) % n
	case fieldDifficulty:
		m.difficultyIdx = (m.difficultyIdx + delta + len(difficulties)) % len(difficulties)
	case fieldType:
		m.typeIdx = (m.typeIdx + delta + len(kinds)) % len(kinds)
	}
	return m
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.screen == screenWelcome:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.screen == screenSetup && m.focus == fieldAmount:
		m.amountInput, cmd = m.amountInput.Update(msg)
	case m.screen == screenSetup && m.focus == fieldTimer:
		m.timerInput, cmd = m.timerInput.Update(msg)
	}
	return m, cmd
}

// submitSettings reads the form and asks the session to load a quiz.
func (m Model) submitSettings() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	amount, _ := strconv.Atoi(m.amountInput.Value())
	timer, _ := strconv.Atoi(m.timerInput.Value())

	settings := domain.Settings{
		Amount:       amount,
		Difficulty:   difficulties[m.difficultyIdx],
		Type:         kinds[m.typeIdx],
		TimerSeconds: timer,
	}
	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		settings.Category = strconv.Itoa(m.categories[m.categoryIdx-1].ID)
	}

	m.deps.Session.Load(settings, m.deps.Fetch)
	return m, nil
}

// showScores refreshes the table from the store and opens the dialog.
func (m Model) showScores() (tea.Model, tea.Cmd) {
	entries, err := m.deps.Scores.List()
	if err != nil {
		m.deps.Logger.Warn("listing high scores failed", zap.Error(err))
	}
	rows := make([]table.Row, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			entry.Name,
			strconv.Itoa(entry.Score),
			entry.At.Format("2006-01-02 15:04"),
		})
	}
	m.scoresTable.SetRows(rows)
	m.screen = screenScores
	return m, nil
}
