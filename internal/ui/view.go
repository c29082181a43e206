package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenWelcome:
		body = m.viewWelcome()
	case screenSetup:
		body = m.viewSetup()
	case screenQuiz:
		body = m.viewQuiz()
	case screenResult:
		body = m.viewResult()
	case screenScores:
		body = m.viewScores()
	}
	header := m.palette.Title.Render("Quizo") +
		m.palette.Subtle.Render("  trivia quiz · theme: "+m.palette.Label)
	return m.palette.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

func (m Model) viewWelcome() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"What should we call you?",
		"",
		m.nameInput.View(),
		"",
		m.palette.Subtle.Render("enter: continue · ctrl+t: theme · ctrl+c: exit"),
	)
}

func (m Model) viewSetup() string {
	lines := []string{
		m.palette.Highlight.Render(fmt.Sprintf("Welcome, %s — start a quiz", m.displayName())),
		"",
		m.fieldLine(fieldAmount, "Questions ", m.amountInput.View()),
		m.fieldLine(fieldCategory, "Category  ", m.categoryLabel()),
		m.fieldLine(fieldDifficulty, "Difficulty", optionLabel(difficulties[m.difficultyIdx])),
		m.fieldLine(fieldType, "Type      ", optionLabel(kinds[m.typeIdx])),
		m.fieldLine(fieldTimer, "Timer (s) ", m.timerInput.View()),
		"",
	}
	if m.loading {
		lines = append(lines, m.palette.Highlight.Render("Loading questions…"))
	} else if m.loadErr != "" {
		lines = append(lines,
			m.palette.Wrong.Render("Failed to load questions: "+m.loadErr),
			m.palette.Subtle.Render("Adjust settings and press enter to retry."))
	}
	lines = append(lines, "",
		m.palette.Subtle.Render("enter: start · tab/↑↓: field · ←→: change · ctrl+h: high scores"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewQuiz() string {
	q := m.question
	total := q.Total
	if total == 0 {
		return m.palette.Subtle.Render("Waiting for questions…")
	}

	status := fmt.Sprintf("Question %d/%d · Score %d", q.Index+1, total, m.score)
	if m.question.Seconds > 0 {
		status += fmt.Sprintf(" · ⏱ %02d", m.remaining)
	}

	lines := []string{
		m.progress.ViewAs(float64(q.Index) / float64(total)),
		m.palette.Subtle.Render(status),
		"",
		m.palette.Highlight.Render(q.Text),
		"",
	}
	for i, answer := range q.Answers {
		lines = append(lines, m.answerLine(i, answer))
	}
	lines = append(lines, "")
	if m.locked {
		if m.result.TimedOut {
			lines = append(lines, m.palette.Wrong.Render("Time is up!"))
		} else if m.result.Correct {
			lines = append(lines, m.palette.Correct.Render("Correct!"))
		} else {
			lines = append(lines, m.palette.Wrong.Render("Wrong — the answer was "+m.result.CorrectAnswer))
		}
		lines = append(lines, m.palette.Subtle.Render("enter: next · q: quit"))
	} else {
		lines = append(lines, m.palette.Subtle.Render("1-9: answer · q: quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) answerLine(i int, answer string) string {
	line := fmt.Sprintf("%d. %s", i+1, answer)
	if !m.locked {
		return line
	}
	switch {
	case answer == m.result.CorrectAnswer:
		return m.palette.Correct.Render(line)
	case i == m.selected:
		return m.palette.Wrong.Render(line)
	default:
		return m.palette.Subtle.Render(line)
	}
}

func (m Model) viewResult() string {
	percent := 0
	if m.final.TotalPoints > 0 {
		percent = m.final.Score * 100 / m.final.TotalPoints
	}
	lines := []string{
		m.palette.Title.Render("Quiz complete"),
		"",
		fmt.Sprintf("You scored %d/%d (%d%%).", m.final.Score, m.final.TotalPoints, percent),
		m.palette.Subtle.Render(fmt.Sprintf("Saving as %s.", m.displayName())),
		"",
	}
	if m.saved {
		lines = append(lines, m.palette.Correct.Render("Score saved."))
	}
	lines = append(lines,
		m.palette.Subtle.Render("s: save score · v: high scores · enter: play again"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewScores() string {
	body := m.scoresTable.View()
	if len(m.scoresTable.Rows()) == 0 {
		body = m.palette.Subtle.Render("No high scores yet.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Title.Render("High scores"),
		"",
		body,
		"",
		m.palette.Subtle.Render("esc: back"),
	)
}

func (m Model) fieldLine(field int, label, value string) string {
	marker := "  "
	if m.focus == field {
		marker = m.palette.Highlight.Render("> ")
	}
	return marker + label + "  " + value
}

func (m Model) categoryLabel() string {
	if m.categoryIdx == 0 || m.categoryIdx > len(m.categories) {
		return optionLabel("")
	}
	return m.categories[m.categoryIdx-1].Name
}

func (m Model) displayName() string {
	if name := m.deps.Profile.Name(); name != "" {
		return name
	}
	return "Player"
}

func optionLabel(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Any"
	}
	return value
}
