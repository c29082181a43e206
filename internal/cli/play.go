package cli

import (
	"github.com/spf13/cobra"

	"quizo/internal/domain"
	"quizo/internal/session"
	"quizo/internal/ui"
)

// NewPlayCmd builds the subcommand that starts the quiz TUI.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		amount     int
		category   string
		difficulty string
		qType      string
		timer      int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			defaults := domain.Settings{
				Amount:       a.cfg.Defaults.Amount,
				Category:     a.cfg.Defaults.Category,
				Difficulty:   a.cfg.Defaults.Difficulty,
				Type:         a.cfg.Defaults.Type,
				TimerSeconds: a.cfg.Defaults.TimerSeconds,
			}
			if !cmd.Flags().Changed("timer") && a.cfg.Defaults.TimerSeconds == 0 {
				defaults.TimerSeconds = 20
			}
			if cmd.Flags().Changed("amount") {
				defaults.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				defaults.Category = category
			}
			if cmd.Flags().Changed("difficulty") {
				defaults.Difficulty = difficulty
			}
			if cmd.Flags().Changed("type") {
				defaults.Type = qType
			}
			if cmd.Flags().Changed("timer") {
				defaults.TimerSeconds = timer
			}

			sess := session.New(a.logger)
			return ui.Run(ui.Deps{
				Session:    sess,
				Fetch:      a.client.FetchQuestions,
				Scores:     a.scores,
				Profile:    a.profile,
				Categories: a.categories,
				Logger:     a.logger,
			}, defaults.Clamped())
		},
	}

	cmd.Flags().IntVar(&amount, "amount", domain.DefaultAmount, "number of questions (5-25)")
	cmd.Flags().StringVar(&category, "category", "", "category id filter")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty filter (easy|medium|hard)")
	cmd.Flags().StringVar(&qType, "type", "", "question type filter (multiple|boolean)")
	cmd.Flags().IntVar(&timer, "timer", 20, "seconds per question (0 disables)")
	return cmd
}
