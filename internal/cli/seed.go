package cli

import (
	"context"
	"fmt"
	"quizgame/internal/app"
	"quizgame/internal/config"
	"quizgame/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSeedCmd builds the CLI subcommand that inserts the sample quizzes.
func NewSeedCmd(configPath, store *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.IsProduction())
			defer log.Sync()

			a, err := app.New(ctx, cfg, *store, log)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			return seedQuizzes(ctx, a, log)
		},
	}
}

func seedQuizzes(ctx context.Context, a *app.App, log *zap.Logger) error {
	for _, quiz := range sampleQuizzes() {
		if _, err := a.QuizService.Create(ctx, quiz); err != nil {
			return fmt.Errorf("failed to seed quiz %q: %w", quiz.QuizTitle, err)
		}
	}
	log.Info("sample quizzes inserted", zap.Int("count", len(sampleQuizzes())))
	return nil
}
