package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"quizgame/internal/app"
	"quizgame/internal/config"
	"quizgame/internal/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCmd builds the CLI subcommand to start the API server.
func NewServeCmd(configPath, store *string) *cobra.Command {
	var (
		port string
		seed bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *store, port, seed)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides config)")
	cmd.Flags().BoolVar(&seed, "seed", false, "insert the sample quizzes before serving")
	return cmd
}

func runServer(ctx context.Context, configPath, store, portFlag string, seed bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.IsProduction())
	defer log.Sync()

	port := portFlag
	if port == "" {
		port = cfg.Server.Port
	}

	a, err := app.New(ctx, cfg, store, log)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if seed {
		if err := seedQuizzes(ctx, a, log); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      a.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", port), zap.String("store", store))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	case err := <-errCh:
		log.Error("server failed", zap.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited")
	return nil
}
