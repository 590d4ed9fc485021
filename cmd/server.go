package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

// APIServer serves handler until ctx is cancelled, then shuts down
// gracefully within config.ShutdownTimeout. Request contexts derive from ctx,
// so long-lived streams end as soon as shutdown starts.
func APIServer(ctx context.Context, handler http.Handler, config utils.AppConfig, log *zap.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ErrorLog:          zap.NewStdLog(log),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server running", zap.String("url", fmt.Sprintf("http://localhost%s", server.Addr)))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down the server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("Graceful shutdown timed out, forcing exit", zap.Duration("timeout", config.ShutdownTimeout))
			return fmt.Errorf("graceful shutdown timed out: %w", err)
		}
		return err
	}

	log.Info("Server stopped")
	return nil
}
