package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pdf_util/api"
	"pdf_util/config"
	"pdf_util/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 15 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve merge, rotate and keep over HTTP",
		Long: `Serve exposes the PDF operations as multipart form endpoints under /api/pdf.
Settings come from the environment (PORT, MAX_FILE_SIZE, TEMP_DIR, LOG_LEVEL)
or a .env file in the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}

			log := config.NewLogger(cmd.ErrOrStderr(), root.logLevel(cfg.LogLevel))
			if log.GetLevel() < logrus.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			server := api.NewServer(cfg, pdf.NewProcessor(log), log)
			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      server.NewRouter(),
				ReadTimeout:  ServerReadTimeout,
				WriteTimeout: ServerWriteTimeout,
				IdleTimeout:  ServerIdleTimeout,
			}

			log.WithFields(logrus.Fields{
				"max_file_size": cfg.MaxFileSize,
				"temp_dir":      cfg.TempDir,
			}).Infof("Server starting on %s", srv.Addr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, srv, log)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

// runServer serves until ctx is done and then shuts srv down gracefully.
func runServer(ctx context.Context, srv *http.Server, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited gracefully")
	return nil
}
