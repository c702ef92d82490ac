package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	httpapp "github.com/LXMachado/tinnie-house-revamp/internal/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the content API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	rt, err := newRuntime(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer rt.Close()

	h := httpapp.NewHandler(rt.content, rt.log)
	h.Env = rt.cfg.Env
	h.Version = rt.cfg.APIVersion
	h.AudioDir = rt.cfg.AudioDir
	h.ReadTimeout = rt.cfg.RequestTimeout

	srv := &http.Server{
		Addr:              ":" + rt.cfg.Port,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("Server listening",
			"addr", srv.Addr,
			"env", rt.cfg.Env,
			"data_source", rt.cfg.DataSource,
			"spotlight", rt.spotlight.BundleID(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	rt.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	rt.log.Info("Server stopped")
	return nil
}
