package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Handler exposes the mapped routes, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// pending Telegram replies.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if srv.telegramHandler != nil {
		if err := srv.telegramHandler.Wait(shutdownCtx); err != nil {
			return fmt.Errorf("drain telegram replies: %w", err)
		}
	}
	return <-errCh
}
