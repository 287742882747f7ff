package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/consolidate"
	"github.com/kalambet/scriv/internal/mcp"
	"github.com/kalambet/scriv/internal/preview"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTML preview of the project on localhost",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		path, _, err := loadProject()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		addr := fmt.Sprintf("127.0.0.1:%d", port)
		srv := &http.Server{
			Addr:    addr,
			Handler: preview.NewHandler(path),
		}

		errCh := make(chan error, 1)
		go func() {
			printStep("Preview listening on http://%s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "shutting down...")
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 4810, "port to listen on")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the project as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, project, err := loadProject()
		if err != nil {
			return err
		}

		deps := mcp.Deps{
			ProjectPath: path,
			Project:     project,
		}

		// Translation through the consolidate tool needs provider
		// credentials; without them the tool still works untranslated.
		// The assistant is provisioned lazily, on the first translation.
		if s, err := newSession(); err == nil {
			defer s.Close()
			deps.Translator = &lazyTranslator{session: s, path: path}
		} else {
			printWarning("translation disabled: %v", err)
		}

		stdioSrv := server.NewStdioServer(mcp.NewServer(deps))
		if err := stdioSrv.Listen(cmd.Context(), os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// lazyTranslator defers assistant provisioning until translation is first
// requested.
type lazyTranslator struct {
	session *session
	path    string
	inner   consolidate.Translator
}

func (l *lazyTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if l.inner == nil {
		t, err := l.session.manager.NewTranslator(ctx, l.path)
		if err != nil {
			return "", err
		}
		l.inner = t
	}
	return l.inner.Translate(ctx, text, fromLang, toLang)
}
