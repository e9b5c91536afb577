package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/boardfile"
	snaperrors "github.com/matzehuels/snapdock/pkg/errors"
)

// serveCommand creates the serve command, a read-only HTTP view of a board.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		loadFile   string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the board",
		Long: `Serve a read-only HTTP view of the board.

Endpoints:
  GET /healthz             liveness probe
  GET /api/board           the full board document
  GET /api/blocks/{id}     a single block
  GET /api/collisions      the current overlap report
  GET /api/session         the active drag session (always null here)

The server is a debug surface over a static board; it never mutates state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, loadFile, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/snapdock/config.toml)")
	cmd.Flags().StringVar(&loadFile, "load", "", "serve this board JSON file instead of the config board")
	cmd.Flags().StringVar(&addr, "addr", ":8422", "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, loadFile, addr string) error {
	b, cfg, err := loadBoard(configPath)
	if err != nil {
		return err
	}
	if loadFile != "" {
		if b, err = loadBoardFile(loadFile, cfg.Tolerance); err != nil {
			return err
		}
	}

	ctx = withLogger(ctx, c.Logger)

	ctrl := board.NewController(b)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(ctrl, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Info("serving board", "addr", addr, "blocks", b.Len())
	printInfo("Serving board on %s", StyleValue.Render(addr))

	select {
	case <-ctx.Done():
		loggerFromContext(ctx).Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// =============================================================================
// Router
// =============================================================================

// newRouter builds the chi router over a controller's read model.
func newRouter(ctrl *board.Controller, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, boardfile.FromBoard(ctrl.Board()))
		})

		r.Get("/blocks/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			blk, ok := ctrl.Board().Block(id)
			if !ok {
				writeError(w, http.StatusNotFound,
					snaperrors.New(snaperrors.ErrCodeBlockNotFound, "no block %q", id))
				return
			}
			writeJSON(w, http.StatusOK, boardfile.BlockRecord{
				ID:     blk.ID,
				X:      blk.X,
				Y:      blk.Y,
				Width:  blk.W,
				Height: blk.H,
				Color:  blk.Color,
				Next:   blk.NextID,
			})
		})

		r.Get("/collisions", func(w http.ResponseWriter, _ *http.Request) {
			cols := ctrl.Board().Collisions()
			if cols == nil {
				cols = []board.Collision{}
			}
			writeJSON(w, http.StatusOK, map[string]any{"collisions": cols})
		})

		r.Get("/session", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"session": ctrl.Session()})
		})
	})

	return r
}

// requestLogger logs each request with method, path, status and duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  string(snaperrors.GetCode(err)),
	})
}
