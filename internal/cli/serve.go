package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/attribute/pkg/buildinfo"
	attrerrors "github.com/matzehuels/attribute/pkg/errors"
	pkgio "github.com/matzehuels/attribute/pkg/io"
	"github.com/matzehuels/attribute/pkg/pipeline"
)

const (
	defaultServeAddr = "127.0.0.1:8080"
	shutdownTimeout  = 5 * time.Second
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the attributions report over HTTP",
		Long: `Serve answers GET /attributions.json with a report generated from the current
project state on every request. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newReportRouter(c.newRunner(), opts),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			printInfo("Serving attributions on http://%s/attributions.json", addr)
			printDetail("Press Ctrl+C to stop")

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	return cmd
}

// newReportRouter returns the HTTP handler for the serve command.
func newReportRouter(runner *pipeline.Runner, opts pipeline.Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		body := buildinfo.Fields()
		body["status"] = "ok"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})

	r.Get("/attributions.json", func(w http.ResponseWriter, req *http.Request) {
		result, err := runner.Collect(req.Context(), opts)
		if err != nil {
			http.Error(w, attrerrors.UserMessage(err), statusFor(err))
			return
		}
		data, err := pkgio.Marshal(result.Dependencies)
		if err != nil {
			http.Error(w, attrerrors.UserMessage(err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})

	return r
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch attrerrors.GetCode(err) {
	case attrerrors.ErrCodeRead:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
