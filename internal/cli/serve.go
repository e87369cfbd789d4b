package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	xcerrors "github.com/opencollective/xcproj/pkg/errors"
	"github.com/opencollective/xcproj/pkg/pbx"
	"github.com/opencollective/xcproj/pkg/targetgraph"
)

// serveCommand creates the serve command, a local HTTP inspector.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <project>",
		Short: "Serve a project over HTTP for local inspection",
		Long: `Serve a project over HTTP for local inspection.

Routes:
  GET /healthz             liveness probe
  GET /project.json        the decoded object graph
  GET /objects/{ref}.json  one object of the table
  GET /targets.json        the target list with dependency references
  GET /graph.svg           the rendered target dependency graph

The file is re-read on every request, so edits show up on reload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.cfg.Serve.Addr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string) error {
	if err := xcerrors.ValidateProjectPath(path); err != nil {
		return err
	}
	// Fail on unreadable input before binding the socket.
	if _, err := pbx.ReadFile(path); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(c.logRequests)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Get("/project.json", c.handleProject(path))
	r.Get("/objects/{ref}.json", c.handleObject(path))
	r.Get("/targets.json", c.handleTargets(path))
	r.Get("/graph.svg", c.handleGraph(path))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	printInfo("Serving %s on %s", path, StyleLink.Render("http://"+addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// =============================================================================
// Middleware
// =============================================================================

// logRequests logs one line per request: method, path, status, duration.
func (c *CLI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.Logger.Infof("%s %s %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// =============================================================================
// Handlers
// =============================================================================

// handleProject serves the decoded object graph as JSON.
func (c *CLI) handleProject(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		doc, err := pbx.ReadFile(path)
		if err != nil {
			httpError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := pbx.WriteJSON(doc, w); err != nil {
			c.Logger.Errorf("write response: %v", err)
		}
	}
}

// handleObject serves a single object of the table as JSON, looked up by its
// reference.
func (c *CLI) handleObject(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "ref")
		if err := xcerrors.ValidateReference(ref); err != nil {
			httpError(w, err)
			return
		}
		doc, err := pbx.ReadFile(path)
		if err != nil {
			httpError(w, err)
			return
		}
		obj, ok := doc.Lookup(ref)
		if !ok {
			httpError(w, xcerrors.New(xcerrors.ErrCodeObjectNotFound, "no object %s in %s", ref, path))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(obj.Encode(doc).Value.Raw()); err != nil {
			c.Logger.Errorf("write response: %v", err)
		}
	}
}

// targetJSON is one entry of the /targets.json response.
type targetJSON struct {
	Ref          string   `json:"ref"`
	Name         string   `json:"name"`
	Isa          string   `json:"isa"`
	ProductType  string   `json:"productType,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// handleTargets serves the target list with resolved dependency references.
func (c *CLI) handleTargets(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		doc, err := pbx.ReadFile(path)
		if err != nil {
			httpError(w, err)
			return
		}
		g, err := targetgraph.Build(doc)
		if err != nil {
			httpError(w, err)
			return
		}

		targets := make([]targetJSON, 0, g.NodeCount())
		for _, n := range g.Nodes() {
			deps := g.Children(n.Ref)
			if deps == nil {
				deps = []string{}
			}
			targets = append(targets, targetJSON{
				Ref:          n.Ref,
				Name:         n.Name,
				Isa:          string(n.Kind),
				ProductType:  n.ProductType,
				Dependencies: deps,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(targets); err != nil {
			c.Logger.Errorf("write response: %v", err)
		}
	}
}

// handleGraph serves the dependency graph rendered as SVG.
func (c *CLI) handleGraph(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		doc, err := pbx.ReadFile(path)
		if err != nil {
			httpError(w, err)
			return
		}
		g, err := targetgraph.Build(doc)
		if err != nil {
			httpError(w, err)
			return
		}
		svg, err := targetgraph.RenderSVG(targetgraph.ToDOT(g, targetgraph.Options{Direction: c.cfg.Graph.Direction}))
		if err != nil {
			httpError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := w.Write(svg); err != nil {
			c.Logger.Errorf("write response: %v", err)
		}
	}
}

// httpError maps library error codes to HTTP statuses and writes the
// user-facing message.
func httpError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch xcerrors.GetCode(err) {
	case xcerrors.ErrCodeFileNotFound, xcerrors.ErrCodeProjectNotFound, xcerrors.ErrCodeObjectNotFound, xcerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case xcerrors.ErrCodeInvalidPlist, xcerrors.ErrCodeInvalidObject, xcerrors.ErrCodeInvalidInput,
		xcerrors.ErrCodeInvalidPath, xcerrors.ErrCodeInvalidReference:
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, xcerrors.UserMessage(err), status)
}
