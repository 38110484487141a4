package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/modslots/internal/ctxlog"
)

// healthHandler reports liveness.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// slotsHandler serves the JSON slot report, optionally narrowed to one owner
// with ?owner=<name>.
func (a *App) slotsHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Slots endpoint hit.", "remote_addr", r.RemoteAddr, "query", r.URL.RawQuery)

	rep := a.registry.Report()
	if name := r.URL.Query().Get("owner"); name != "" {
		if _, ok := a.session.Owner(name); !ok {
			http.Error(w, fmt.Sprintf("unknown owner %q", name), http.StatusNotFound)
			return
		}
		rep = rep.OwnerReport(name)
	}
	body, err := a.buildJSONReport(rep)
	if err != nil {
		logger.Error("Building slot report failed.", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Writing slot report failed.", "error", err)
	}
}

func (a *App) schemaHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Schema endpoint hit.", "remote_addr", r.RemoteAddr)
	w.Header().Set("Content-Type", "application/schema+json")
	if err := writeReportSchema(w); err != nil {
		logger.Error("Writing report schema failed.", "error", err)
	}
}

func (a *App) inspectMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/slots", a.slotsHandler)
	mux.HandleFunc("/schema", a.schemaHandler)
	return mux
}

// startInspectServer runs the inspect HTTP server in the background.
func (a *App) startInspectServer() {
	logger := ctxlog.FromContext(a.ctx)
	addr := fmt.Sprintf(":%d", a.config.InspectPort)
	a.httpServer = &http.Server{
		Addr:    addr,
		Handler: a.inspectMux(),
	}

	go func() {
		logger.Info("🩺 Inspect server starting", "address", fmt.Sprintf("http://localhost%s/slots", addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Inspect server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeInspectServer() error {
	logger := ctxlog.FromContext(a.ctx)
	if a.httpServer == nil {
		logger.Debug("Inspect server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(a.ctx), 5*time.Second)
	defer cancel()

	logger.Info("🩺 Shutting down inspect server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.Error("Inspect server shutdown failed", "error", err)
		return err
	}
	a.httpServer = nil
	return nil
}
