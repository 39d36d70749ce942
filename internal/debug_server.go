package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pairchat/domain"
)

// StatusProvider returns a point-in-time view of the coordination state.
type StatusProvider func() domain.StatusSnapshot

// StartDebugServer exposes the coordinator state on a side port for
// operators and pairctl. It runs in a background goroutine and is never part
// of the client-facing surface.
func StartDebugServer(log *slog.Logger, port int, provider StatusProvider) {
	mux := http.NewServeMux()

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		snapshot := provider()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			log.Error("Failed to encode status snapshot", "error", err)
		}
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("Debug status server available", "url", fmt.Sprintf("http://localhost%s/status", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}
