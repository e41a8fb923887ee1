package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

type tokenizeRequest struct {
	Text       string `json:"text"`
	StickyLink *bool  `json:"sticky_link"`
}

type tokenizeResponse struct {
	Tokens []tokenizer.Token `json:"tokens"`
}

// handleTokenize parses the request body's Text with the server's
// default Options (sticky_link overridable per request) and counts
// each emitted Kind against the day's Counter, mirroring the
// list-then-count shape of Conduit's REST handlers without any of
// their resource/CRUD scaffolding.
func handleTokenize(opts tokenizer.Options, counter Counter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tokenizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		reqOpts := opts
		if req.StickyLink != nil {
			reqOpts.StickyLink = *req.StickyLink
		}

		toks := tokenizer.Parse(req.Text, reqOpts)

		if counter != nil {
			ctx := r.Context()
			counts := make(map[tokenizer.Kind]int64)
			for _, t := range toks {
				counts[t.Kind]++
			}
			for kind, n := range counts {
				if err := counter.Incr(ctx, kind, n); err != nil {
					logger.Warn("failed to record token stats", zap.Error(err))
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tokenizeResponse{Tokens: toks})
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleStats serves the current UTC day's per-kind token counts.
func handleStats(counter Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if counter == nil {
			http.Error(w, "stats unavailable", http.StatusServiceUnavailable)
			return
		}
		snap, err := counter.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "failed to read stats", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	}
}
