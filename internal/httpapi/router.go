// Package httpapi exposes the tokenizer over HTTP: a chi router in the
// style of Conduit's internal/web/router package, stripped of its
// CRUD-resource generator since this service has exactly four routes.
package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

// Deps bundles the router's collaborators so main only has to build
// each one once.
type Deps struct {
	Options   tokenizer.Options
	Counter   Counter
	Logger    *zap.Logger
	JWTSecret string
}

// NewRouter wires the tokenize, health, websocket and stats endpoints
// behind the request-id and access-log middleware every route shares;
// /v1/stats additionally sits behind the JWT guard.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(accessLog(deps.Logger))

	r.Get("/healthz", handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/tokenize", handleTokenize(deps.Options, deps.Counter, deps.Logger))
		r.Get("/tokenize/ws", handleTokenizeWS(deps.Options, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(jwtGuard(deps.JWTSecret))
			r.Get("/stats", handleStats(deps.Counter))
		})
	})

	return r
}
