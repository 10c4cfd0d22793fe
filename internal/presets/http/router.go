package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/padlockhq/padlock/internal/presets/service"
	"github.com/padlockhq/padlock/internal/presets/store"
	"github.com/padlockhq/padlock/pkg/httpx"
	"github.com/padlockhq/padlock/pkg/jwtx"
	"github.com/padlockhq/padlock/pkg/slogx"

	_ "github.com/padlockhq/padlock/api/presets" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	PresetService   *service.PresetService
	PasswordService *service.PasswordService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPresets()
	r.registerPasswords()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title						Padlock Preset Service API
//	@version					0.1.0
//	@description				Password-preset management for the Padlock web application: users define reusable
//	@description				generation presets and log generated passwords (already encrypted by the caller)
//	@description				against them. Authentication is a bearer JWT minted by the Padlock auth service.
//
//	@contact.name				Padlock Team
//	@contact.url				https://github.com/padlockhq/padlock
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPresets() {
	h := &PresetsHandler{PresetService: r.PresetService}

	r.Mux.Handle("POST /v1/presets",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("presets:write"),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/presets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("presets:write"),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)

	r.Mux.Handle("GET /v1/presets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("presets:read"),
			httpx.RateLimitByUser(httpx.ReadLimit),
		),
	)

	r.Mux.Handle("GET /v1/presets",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("presets:read"),
			httpx.RateLimitByUser(httpx.ReadLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/presets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("presets:write"),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)
}

func (r *Router) registerPasswords() {
	h := &PasswordsHandler{PasswordService: r.PasswordService}

	r.Mux.Handle("POST /v1/passwords",
		httpx.Chain(http.HandlerFunc(h.HandleLog),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("passwords:write"),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)

	r.Mux.Handle("GET /v1/passwords",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("passwords:read"),
			httpx.RateLimitByUser(httpx.ReadLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.HealthLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.HealthLimit),
		),
	)
}
