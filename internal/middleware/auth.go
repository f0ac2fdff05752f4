package middleware

import (
	"net/http"
	"strings"

	"github.com/costaverde/backend/internal/auth"
	"github.com/costaverde/backend/internal/telemetry/tracing"
	"github.com/costaverde/backend/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const (
	// AdminPagePrefix guards the admin UI pages; failures redirect to login
	AdminPagePrefix = "/admin"
	// AdminAPIPrefix guards the admin JSON APIs; failures get a 401
	AdminAPIPrefix = "/api/admin"

	LoginPagePath = "/admin/login"

	// AdminAreaHeader is set on every request under the admin prefixes,
	// authorized or not - downstream rendering uses it to drop the
	// regular site chrome
	AdminAreaHeader = "X-Admin-Area"
)

type tokenValidator interface {
	Validate(token string) bool
}

// AuthMiddlewareHandler is the single auth enforcement point. It runs before
// any business logic; no handler behind it does its own auth check.
type AuthMiddlewareHandler struct {
	tokenValidator tokenValidator
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(tokenValidator tokenValidator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenValidator: tokenValidator,
		// exact matches only - everything else under the admin
		// prefixes needs a valid session
		allowedPaths: map[string]bool{
			LoginPagePath:                true,
			"/api/admin/login":           true,
			"/api/admin/dev-credentials": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			path := r.URL.Path
			isPageRoute := strings.HasPrefix(path, AdminPagePrefix)
			isAPIRoute := strings.HasPrefix(path, AdminAPIPrefix)

			if !isPageRoute && !isAPIRoute {
				// public site traffic, none of our business
				span.SetStatus(codes.Ok, "public")
				next.ServeHTTP(w, r)
				return
			}

			// mark the request as admin-area regardless of the auth outcome
			r.Header.Set(AdminAreaHeader, "1")

			if h.allowedPaths[path] {
				span.SetStatus(codes.Ok, "allow-listed")
				next.ServeHTTP(w, r)
				return
			}

			token, ok := auth.ReadSessionToken(r)
			if !ok {
				log.Tracef("[missing session] [auth middleware] unauthorized => %s", path)
				span.SetStatus(codes.Error, "missing-session-token")
				h.reject(w, r, isAPIRoute)
				return
			}

			if !h.tokenValidator.Validate(token) {
				log.Tracef("[invalid session] [auth middleware] unauthorized => %s", path)
				span.SetStatus(codes.Error, "invalid-session-token")
				h.reject(w, r, isAPIRoute)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) reject(w http.ResponseWriter, r *http.Request, isAPIRoute bool) {
	if isAPIRoute {
		pkg.WriteJSONError(w, "Token inválido", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, LoginPagePath, http.StatusTemporaryRedirect)
}
