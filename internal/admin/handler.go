package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/costaverde/backend/internal/auth"
	"github.com/costaverde/backend/internal/middleware"
	"github.com/costaverde/backend/internal/telemetry/metrics"
	"github.com/costaverde/backend/internal/telemetry/tracing"
	"github.com/costaverde/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type credentialsVerifier interface {
	Verify(ctx context.Context, identifier, secret string) bool
	LegacyPair(ctx context.Context) (identifier, secret string)
}

type tokenIssuer interface {
	Issue() (string, error)
}

type loginTracker interface {
	IsBlocked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Clear(ctx context.Context, identifier string) error
}

type Handler struct {
	verifier      credentialsVerifier
	tokens        tokenIssuer
	tracker       loginTracker
	metrics       *metrics.Manager
	isDevelopment bool
}

func NewHandler(
	verifier credentialsVerifier,
	tokens tokenIssuer,
	tracker loginTracker,
	metrics *metrics.Manager,
	isDevelopment bool,
) *Handler {
	return &Handler{
		verifier:      verifier,
		tokens:        tokens,
		tracker:       tracker,
		metrics:       metrics,
		isDevelopment: isDevelopment,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	router.HandleFunc("/admin", handler.handleAdminPage).Methods("GET").Name("admin-page")
	router.HandleFunc("/admin/login", handler.handleLoginPage).Methods("GET").Name("admin-login-page")

	authSubrouter := router.PathPrefix("/api/admin").Subrouter()
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("POST", "OPTIONS").Name("logout")
	authSubrouter.
		HandleFunc("/dev-credentials", handler.handleDevCredentials).
		Methods("GET").Name("dev-credentials")

	// rate limit the login / logout endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "admin-auth", loginAllowedPerMin, handler.metrics))
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "adminHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Identifier string `json:"identifier"`
		Secret     string `json:"secret"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			pkg.WriteJSONError(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Identifier: r.Form.Get("identifier"),
			Secret:     r.Form.Get("secret"),
		}
	}

	// empty fields get the same generic response as a wrong pair, so the
	// endpoint leaks nothing about which part was off
	if loginReq.Identifier == "" || loginReq.Secret == "" {
		handler.metrics.CounterFailedLogins.Inc()
		pkg.WriteJSONError(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	// a redis hiccup here must not lock the admin out, so only a confirmed
	// block stops the attempt
	if blocked, err := handler.tracker.IsBlocked(ctx, loginReq.Identifier); err != nil {
		log.Errorf("login, check failed attempts: %s", err)
	} else if blocked {
		log.Tracef("blocked login attempt for: %s", loginReq.Identifier)
		handler.metrics.CounterFailedLogins.Inc()
		span.SetStatus(codes.Error, "login blocked")
		pkg.WriteJSONError(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	if !handler.verifier.Verify(ctx, loginReq.Identifier, loginReq.Secret) {
		log.Tracef("failed login attempt for: %s", loginReq.Identifier)
		if err := handler.tracker.RecordFailure(ctx, loginReq.Identifier); err != nil {
			log.Errorf("login, record failed attempt: %s", err)
		}
		handler.metrics.CounterFailedLogins.Inc()
		span.SetStatus(codes.Error, "login failed")
		pkg.WriteJSONError(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	token, err := handler.tokens.Issue()
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		span.SetStatus(codes.Error, fmt.Sprintf("generate token: %s", err))
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token, !handler.isDevelopment)

	if err := handler.tracker.Clear(ctx, loginReq.Identifier); err != nil {
		log.Errorf("login, clear failed attempts: %s", err)
	}

	handler.metrics.CounterLogins.Inc()
	log.Trace("new login success")
	span.SetStatus(codes.Ok, "login ok")
	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "adminHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	// logout always clears the cookie, valid session or not
	auth.ClearSessionCookie(w, !handler.isDevelopment)
	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) handleDevCredentials(w http.ResponseWriter, r *http.Request) {
	if !handler.isDevelopment {
		pkg.WriteJSONError(w, "forbidden", http.StatusForbidden)
		return
	}

	identifier, secret := handler.verifier.LegacyPair(r.Context())
	credsJson, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"secret":     secret,
	})
	if err != nil {
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, credsJson)
}
