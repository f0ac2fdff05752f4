package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/costaverde/backend/internal/users"
	"github.com/costaverde/backend/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	// bound on the primary store lookup, so an unreachable db cannot
	// stall a login; a timeout is treated like "store unreachable"
	primaryLookupTimeout = 5 * time.Second

	legacyEmailSettingKey    = "admin_email"
	legacyPasswordSettingKey = "admin_password"

	legacyEmailEnvVar    = "COSTAVERDE_ADMIN_EMAIL"
	legacyPasswordEnvVar = "COSTAVERDE_ADMIN_PASSWORD"
)

type verdict int

const (
	// verdictMatch accepts the credentials, stopping the chain
	verdictMatch verdict = iota
	// verdictReject denies terminally - no later strategy is consulted
	verdictReject
	// verdictNoMatch means the strategy has no record for this
	// identifier; the next strategy gets a go
	verdictNoMatch
	// verdictIndeterminate means the strategy could not decide (store
	// unreachable, timeout); treated the same as verdictNoMatch
	verdictIndeterminate
)

type credentialStore interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

type settingsGetter interface {
	GetString(ctx context.Context, key string) (string, error)
}

type verifyStrategy interface {
	verify(ctx context.Context, identifier, secret string) verdict
}

// Verifier checks a submitted (identifier, secret) pair against an ordered
// chain of verification strategies: the primary user store first, then the
// legacy configuration pair. Every failure mode collapses into a plain
// false - callers never learn which step failed.
type Verifier struct {
	strategies []verifyStrategy
	legacy     *legacyPairStrategy
}

func NewVerifier(store credentialStore, settings settingsGetter) *Verifier {
	legacy := &legacyPairStrategy{settings: settings}
	return &Verifier{
		strategies: []verifyStrategy{
			&primaryStoreStrategy{store: store},
			legacy,
		},
		legacy: legacy,
	}
}

func (v *Verifier) Verify(ctx context.Context, identifier, secret string) bool {
	for _, strategy := range v.strategies {
		switch strategy.verify(ctx, identifier, secret) {
		case verdictMatch:
			return true
		case verdictReject:
			return false
		case verdictNoMatch, verdictIndeterminate:
			// fall through to the next strategy
		}
	}
	return false
}

// LegacyPair exposes the configured legacy credentials. Used only by the
// development-only diagnostic endpoint.
func (v *Verifier) LegacyPair(ctx context.Context) (identifier, secret string) {
	return v.legacy.pair(ctx)
}

type primaryStoreStrategy struct {
	store credentialStore
}

func (s *primaryStoreStrategy) verify(ctx context.Context, identifier, secret string) verdict {
	ctx, cancel := context.WithTimeout(ctx, primaryLookupTimeout)
	defer cancel()

	user, err := s.store.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return verdictNoMatch
		}
		log.Errorf("credential verifier, primary store lookup: %s", err)
		return verdictIndeterminate
	}
	if user == nil {
		return verdictNoMatch
	}

	if pkg.CheckPasswordHash(secret, user.PasswordHash) {
		return verdictMatch
	}

	// a record was found and the secret is wrong - terminal, the legacy
	// pair must not be consulted anymore
	log.Tracef("credential verifier, wrong secret for: %s", identifier)
	return verdictReject
}

// legacyPairStrategy compares against the single pre-user-store admin pair,
// read from the settings store with env vars as the ultimate fallback. The
// comparison is plain equality - kept intentionally for deployments created
// before the user store existed. Operators should migrate to a proper user
// record; this path is a backward-compatibility hole, not a feature.
type legacyPairStrategy struct {
	settings settingsGetter
}

func (s *legacyPairStrategy) verify(ctx context.Context, identifier, secret string) verdict {
	legacyIdentifier, legacySecret := s.pair(ctx)
	if legacyIdentifier == "" || legacySecret == "" {
		// nothing configured: fail closed
		return verdictReject
	}

	if identifier == legacyIdentifier && secret == legacySecret {
		return verdictMatch
	}
	return verdictReject
}

func (s *legacyPairStrategy) pair(ctx context.Context) (identifier, secret string) {
	identifier = s.settingOrEnv(ctx, legacyEmailSettingKey, legacyEmailEnvVar)
	secret = s.settingOrEnv(ctx, legacyPasswordSettingKey, legacyPasswordEnvVar)
	return identifier, secret
}

func (s *legacyPairStrategy) settingOrEnv(ctx context.Context, settingKey, envVar string) string {
	if s.settings != nil {
		value, err := s.settings.GetString(ctx, settingKey)
		if err != nil {
			log.Errorf("credential verifier, read setting %s: %s", settingKey, err)
		} else if value != "" {
			return value
		}
	}
	return os.Getenv(envVar)
}
