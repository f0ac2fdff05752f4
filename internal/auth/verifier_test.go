package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/costaverde/backend/internal/users"
	"github.com/costaverde/backend/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialStoreMock struct {
	users map[string]*users.User
	err   error
}

func newCredentialStoreMock() *credentialStoreMock {
	return &credentialStoreMock{
		users: map[string]*users.User{},
	}
}

func (m *credentialStoreMock) FindByEmail(_ context.Context, email string) (*users.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

type settingsGetterMock struct {
	values map[string]string
	err    error
}

func (m *settingsGetterMock) GetString(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func TestVerifier_PrimaryStore(t *testing.T) {
	passwordHash, err := pkg.HashPassword("s3cret")
	require.NoError(t, err)

	store := newCredentialStoreMock()
	store.users["ana@costaverde.com"] = &users.User{
		ID:           1,
		Email:        "ana@costaverde.com",
		PasswordHash: passwordHash,
		DisplayName:  "Ana",
		Role:         "admin",
	}
	settings := &settingsGetterMock{values: map[string]string{
		legacyEmailSettingKey:    "legacy@costaverde.com",
		legacyPasswordSettingKey: "legacy-pass",
	}}

	verifier := NewVerifier(store, settings)
	ctx := context.Background()

	assert.True(t, verifier.Verify(ctx, "ana@costaverde.com", "s3cret"))
	assert.False(t, verifier.Verify(ctx, "ana@costaverde.com", "wrong"))
	assert.False(t, verifier.Verify(ctx, "ana@costaverde.com", ""))
	// unknown identifier, legacy pair matches
	assert.True(t, verifier.Verify(ctx, "legacy@costaverde.com", "legacy-pass"))
	// unknown identifier, legacy pair mismatch
	assert.False(t, verifier.Verify(ctx, "nobody@costaverde.com", "s3cret"))
}

// a found record with a wrong secret must be terminal, even if the same
// pair happens to be configured as the legacy credentials
func TestVerifier_FoundRecordNeverFallsThrough(t *testing.T) {
	passwordHash, err := pkg.HashPassword("real-pass")
	require.NoError(t, err)

	store := newCredentialStoreMock()
	store.users["ana@costaverde.com"] = &users.User{
		Email:        "ana@costaverde.com",
		PasswordHash: passwordHash,
	}
	settings := &settingsGetterMock{values: map[string]string{
		legacyEmailSettingKey:    "ana@costaverde.com",
		legacyPasswordSettingKey: "legacy-pass",
	}}

	verifier := NewVerifier(store, settings)
	assert.False(t, verifier.Verify(context.Background(), "ana@costaverde.com", "legacy-pass"))
}

func TestVerifier_StoreUnreachableFallsBackToLegacy(t *testing.T) {
	store := newCredentialStoreMock()
	store.err = errors.New("connection refused")
	settings := &settingsGetterMock{values: map[string]string{
		legacyEmailSettingKey:    "legacy@costaverde.com",
		legacyPasswordSettingKey: "legacy-pass",
	}}

	verifier := NewVerifier(store, settings)
	ctx := context.Background()

	assert.True(t, verifier.Verify(ctx, "legacy@costaverde.com", "legacy-pass"))
	assert.False(t, verifier.Verify(ctx, "legacy@costaverde.com", "wrong"))
	assert.False(t, verifier.Verify(ctx, "other@costaverde.com", "legacy-pass"))
}

func TestVerifier_EmptyLegacyPairFailsClosed(t *testing.T) {
	store := newCredentialStoreMock()
	settings := &settingsGetterMock{values: map[string]string{}}

	verifier := NewVerifier(store, settings)
	ctx := context.Background()

	assert.False(t, verifier.Verify(ctx, "", ""))
	assert.False(t, verifier.Verify(ctx, "anything", "anything"))

	// identifier configured, secret missing: still closed
	settings.values[legacyEmailSettingKey] = "legacy@costaverde.com"
	assert.False(t, verifier.Verify(ctx, "legacy@costaverde.com", ""))
}

func TestVerifier_LegacyEnvFallback(t *testing.T) {
	t.Setenv(legacyEmailEnvVar, "env@costaverde.com")
	t.Setenv(legacyPasswordEnvVar, "env-pass")

	store := newCredentialStoreMock()
	// settings store down as well: env vars are the ultimate fallback
	settings := &settingsGetterMock{err: errors.New("connection refused")}

	verifier := NewVerifier(store, settings)
	ctx := context.Background()

	assert.True(t, verifier.Verify(ctx, "env@costaverde.com", "env-pass"))
	assert.False(t, verifier.Verify(ctx, "env@costaverde.com", "wrong"))

	identifier, secret := verifier.LegacyPair(ctx)
	assert.Equal(t, "env@costaverde.com", identifier)
	assert.Equal(t, "env-pass", secret)
}
