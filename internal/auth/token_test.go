package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts, err := NewTokenService("test-secret")
	require.NoError(t, err)
	require.NotNil(t, ts)

	ts, err = NewTokenService("")
	assert.ErrorIs(t, err, ErrNoSigningSecret)
	assert.Nil(t, ts)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	ts, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := ts.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, ts.Validate(token))
	assert.True(t, ts.Validate(token)) // idempotent
}

func TestTokenService_Validate_Expiry(t *testing.T) {
	issuedAt := time.Now()
	ts, err := NewTokenService("test-secret")
	require.NoError(t, err)
	ts.NowFunc = func() time.Time { return issuedAt }

	token, err := ts.Issue()
	require.NoError(t, err)

	testCases := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{
			name:  "JustIssued",
			now:   issuedAt,
			valid: true,
		},
		{
			name:  "HalfwayThrough",
			now:   issuedAt.Add(SessionTTL / 2),
			valid: true,
		},
		{
			name:  "SecondBeforeExpiry",
			now:   issuedAt.Add(SessionTTL - time.Second),
			valid: true,
		},
		{
			name:  "SecondAfterExpiry",
			now:   issuedAt.Add(SessionTTL + time.Second),
			valid: false,
		},
		{
			name:  "LongAfterExpiry",
			now:   issuedAt.Add(365 * 24 * time.Hour),
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts.NowFunc = func() time.Time { return tc.now }
			assert.Equal(t, tc.valid, ts.Validate(token))
		})
	}
}

func TestTokenService_Validate_TamperResistance(t *testing.T) {
	ts, err := NewTokenService("test-secret")
	require.NoError(t, err)

	otherTs, err := NewTokenService("other-secret")
	require.NoError(t, err)

	// signed with a different secret: never valid, claims notwithstanding
	foreignToken, err := otherTs.Issue()
	require.NoError(t, err)
	assert.False(t, ts.Validate(foreignToken))

	testCases := []struct {
		name  string
		token string
	}{
		{
			name:  "Empty",
			token: "",
		},
		{
			name:  "Garbage",
			token: "not-a-token-at-all",
		},
		{
			name:  "MalformedStructure",
			token: "aaa.bbb",
		},
		{
			name: "UnsignedAlgNone",
			// {"alg":"none"} header with an admin role claim and no signature
			token: "eyJhbGciOiJub25lIn0.eyJyb2xlIjoiYWRtaW4ifQ.",
		},
		{
			name: "StrippedSignature",
			token: func() string {
				valid, err := ts.Issue()
				require.NoError(t, err)
				return valid[:len(valid)-10] + "aaaaaaaaaa"
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, ts.Validate(tc.token))
		})
	}
}
