package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "test-token", true)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "test-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(SessionTTL.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestSetSessionCookie_DevelopmentNotSecure(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "test-token", false)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.False(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestClearSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearSessionCookie(rr, true)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestReadSessionToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	token, ok := ReadSessionToken(req)
	assert.False(t, ok)
	assert.Empty(t, token)

	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "test-token"})
	token, ok = ReadSessionToken(req)
	assert.True(t, ok)
	assert.Equal(t, "test-token", token)

	// logout followed by a protected request: cleared cookie means no token
	emptyReq := httptest.NewRequest("GET", "/admin", nil)
	emptyReq.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	_, ok = ReadSessionToken(emptyReq)
	assert.False(t, ok)
}
