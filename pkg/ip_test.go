package pkg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	assert.True(t, IPIsLocal("127.0.0.1:8080"))
	assert.True(t, IPIsLocal("172.17.0.1:45678"))
	assert.False(t, IPIsLocal("85.214.132.117:443"))
	assert.False(t, IPIsLocal("8.8.8.8"))
}

func TestReadUserIP(t *testing.T) {
	testCases := []struct {
		name       string
		realIp     string
		forwarded  string
		remoteAddr string
		expected   string
		expectErr  bool
	}{
		{
			name:     "XRealIpHeader",
			realIp:   "85.214.132.117",
			expected: "85.214.132.117",
		},
		{
			name:      "XForwardedForHeader",
			forwarded: "85.214.132.117",
			expected:  "85.214.132.117",
		},
		{
			name:       "RemoteAddrWithPort",
			remoteAddr: "85.214.132.117:51334",
			expected:   "85.214.132.117",
		},
		{
			name:       "LocalDevelopment",
			remoteAddr: "127.0.0.1:8080",
			expected:   "localhost",
		},
		{
			name:       "InvalidAddr",
			remoteAddr: "not-an-ip",
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/", nil)
			require.NoError(t, err)
			if tc.realIp != "" {
				req.Header.Set("X-Real-Ip", tc.realIp)
			}
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			req.RemoteAddr = tc.remoteAddr

			ip, err := ReadUserIP(req)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ip)
		})
	}
}
