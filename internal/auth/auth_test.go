package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken(testSecret, "player-1", DefaultTokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	playerID, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "player-1", playerID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "player-1", DefaultTokenTTL)
	require.NoError(t, err)

	_, err = VerifyToken([]byte("another-secret"), token)
	require.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := IssueToken(testSecret, "player-1", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	require.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "not-a-token")
	require.Error(t, err)
}

func TestPlayerIDContextRoundTrip(t *testing.T) {
	ctx := WithPlayerID(context.Background(), "player-1")

	playerID, ok := PlayerIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "player-1", playerID)
}

func TestPlayerIDFromContext_Absent(t *testing.T) {
	_, ok := PlayerIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "wrong scheme", header: "Basic abc", wantOK: false},
		{name: "empty token", header: "Bearer ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(r)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
