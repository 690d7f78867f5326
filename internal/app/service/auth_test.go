package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "supersecretkey"

func TestNewAuth(t *testing.T) {
	auth, err := NewAuth("", 0)
	require.ErrorIs(t, err, ErrMissingSecret)
	require.Nil(t, auth)

	auth, err = NewAuth(testSecret, 0)
	require.NoError(t, err)
	require.NotNil(t, auth)
}

func TestBuildJWTString(t *testing.T) {
	auth, err := NewAuth(testSecret, 0)
	require.NoError(t, err)

	tokenStr, err := auth.BuildJWTString("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt)
}

func TestBuildJWTStringWithTTL(t *testing.T) {
	auth, err := NewAuth(testSecret, time.Hour)
	require.NoError(t, err)

	tokenStr, err := auth.BuildJWTString("user-1")
	require.NoError(t, err)

	claims, err := auth.ParseRawJWT(tokenStr)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRawJWT(t *testing.T) {
	auth, err := NewAuth(testSecret, 0)
	require.NoError(t, err)

	valid, err := auth.BuildJWTString("user-1")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"id":"user-2"}`)) + "." + parts[2]

	other, err := NewAuth("another-secret", 0)
	require.NoError(t, err)
	foreign, err := other.BuildJWTString("user-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "user-1"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr bool
	}{
		{name: "valid", token: valid, wantID: "user-1"},
		{name: "forged payload", token: forged, wantErr: true},
		{name: "other secret", token: foreign, wantErr: true},
		{name: "alg none", token: noneToken, wantErr: true},
		{name: "other algorithm", token: hs512, wantErr: true},
		{name: "missing id", token: noID, wantErr: true},
		{name: "garbage", token: "invalid.token.here", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := auth.ParseRawJWT(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidToken)
				require.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.UserID)
		})
	}
}

func TestParseRawJWTExpired(t *testing.T) {
	auth, err := NewAuth(testSecret, time.Minute)
	require.NoError(t, err)
	auth.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tokenStr, err := auth.BuildJWTString("user-1")
	require.NoError(t, err)

	_, err = auth.ParseRawJWT(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", digest)

	again, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, digest, again, "salt must differ")

	assert.True(t, h.Verify("s3cret!", digest))
	assert.True(t, h.Verify("s3cret!", again))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("s3cret!", "not-a-digest"))
	assert.False(t, h.Verify("s3cret!", ""))
}
