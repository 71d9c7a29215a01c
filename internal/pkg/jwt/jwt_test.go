package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_HeaderToken(t *testing.T) {
	svc := NewJWTService("secret", "jwt")
	token, err := svc.Encode(map[string]interface{}{"user_id": "u-1"})
	require.NoError(t, err)

	var raw, subject string
	var verifyErr error
	h := svc.Verifier()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = RawToken(r.Context())
		subject = Subject(r.Context())
		_, _, verifyErr = jwtauth.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.NoError(t, verifyErr)
	assert.Equal(t, token, raw)
	assert.Equal(t, "u-1", subject)
}

func TestVerifier_CookieToken(t *testing.T) {
	svc := NewJWTService("secret", "session")
	token, err := svc.Encode(map[string]interface{}{"user_id": float64(42)})
	require.NoError(t, err)

	var raw, subject string
	h := svc.Verifier()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = RawToken(r.Context())
		subject = Subject(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, token, raw)
	assert.Equal(t, "42", subject)
}

func TestVerifier_ForeignSignature(t *testing.T) {
	other := NewJWTService("other-secret", "jwt")
	token, err := other.Encode(map[string]interface{}{"sub": "x"})
	require.NoError(t, err)

	svc := NewJWTService("secret", "jwt")
	var verifyErr error
	h := svc.Verifier()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, verifyErr = jwtauth.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, verifyErr)
}

func TestSubject_FallsBackToRawToken(t *testing.T) {
	ctx := WithRawToken(context.Background(), "abc")
	assert.Equal(t, "abc", Subject(ctx))
	assert.Equal(t, "", RawToken(context.Background()))
}
